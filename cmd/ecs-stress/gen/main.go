// Command gen emits zz_generated.go for the stress tool: a configurable
// number of component kinds plus systems that each require a pair of them.
// Output goes through goimports so the generated file needs no manual
// formatting pass.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

type params struct {
	Components int
	Systems    int
}

func main() {
	components := flag.Int("components", 16, "Number of component kinds to generate (max 64).")
	systems := flag.Int("systems", 8, "Number of systems to generate; each requires two components.")
	out := flag.String("out", "zz_generated.go", "Output file path.")
	flag.Parse()

	if *components > 64 {
		log.Fatalf("component count %d exceeds the signature width of 64", *components)
	}
	if *systems*2 > *components {
		log.Fatalf("%d systems need %d components, only %d generated", *systems, *systems*2, *components)
	}

	fm := template.FuncMap{
		"iter": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"mul": func(a, b int) int { return a * b },
		"add": func(a, b int) int { return a + b },
	}

	tmpl, err := template.New("generated").Funcs(fm).Parse(fileTemplate)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params{Components: *components, Systems: *systems}); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("wrote %s (%d components, %d systems)", *out, *components, *systems)
}

const fileTemplate = `// Code generated by gen; DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/corepulse/corepulse/ecs"
)

const (
	generatedComponentCount = {{.Components}}
	generatedSystemCount    = {{.Systems}}
)

{{range $i := iter .Components}}
type StressComp{{$i}} struct {
	X     float64
	Y     float64
	Ticks int32
}
{{end}}

{{range $i := iter .Systems}}
type StressSystem{{$i}} struct {
	ecs.SystemBase
}

func (s *StressSystem{{$i}}) Update(w *ecs.World, dt float64) {
	for e := range s.Entities() {
		a := ecs.GetComponent[StressComp{{mul $i 2}}](w, e)
		b := ecs.GetComponent[StressComp{{add (mul $i 2) 1}}](w, e)
		a.X += b.Y * dt
		b.X += a.Y * dt
		a.Ticks++
	}
}
{{end}}

func RegisterAllGeneratedComponents(w *ecs.World) {
{{range $i := iter .Components}}	ecs.RegisterComponent[StressComp{{$i}}](w)
{{end}}}

func RegisterAllGeneratedSystems(w *ecs.World) {
{{range $i := iter .Systems}}	ecs.RegisterSystem(w, &StressSystem{{$i}}{})
	ecs.SetSystemSignature[*StressSystem{{$i}}](w, ecs.MakeSignature(
		ecs.ComponentIDOf[StressComp{{mul $i 2}}](w),
		ecs.ComponentIDOf[StressComp{{add (mul $i 2) 1}}](w),
	))
{{end}}}

var generatedAdders = []func(*ecs.World, ecs.Entity){
{{range $i := iter .Components}}	func(w *ecs.World, e ecs.Entity) {
		ecs.AddComponent(w, e, StressComp{{$i}}{X: rand.Float64(), Y: rand.Float64()})
	},
{{end}}}

// SpawnRandomEntity creates an entity carrying numComponents distinct random
// component kinds.
func SpawnRandomEntity(w *ecs.World, numComponents int) ecs.Entity {
	e := w.CreateEntity()
	if e == ecs.NullEntity {
		return e
	}
	for _, idx := range rand.Perm(len(generatedAdders))[:numComponents] {
		generatedAdders[idx](w, e)
	}
	return e
}
`
