// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn cpu.pprof

package main

import (
	"math/rand/v2"

	"github.com/pkg/profile"

	"github.com/corepulse/corepulse/ecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

// churnSystem sums pairs across its membership every update.
type churnSystem struct {
	ecs.SystemBase
}

func (s *churnSystem) Update(w *ecs.World, dt float64) {
	for e := range s.Entities() {
		a := ecs.GetComponent[comp1](w, e)
		b := ecs.GetComponent[comp2](w, e)
		a.V += b.V
		a.W += b.W
	}
}

func main() {
	iters := 10000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

// run stresses the signature-change path: every update a slice of entities
// gains or loses comp3, forcing membership re-evaluation across systems.
func run(iters, numEntities int) {
	w := ecs.NewWorld(ecs.WithMaxEntities(numEntities + 1))
	c1 := ecs.RegisterComponent[comp1](w)
	c2 := ecs.RegisterComponent[comp2](w)
	ecs.RegisterComponent[comp3](w)

	ecs.RegisterSystem(w, &churnSystem{})
	ecs.SetSystemSignature[*churnSystem](w, ecs.MakeSignature(c1, c2))

	live := make([]ecs.Entity, 0, numEntities)
	for range numEntities {
		e := w.CreateEntity()
		ecs.AddComponent(w, e, comp1{V: 1, W: 1})
		ecs.AddComponent(w, e, comp2{V: 2, W: 2})
		live = append(live, e)
	}

	for range iters {
		for i := 0; i < 100; i++ {
			e := live[rand.IntN(len(live))]
			if ecs.HasComponent[comp3](w, e) {
				ecs.RemoveComponent[comp3](w, e)
			} else {
				ecs.AddComponent(w, e, comp3{V: 3})
			}
		}
		w.Update(1.0 / 60.0)
	}
}
