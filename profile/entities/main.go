// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
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

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld(ecs.WithMaxEntities(numEntities + 1))
		ecs.RegisterComponent[comp1](w)
		ecs.RegisterComponent[comp2](w)

		created := make([]ecs.Entity, 0, numEntities)
		for range iters {
			created = created[:0]
			for range numEntities {
				e := w.CreateEntity()
				ecs.AddComponent(w, e, comp1{V: 1, W: 1})
				ecs.AddComponent(w, e, comp2{V: 2, W: 2})
				created = append(created, e)
			}
			for _, e := range created {
				a := ecs.GetComponent[comp1](w, e)
				b := ecs.GetComponent[comp2](w, e)
				a.V += b.V
				a.W += b.W
			}
			for _, e := range created {
				w.DestroyEntity(e)
			}
		}
	}
}
