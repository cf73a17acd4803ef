package ecs_test

import (
	"fmt"

	"github.com/corepulse/corepulse/ecs"
)

type Audible struct {
	Volume float32
}

type AudioSystem struct {
	ecs.SystemBase
}

func (s *AudioSystem) Update(w *ecs.World, dt float64) {}

func (s *AudioSystem) EntityAdded(e ecs.Entity) {
	fmt.Printf("audio source attached: entity %d\n", e)
}

func (s *AudioSystem) EntityRemoved(e ecs.Entity) {
	fmt.Printf("audio source detached: entity %d\n", e)
}

// ExampleSystem shows the membership hooks. A system is told exactly once
// when an entity starts or stops matching its required signature; entity
// destruction counts as a loss of match.
func ExampleSystem() {
	world := ecs.NewWorld()

	audibleID := ecs.RegisterComponent[Audible](world)
	ecs.RegisterSystem(world, &AudioSystem{})
	ecs.SetSystemSignature[*AudioSystem](world, ecs.MakeSignature(audibleID))

	e := world.CreateEntity()
	ecs.AddComponent(world, e, Audible{Volume: 0.8})
	ecs.AddComponent(world, e, Audible{Volume: 0.5}) // overwrite, no transition

	world.DestroyEntity(e)

	// Output:
	// audio source attached: entity 1
	// audio source detached: entity 1
}
