package ecs_test

import (
	"fmt"

	"github.com/corepulse/corepulse/ecs"
)

type Transform struct {
	X, Y float32
}

type Motion struct {
	DX, DY float32
}

type PhysicsSystem struct {
	ecs.SystemBase
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	for e := range s.Entities() {
		tf := ecs.GetComponent[Transform](w, e)
		mo := ecs.GetComponent[Motion](w, e)
		tf.X += mo.DX * float32(dt)
		tf.Y += mo.DY * float32(dt)
	}
}

// ExampleWorld walks through the full lifecycle: register component kinds
// and a system, bind the system's required signature, attach data and run
// the frame loop. The system only ever sees entities whose signature covers
// its requirements.
func ExampleWorld() {
	world := ecs.NewWorld(ecs.WithMaxEntities(1024))

	transformID := ecs.RegisterComponent[Transform](world)
	motionID := ecs.RegisterComponent[Motion](world)

	physics := ecs.RegisterSystem(world, &PhysicsSystem{})
	ecs.SetSystemSignature[*PhysicsSystem](world, ecs.MakeSignature(transformID, motionID))

	mover := world.CreateEntity()
	ecs.AddComponent(world, mover, Transform{})
	ecs.AddComponent(world, mover, Motion{DX: 10, DY: 5})

	scenery := world.CreateEntity()
	ecs.AddComponent(world, scenery, Transform{X: 100})

	world.Init()
	for i := 0; i < 10; i++ {
		world.Update(0.1)
	}
	world.Shutdown()

	tf := ecs.GetComponent[Transform](world, mover)
	fmt.Printf("mover: (%.0f, %.0f)\n", tf.X, tf.Y)
	fmt.Printf("scenery: (%.0f, %.0f)\n", ecs.GetComponent[Transform](world, scenery).X, ecs.GetComponent[Transform](world, scenery).Y)
	fmt.Printf("physics members: %d\n", physics.EntityCount())

	// Output:
	// mover: (10, 5)
	// scenery: (100, 0)
	// physics members: 1
}
