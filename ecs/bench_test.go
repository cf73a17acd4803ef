package ecs_test

import (
	"testing"

	"github.com/corepulse/corepulse/ecs"
)

func BenchmarkCreateDestroyEntity(b *testing.B) {
	w := newTestWorld(ecs.WithMaxEntities(1 << 16))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := w.CreateEntity()
		w.DestroyEntity(e)
	}
}

func BenchmarkAddRemoveComponent(b *testing.B) {
	w := newTestWorld()
	ecs.RegisterComponent[Position](w)
	e := w.CreateEntity()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.AddComponent(w, e, Position{X: float32(i)})
		ecs.RemoveComponent[Position](w, e)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	w := newTestWorld()
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{X: 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.GetComponent[Position](w, e)
	}
}

func BenchmarkUpdate1kEntities(b *testing.B) {
	w := newTestWorld()
	ecs.RegisterSystem(w, &MovementSystem{})
	ecs.SetSystemSignature[*MovementSystem](w, ecs.MakeSignature(
		ecs.ComponentIDOf[Position](w),
		ecs.ComponentIDOf[Velocity](w),
	))

	for i := 0; i < 1000; i++ {
		e := w.CreateEntity()
		ecs.AddComponent(w, e, Position{})
		ecs.AddComponent(w, e, Velocity{DX: 1, DY: 1})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Update(0.016)
	}
}

func BenchmarkSignatureChangeFanOut(b *testing.B) {
	w := newTestWorld()

	// Several registered systems make every attach/detach re-evaluate
	// membership across the registry.
	ecs.RegisterSystem(w, &MovementSystem{})
	ecs.RegisterSystem(w, &RenderSystem{})
	ecs.RegisterSystem(w, &CatchAllSystem{})
	ecs.SetSystemSignature[*MovementSystem](w, ecs.MakeSignature(
		ecs.ComponentIDOf[Position](w),
		ecs.ComponentIDOf[Velocity](w),
	))
	ecs.SetSystemSignature[*RenderSystem](w, ecs.MakeSignature(
		ecs.ComponentIDOf[Position](w),
		ecs.ComponentIDOf[Renderable](w),
	))

	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.AddComponent(w, e, Velocity{DX: 1})
		ecs.RemoveComponent[Velocity](w, e)
	}
}
