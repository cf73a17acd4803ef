package ecs_test

import (
	"reflect"
	"testing"

	"github.com/corepulse/corepulse/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ReaperSystem queues destruction of every member with zero health.
type ReaperSystem struct {
	ecs.SystemBase
}

func (s *ReaperSystem) Update(w *ecs.World, _ float64) {
	for e := range s.Entities() {
		if ecs.GetComponent[Health](w, e).Current <= 0 {
			w.Commands().DestroyEntity(e)
		}
	}
}

func TestCommandsDeferDestruction(t *testing.T) {
	w := newTestWorld()

	rp := ecs.RegisterSystem(w, &ReaperSystem{})
	ecs.SetSystemSignature[*ReaperSystem](w, ecs.MakeSignature(
		ecs.ComponentIDOf[Health](w),
	))

	dead := w.CreateEntity()
	ecs.AddComponent(w, dead, Health{Current: 0, Max: 10})
	alive := w.CreateEntity()
	ecs.AddComponent(w, alive, Health{Current: 10, Max: 10})

	require.Equal(t, 2, rp.EntityCount())

	w.Update(0.016)

	assert.False(t, w.Alive(dead))
	assert.True(t, w.Alive(alive))
	assert.Equal(t, 1, rp.EntityCount())
	assert.Equal(t, 1, ecs.ComponentLen[Health](w))
}

func TestCommandsSpawn(t *testing.T) {
	w := newTestWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Velocity](w)

	w.Commands().Spawn(Position{X: 1}, Velocity{DX: 2})
	assert.Equal(t, 0, w.EntityCount(), "spawn is deferred until flush")

	w.Update(0)

	assert.Equal(t, 1, w.EntityCount())
	assert.Equal(t, 1, ecs.ComponentLen[Position](w))
	assert.Equal(t, 1, ecs.ComponentLen[Velocity](w))
}

func TestCommandsAddRemove(t *testing.T) {
	w := newTestWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Health](w)

	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{X: 1})

	w.Commands().AddComponent(e, Health{Current: 5, Max: 5})
	w.Commands().RemoveComponent(e, reflect.TypeOf(Position{}))

	assert.True(t, ecs.HasComponent[Position](w, e))
	assert.False(t, ecs.HasComponent[Health](w, e))

	w.Update(0)

	assert.False(t, ecs.HasComponent[Position](w, e))
	assert.True(t, ecs.HasComponent[Health](w, e))
	assert.Equal(t, 5, ecs.GetComponent[Health](w, e).Current)
}

func TestCommandsSkipOperationsOnDestroyedEntities(t *testing.T) {
	w := newTestWorld()
	ecs.RegisterComponent[Position](w)

	e := w.CreateEntity()
	c := w.Commands()
	c.DestroyEntity(e)
	c.AddComponent(e, Position{X: 1})
	c.RemoveComponent(e, reflect.TypeOf(Position{}))

	assert.NotPanics(t, func() { w.Update(0) })
	assert.False(t, w.Alive(e))
	assert.Equal(t, 0, ecs.ComponentLen[Position](w))
}

func TestCommandsDefer(t *testing.T) {
	w := newTestWorld()
	ecs.RegisterComponent[Position](w)

	ran := false
	w.Commands().Spawn(Position{})
	w.Commands().Defer(func() {
		// Deferred funcs run after structural changes were applied.
		ran = true
		assert.Equal(t, 1, w.EntityCount())
	})

	w.Update(0)
	assert.True(t, ran)
}

func TestCommandsAddUnregisteredTypePanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	w.Commands().AddComponent(e, Renderable{MeshID: 1})
	assert.Panics(t, func() { w.Update(0) })
}
