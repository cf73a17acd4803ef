package ecs_test

import (
	"testing"

	"github.com/corepulse/corepulse/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndGetComponent(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.AddComponent(w, e, Position{X: 1, Y: 2, Z: 3})

	pos := ecs.GetComponent[Position](w, e)
	assert.Equal(t, Position{X: 1, Y: 2, Z: 3}, *pos)

	// Mutation through the returned pointer sticks.
	pos.X = 9
	assert.Equal(t, float32(9), ecs.GetComponent[Position](w, e).X)
}

func TestAddComponentOverwritesInPlace(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.AddComponent(w, e, Health{Current: 50, Max: 100})
	ecs.AddComponent(w, e, Health{Current: 75, Max: 100})

	assert.Equal(t, 75, ecs.GetComponent[Health](w, e).Current)
	assert.Equal(t, 1, ecs.ComponentLen[Health](w))
}

func TestGetMissingComponentPanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{})

	assert.Panics(t, func() {
		ecs.GetComponent[Velocity](w, e)
	})
}

func TestHasComponent(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	assert.False(t, ecs.HasComponent[Position](w, e))
	ecs.AddComponent(w, e, Position{})
	assert.True(t, ecs.HasComponent[Position](w, e))

	ecs.RemoveComponent[Position](w, e)
	assert.False(t, ecs.HasComponent[Position](w, e))
}

func TestRemoveMissingComponentIsNoop(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{X: 1})

	ecs.RemoveComponent[Velocity](w, e)

	assert.True(t, ecs.HasComponent[Position](w, e))
	assert.Equal(t, 0, ecs.ComponentLen[Velocity](w))
}

func TestSignatureConsistency(t *testing.T) {
	w := newTestWorld()

	posID := ecs.RegisterComponent[Position](w)
	velID := ecs.RegisterComponent[Velocity](w)
	hpID := ecs.RegisterComponent[Health](w)

	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{})
	ecs.AddComponent(w, e, Health{})

	check := func() {
		sig := w.Signature(e)
		assert.Equal(t, ecs.HasComponent[Position](w, e), sig.Has(posID))
		assert.Equal(t, ecs.HasComponent[Velocity](w, e), sig.Has(velID))
		assert.Equal(t, ecs.HasComponent[Health](w, e), sig.Has(hpID))
	}
	check()

	ecs.AddComponent(w, e, Velocity{})
	check()
	ecs.RemoveComponent[Health](w, e)
	check()
	ecs.RemoveComponent[Position](w, e)
	check()
}

func TestRegisterComponentIdempotent(t *testing.T) {
	w := newTestWorld()

	id1 := ecs.RegisterComponent[Position](w)
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{X: 4})

	id2 := ecs.RegisterComponent[Position](w)

	assert.Equal(t, id1, id2)
	assert.Equal(t, float32(4), ecs.GetComponent[Position](w, e).X)
	assert.Equal(t, 1, ecs.ComponentLen[Position](w))
}

func TestComponentIDsAreMonotonic(t *testing.T) {
	w := newTestWorld()

	assert.Equal(t, ecs.ComponentID(0), ecs.RegisterComponent[Position](w))
	assert.Equal(t, ecs.ComponentID(1), ecs.RegisterComponent[Velocity](w))
	assert.Equal(t, ecs.ComponentID(2), ecs.RegisterComponent[Score](w))
	assert.Equal(t, ecs.ComponentID(0), ecs.ComponentIDOf[Position](w))
}

func TestPrimitivePayload(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.AddComponent(w, e, Score(1200))
	assert.Equal(t, Score(1200), *ecs.GetComponent[Score](w, e))
}

func TestDenseCompactionAcrossEntities(t *testing.T) {
	w := newTestWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	ecs.AddComponent(w, a, Name{Value: "a"})
	ecs.AddComponent(w, b, Name{Value: "b"})
	ecs.AddComponent(w, c, Name{Value: "c"})
	require.Equal(t, 3, ecs.ComponentLen[Name](w))

	// Removing the first-inserted payload must not disturb the others.
	ecs.RemoveComponent[Name](w, a)

	assert.Equal(t, 2, ecs.ComponentLen[Name](w))
	assert.Equal(t, "b", ecs.GetComponent[Name](w, b).Value)
	assert.Equal(t, "c", ecs.GetComponent[Name](w, c).Value)
	assert.False(t, ecs.HasComponent[Name](w, a))
}

func TestAddComponentOnInvalidEntityIsNoop(t *testing.T) {
	w := newTestWorld()

	ecs.AddComponent(w, ecs.NullEntity, Position{X: 1})
	ecs.AddComponent(w, ecs.Entity(9999), Position{X: 1})

	assert.Equal(t, 0, ecs.ComponentLen[Position](w))
}
