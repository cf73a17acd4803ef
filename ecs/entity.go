package ecs

import "log/slog"

// Entity is an opaque identifier. It carries no data of its own; components
// attached through a World give it meaning.
type Entity uint32

// NullEntity never refers to a live entity. It is returned when entity
// creation fails.
const NullEntity Entity = 0

// DefaultMaxEntities is the entity capacity used when none is configured.
const DefaultMaxEntities = 10000

// Signature is a bitmask over component IDs. For an entity it records which
// component kinds are attached; for a system it records which kinds are
// required.
type Signature uint64

// Has reports whether the bit for the given component ID is set.
func (s Signature) Has(id ComponentID) bool {
	return s&(1<<id) != 0
}

// With returns the signature with the bit for id set.
func (s Signature) With(id ComponentID) Signature {
	return s | 1<<id
}

// Without returns the signature with the bit for id cleared.
func (s Signature) Without(id ComponentID) Signature {
	return s &^ (1 << id)
}

// Contains reports whether every bit in required is also set in s.
func (s Signature) Contains(required Signature) bool {
	return s&required == required
}

// MakeSignature builds a signature from component IDs.
func MakeSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// EntityManager allocates and recycles entity identifiers and tracks the
// component signature of each live entity. Capacity is fixed at construction.
type EntityManager struct {
	free       []Entity
	alive      []bool
	signatures []Signature
	capacity   int
	living     int
	created    uint64
	log        *slog.Logger
}

// NewEntityManager creates a manager with room for capacity-1 live entities
// (identifier 0 is reserved for NullEntity).
func NewEntityManager(capacity int, log *slog.Logger) *EntityManager {
	if capacity < 2 {
		capacity = 2
	}
	m := &EntityManager{
		free:       make([]Entity, 0, capacity-1),
		alive:      make([]bool, capacity),
		signatures: make([]Signature, capacity),
		capacity:   capacity,
		log:        log,
	}
	// Identifiers are handed out from the tail of the free list, so fill it
	// in descending order to mint 1, 2, 3, ... first.
	for e := Entity(capacity - 1); e >= 1; e-- {
		m.free = append(m.free, e)
	}
	return m
}

// Create returns a recycled or fresh identifier with an empty signature.
// Returns NullEntity once the capacity is exhausted.
func (m *EntityManager) Create() Entity {
	if len(m.free) == 0 {
		m.log.Warn("entity capacity exhausted", "capacity", m.capacity-1)
		return NullEntity
	}
	e := m.free[len(m.free)-1]
	m.free = m.free[:len(m.free)-1]
	m.alive[e] = true
	m.signatures[e] = 0
	m.living++
	m.created++
	return e
}

// Destroy resets the entity's signature and returns its identifier to the
// free list. Destroying an entity that is not alive is a logged no-op.
func (m *EntityManager) Destroy(e Entity) {
	if !m.Alive(e) {
		m.log.Warn("destroy of invalid entity", "entity", e)
		return
	}
	m.signatures[e] = 0
	m.alive[e] = false
	m.free = append(m.free, e)
	m.living--
}

// Alive reports whether e currently refers to a live entity.
func (m *EntityManager) Alive(e Entity) bool {
	return e != NullEntity && int(e) < m.capacity && m.alive[e]
}

// SetSignature overwrites the entity's signature. Invalid entities are a
// logged no-op.
func (m *EntityManager) SetSignature(e Entity, sig Signature) {
	if !m.Alive(e) {
		m.log.Warn("set signature on invalid entity", "entity", e)
		return
	}
	m.signatures[e] = sig
}

// Signature returns the entity's signature, or the empty signature for an
// invalid entity.
func (m *EntityManager) Signature(e Entity) Signature {
	if !m.Alive(e) {
		return 0
	}
	return m.signatures[e]
}

// LivingCount returns the number of currently live entities.
func (m *EntityManager) LivingCount() int {
	return m.living
}

// CreatedTotal returns the number of successful Create calls over the
// manager's lifetime.
func (m *EntityManager) CreatedTotal() uint64 {
	return m.created
}

// Capacity returns the maximum number of simultaneously live entities.
func (m *EntityManager) Capacity() int {
	return m.capacity - 1
}

// each calls yield for every live entity, lowest identifier first.
func (m *EntityManager) each(yield func(Entity) bool) {
	for e := Entity(1); int(e) < m.capacity; e++ {
		if m.alive[e] {
			if !yield(e) {
				return
			}
		}
	}
}
