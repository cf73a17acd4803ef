package ecs

import (
	"fmt"
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentID is the small integer identifying a distinct component kind.
// IDs are assigned monotonically at registration and never reused.
type ComponentID uint8

// MaxComponents bounds the number of distinct component kinds per World.
// It is the width of the Signature bitmask.
const MaxComponents = 64

// store is the type-erased capability surface every dense component store
// satisfies. It is what the manager holds per kind without knowing the
// payload type.
type store interface {
	entityDestroyed(Entity)
	removeEntity(Entity) bool
	insertAny(Entity, any)
	getAny(Entity) (any, bool)
	contains(Entity) bool
	count() int
}

// componentStore keeps one payload per entity in a contiguous slice. Two
// index structures keep the slice dense: index maps entity to slot and
// entities maps slot back to entity. Removal swaps the last live payload
// into the vacated slot.
type componentStore[T any] struct {
	data     []T
	entities []Entity
	index    *intmap.Map[Entity, uint32]
}

func newComponentStore[T any]() *componentStore[T] {
	return &componentStore[T]{
		index: intmap.New[Entity, uint32](256),
	}
}

// insert appends the payload at the next free slot, or overwrites in place
// if the entity already holds this kind.
func (s *componentStore[T]) insert(e Entity, value T) {
	if slot, ok := s.index.Get(e); ok {
		s.data[slot] = value
		return
	}
	s.index.Put(e, uint32(len(s.data)))
	s.data = append(s.data, value)
	s.entities = append(s.entities, e)
}

// remove swaps the last live payload into the vacated slot and shrinks the
// occupied range by one. Reports whether the entity held this kind.
func (s *componentStore[T]) remove(e Entity) bool {
	slot, ok := s.index.Get(e)
	if !ok {
		return false
	}
	last := uint32(len(s.data) - 1)
	if slot != last {
		moved := s.entities[last]
		s.data[slot] = s.data[last]
		s.entities[slot] = moved
		s.index.Put(moved, slot)
	}
	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	s.entities = s.entities[:last]
	s.index.Del(e)
	return true
}

// get returns a pointer into the dense slice. The pointer is valid only
// until the next insert or remove on this kind.
func (s *componentStore[T]) get(e Entity) (*T, bool) {
	slot, ok := s.index.Get(e)
	if !ok {
		return nil, false
	}
	return &s.data[slot], true
}

func (s *componentStore[T]) contains(e Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

func (s *componentStore[T]) count() int {
	return len(s.data)
}

// entityDestroyed drops the entity's payload if present. Called for every
// registered kind on entity destruction, so absence is not an error.
func (s *componentStore[T]) entityDestroyed(e Entity) {
	s.remove(e)
}

func (s *componentStore[T]) removeEntity(e Entity) bool {
	return s.remove(e)
}

func (s *componentStore[T]) insertAny(e Entity, value any) {
	switch v := value.(type) {
	case T:
		s.insert(e, v)
	case *T:
		s.insert(e, *v)
	default:
		panic(fmt.Sprintf("ecs: value of type %T inserted into store of %v", value, reflect.TypeFor[T]()))
	}
}

func (s *componentStore[T]) getAny(e Entity) (any, bool) {
	ptr, ok := s.get(e)
	if !ok {
		return nil, false
	}
	return ptr, true
}

// ComponentManager owns one dense store per registered component kind and
// the kind's monotonically assigned ComponentID. The (type, ID) binding is
// immutable for the manager's lifetime.
type ComponentManager struct {
	ids    map[reflect.Type]ComponentID
	types  []reflect.Type
	stores []store
}

// NewComponentManager creates an empty manager.
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		ids: make(map[reflect.Type]ComponentID),
	}
}

// register binds the next unused ComponentID to t. Repeat calls for a known
// type return the existing ID and leave its store untouched.
func (m *ComponentManager) register(t reflect.Type, newStore func() store) ComponentID {
	if id, ok := m.ids[t]; ok {
		return id
	}
	if len(m.stores) >= MaxComponents {
		panic(fmt.Sprintf("ecs: component limit reached (%d), cannot register %v", MaxComponents, t))
	}
	id := ComponentID(len(m.stores))
	m.ids[t] = id
	m.types = append(m.types, t)
	m.stores = append(m.stores, newStore())
	return id
}

// idOf returns the ComponentID bound to t.
func (m *ComponentManager) idOf(t reflect.Type) (ComponentID, bool) {
	id, ok := m.ids[t]
	return id, ok
}

// storeOf returns the type-erased store bound to t.
func (m *ComponentManager) storeOf(t reflect.Type) (store, bool) {
	id, ok := m.ids[t]
	if !ok {
		return nil, false
	}
	return m.stores[id], true
}

// entityDestroyed asks every registered kind to drop the entity's payload.
func (m *ComponentManager) entityDestroyed(e Entity) {
	for _, s := range m.stores {
		s.entityDestroyed(e)
	}
}

// kindCount returns the number of registered component kinds.
func (m *ComponentManager) kindCount() int {
	return len(m.stores)
}

// storeFor resolves (registering on first use) the typed store for T.
func storeFor[T any](m *ComponentManager) *componentStore[T] {
	t := reflect.TypeFor[T]()
	id, ok := m.ids[t]
	if !ok {
		id = m.register(t, func() store { return newComponentStore[T]() })
	}
	return m.stores[id].(*componentStore[T])
}

// RegisterComponent binds a ComponentID to T and creates its store. It is
// idempotent: repeat calls return the existing ID without touching data.
// Registration beyond MaxComponents kinds panics; that is a configuration
// error, not a runtime condition.
func RegisterComponent[T any](w *World) ComponentID {
	t := reflect.TypeFor[T]()
	return w.components.register(t, func() store { return newComponentStore[T]() })
}

// ComponentIDOf returns T's ComponentID, registering the kind on first use.
func ComponentIDOf[T any](w *World) ComponentID {
	return RegisterComponent[T](w)
}

// AddComponent attaches value to the entity under kind T, overwriting any
// existing payload. Storage is mutated first, then the entity's signature,
// then system membership; systems are never told about data that does not
// exist yet. Adding to an invalid entity is a logged no-op.
func AddComponent[T any](w *World, e Entity, value T) {
	if !w.entities.Alive(e) {
		w.log.Warn("add component on invalid entity", "entity", e, "component", reflect.TypeFor[T]().String())
		return
	}
	id := ComponentIDOf[T](w)
	storeFor[T](w.components).insert(e, value)

	sig := w.entities.Signature(e).With(id)
	w.entities.SetSignature(e, sig)
	w.systems.signatureChanged(e, sig)
}

// RemoveComponent detaches kind T from the entity. Removal follows the same
// ordering as AddComponent: storage, signature, membership.
func RemoveComponent[T any](w *World, e Entity) {
	if !w.entities.Alive(e) {
		w.log.Warn("remove component on invalid entity", "entity", e, "component", reflect.TypeFor[T]().String())
		return
	}
	id := ComponentIDOf[T](w)
	storeFor[T](w.components).remove(e)

	sig := w.entities.Signature(e).Without(id)
	w.entities.SetSignature(e, sig)
	w.systems.signatureChanged(e, sig)
}

// GetComponent returns a pointer to the entity's T payload. The pointer is
// valid until the next structural change on kind T. Reading a component the
// entity does not hold is a programmer error and panics.
func GetComponent[T any](w *World, e Entity) *T {
	ptr, ok := storeFor[T](w.components).get(e)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no component %v", e, reflect.TypeFor[T]()))
	}
	return ptr
}

// HasComponent reports whether the entity holds kind T.
func HasComponent[T any](w *World, e Entity) bool {
	return storeFor[T](w.components).contains(e)
}

// ComponentLen returns the number of entities currently holding kind T.
func ComponentLen[T any](w *World) int {
	return storeFor[T](w.components).count()
}
