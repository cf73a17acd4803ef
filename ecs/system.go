package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
)

// System is a unit of per-frame behavior. Implementations must embed
// SystemBase, which carries the membership set the SystemManager maintains
// for them; Update then iterates that set without re-filtering entities.
type System interface {
	Update(w *World, dt float64)
	base() *SystemBase
}

// Initializer is implemented by systems that need a startup hook.
type Initializer interface {
	Init(w *World)
}

// Shutdowner is implemented by systems that need a teardown hook.
type Shutdowner interface {
	Shutdown(w *World)
}

// EntityAddedHandler is notified exactly once when an entity starts matching
// the system's required signature.
type EntityAddedHandler interface {
	EntityAdded(e Entity)
}

// EntityRemovedHandler is notified exactly once when a matching entity stops
// matching or is destroyed.
type EntityRemovedHandler interface {
	EntityRemoved(e Entity)
}

// SystemBase holds the set of entities currently matching the owning
// system's signature. Embed it in every system implementation.
type SystemBase struct {
	members memberSet
}

func (b *SystemBase) base() *SystemBase { return b }

// Entities iterates the matching entities. Iteration order is unspecified.
// Structural changes during iteration must go through Commands.
func (b *SystemBase) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range b.members.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Contains reports whether e currently matches the system's signature.
func (b *SystemBase) Contains(e Entity) bool {
	return b.members.contains(e)
}

// EntityCount returns the size of the membership set.
func (b *SystemBase) EntityCount() int {
	return len(b.members.entities)
}

// memberSet is a dense entity set: a contiguous slice plus an entity-to-slot
// index, with swap-removal. Same shape as component storage, minus payloads.
type memberSet struct {
	entities []Entity
	index    *intmap.Map[Entity, uint32]
}

func (s *memberSet) init() {
	if s.index == nil {
		s.index = intmap.New[Entity, uint32](64)
	}
}

func (s *memberSet) contains(e Entity) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index.Get(e)
	return ok
}

func (s *memberSet) add(e Entity) bool {
	if _, ok := s.index.Get(e); ok {
		return false
	}
	s.index.Put(e, uint32(len(s.entities)))
	s.entities = append(s.entities, e)
	return true
}

func (s *memberSet) remove(e Entity) bool {
	slot, ok := s.index.Get(e)
	if !ok {
		return false
	}
	last := uint32(len(s.entities) - 1)
	if slot != last {
		moved := s.entities[last]
		s.entities[slot] = moved
		s.index.Put(moved, slot)
	}
	s.entities = s.entities[:last]
	s.index.Del(e)
	return true
}

// systemEntry is the registry's per-kind record: the singleton instance, its
// required signature, cached hook assertions and timing counters.
type systemEntry struct {
	system    System
	name      string
	signature Signature

	added   EntityAddedHandler
	removed EntityRemovedHandler

	executions    int64
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

func (en *systemEntry) record(d time.Duration) {
	en.executions++
	en.lastDuration = d
	en.totalDuration += d
	if d < en.minDuration {
		en.minDuration = d
	}
	if d > en.maxDuration {
		en.maxDuration = d
	}
}

// SystemManager holds one singleton instance per system kind, the required
// signature per kind, and each kind's live membership set. Membership is
// recomputed incrementally on every signature change.
type SystemManager struct {
	entries []*systemEntry
	byType  map[reflect.Type]*systemEntry
}

// NewSystemManager creates an empty manager.
func NewSystemManager() *SystemManager {
	return &SystemManager{
		byType: make(map[reflect.Type]*systemEntry),
	}
}

// register stores sys as the singleton for its concrete type. If the kind is
// already registered the existing instance is returned and sys is discarded.
func (m *SystemManager) register(sys System) System {
	t := reflect.TypeOf(sys)
	if en, ok := m.byType[t]; ok {
		return en.system
	}
	sys.base().members.init()

	name := t.String()
	if t.Kind() == reflect.Ptr {
		name = t.Elem().Name()
	}
	en := &systemEntry{
		system:      sys,
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
	en.added, _ = sys.(EntityAddedHandler)
	en.removed, _ = sys.(EntityRemovedHandler)
	m.byType[t] = en
	m.entries = append(m.entries, en)
	return sys
}

// setSignature binds the required signature for the system kind t. The kind
// must have been registered first; a signature without an instance is
// meaningless and panics.
func (m *SystemManager) setSignature(t reflect.Type, sig Signature) {
	en, ok := m.byType[t]
	if !ok {
		panic(fmt.Sprintf("ecs: system %v not registered before setting signature", t))
	}
	en.signature = sig
}

// get returns the singleton registered for the system kind t.
func (m *SystemManager) get(t reflect.Type) (System, bool) {
	en, ok := m.byType[t]
	if !ok {
		return nil, false
	}
	return en.system, true
}

// signatureChanged re-evaluates the entity against every system kind. An
// entity enters a membership set when its signature covers the system's and
// leaves when it no longer does; each transition fires its hook exactly once.
func (m *SystemManager) signatureChanged(e Entity, sig Signature) {
	for _, en := range m.entries {
		if sig.Contains(en.signature) {
			if en.system.base().members.add(e) && en.added != nil {
				en.added.EntityAdded(e)
			}
		} else {
			if en.system.base().members.remove(e) && en.removed != nil {
				en.removed.EntityRemoved(e)
			}
		}
	}
}

// entityDestroyed drops the entity from every membership set, firing the
// removal hook where it was a member.
func (m *SystemManager) entityDestroyed(e Entity) {
	for _, en := range m.entries {
		if en.system.base().members.remove(e) && en.removed != nil {
			en.removed.EntityRemoved(e)
		}
	}
}

func (m *SystemManager) initAll(w *World) {
	for _, en := range m.entries {
		if init, ok := en.system.(Initializer); ok {
			init.Init(w)
		}
	}
}

func (m *SystemManager) updateAll(w *World, dt float64) {
	for _, en := range m.entries {
		start := time.Now()
		en.system.Update(w, dt)
		en.record(time.Since(start))
	}
}

func (m *SystemManager) shutdownAll(w *World) {
	for _, en := range m.entries {
		if sd, ok := en.system.(Shutdowner); ok {
			sd.Shutdown(w)
		}
	}
}

func (m *SystemManager) count() int {
	return len(m.entries)
}

// RegisterSystem stores sys as the singleton instance for its kind and
// returns it. If the kind is already registered, the previously stored
// instance is returned instead.
func RegisterSystem[S System](w *World, sys S) S {
	return w.systems.register(sys).(S)
}

// SetSystemSignature binds the required component signature for system kind
// S. Panics if S has not been registered; signatures are configuration and
// this mismatch should surface at startup, not mid-frame.
func SetSystemSignature[S System](w *World, sig Signature) {
	w.systems.setSignature(reflect.TypeFor[S](), sig)
}

// GetSystem returns the singleton registered for kind S, or the zero value
// and false if the kind was never registered.
func GetSystem[S System](w *World) (S, bool) {
	sys, ok := w.systems.get(reflect.TypeFor[S]())
	if !ok {
		var zero S
		return zero, false
	}
	return sys.(S), true
}
