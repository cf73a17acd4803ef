package ecs

import (
	"fmt"
	"reflect"
)

// Commands buffers structural changes made while systems are iterating
// their membership sets. The World flushes the buffer after every update
// fan-out, so no membership set mutates under a running system.
type Commands struct {
	destroys []Entity
	adds     []addCommand
	removes  []removeCommand
	spawns   []spawnCommand
	deferred []func()
}

type addCommand struct {
	entity Entity
	value  any
}

type removeCommand struct {
	entity Entity
	typ    reflect.Type
}

type spawnCommand struct {
	components []any
}

func newCommands() *Commands {
	return &Commands{}
}

// DestroyEntity queues an entity destruction.
func (c *Commands) DestroyEntity(e Entity) {
	c.destroys = append(c.destroys, e)
}

// AddComponent queues a component attach. The value's type must already be
// a registered component kind when the buffer is flushed.
func (c *Commands) AddComponent(e Entity, value any) {
	c.adds = append(c.adds, addCommand{entity: e, value: value})
}

// RemoveComponent queues a component detach for the given payload type.
func (c *Commands) RemoveComponent(e Entity, t reflect.Type) {
	c.removes = append(c.removes, removeCommand{entity: e, typ: t})
}

// Spawn queues creation of an entity with the given component values.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Defer queues an arbitrary function to run at the end of the frame, after
// all structural changes have been applied.
func (c *Commands) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

// flush applies the buffered operations: destroys first, then removes and
// adds on surviving entities, then spawns, then deferred functions.
func (c *Commands) flush(w *World) {
	if len(c.destroys) == 0 && len(c.adds) == 0 && len(c.removes) == 0 &&
		len(c.spawns) == 0 && len(c.deferred) == 0 {
		return
	}

	destroyed := make(map[Entity]bool, len(c.destroys))
	for _, e := range c.destroys {
		if destroyed[e] {
			continue
		}
		w.DestroyEntity(e)
		destroyed[e] = true
	}

	for _, cmd := range c.removes {
		if !destroyed[cmd.entity] {
			w.removeComponentByType(cmd.entity, cmd.typ)
		}
	}

	for _, cmd := range c.adds {
		if !destroyed[cmd.entity] {
			w.addComponentAny(cmd.entity, cmd.value)
		}
	}

	for _, cmd := range c.spawns {
		e := w.CreateEntity()
		if e == NullEntity {
			continue
		}
		for _, value := range cmd.components {
			w.addComponentAny(e, value)
		}
	}

	for _, fn := range c.deferred {
		fn()
	}

	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.spawns = c.spawns[:0]
	c.deferred = c.deferred[:0]
}

// addComponentAny is the type-erased attach path used by the command
// buffer. The kind must have been registered through the typed API first;
// an unknown type here is a programmer error.
func (w *World) addComponentAny(e Entity, value any) {
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	id, ok := w.components.idOf(t)
	if !ok {
		panic(fmt.Sprintf("ecs: component type %v not registered", t))
	}
	if !w.entities.Alive(e) {
		w.log.Warn("add component on invalid entity", "entity", e, "component", t.String())
		return
	}
	w.components.stores[id].insertAny(e, value)

	sig := w.entities.Signature(e).With(id)
	w.entities.SetSignature(e, sig)
	w.systems.signatureChanged(e, sig)
}

// removeComponentByType is the type-erased detach path used by the command
// buffer. Unregistered types and invalid entities degrade to a logged no-op.
func (w *World) removeComponentByType(e Entity, t reflect.Type) {
	id, ok := w.components.idOf(t)
	if !ok {
		w.log.Warn("remove of unregistered component type", "component", t.String())
		return
	}
	if !w.entities.Alive(e) {
		w.log.Warn("remove component on invalid entity", "entity", e, "component", t.String())
		return
	}
	w.components.stores[id].removeEntity(e)

	sig := w.entities.Signature(e).Without(id)
	w.entities.SetSignature(e, sig)
	w.systems.signatureChanged(e, sig)
}
