package ecs

import (
	"iter"
	"log/slog"
	"reflect"
)

// World composes entity identity, component storage and the system registry
// behind a single API. It exclusively owns the three sub-stores for the
// lifetime of the simulation; collaborators hold only a non-owning *World
// for the duration of a call.
type World struct {
	entities   *EntityManager
	components *ComponentManager
	systems    *SystemManager
	commands   *Commands
	log        *slog.Logger
	updates    int64
}

// Option configures a World at construction.
type Option func(*worldConfig)

type worldConfig struct {
	maxEntities int
	log         *slog.Logger
}

// WithMaxEntities sets the fixed entity capacity. The default is
// DefaultMaxEntities.
func WithMaxEntities(n int) Option {
	return func(c *worldConfig) { c.maxEntities = n }
}

// WithLogger sets the logger used for soft-failure diagnostics. The default
// is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *worldConfig) { c.log = log }
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	cfg := worldConfig{
		maxEntities: DefaultMaxEntities,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &World{
		entities:   NewEntityManager(cfg.maxEntities, cfg.log),
		components: NewComponentManager(),
		systems:    NewSystemManager(),
		commands:   newCommands(),
		log:        cfg.log,
	}
}

// CreateEntity returns a fresh or recycled entity with an empty signature,
// or NullEntity once the capacity is exhausted.
func (w *World) CreateEntity() Entity {
	return w.entities.Create()
}

// DestroyEntity cascades: every component kind drops the entity's payload,
// every system drops it from membership (firing the removal hook), and the
// identifier returns to the free list. Data cleanup runs before membership
// cleanup so removal hooks observe a consistent order across frames.
func (w *World) DestroyEntity(e Entity) {
	if !w.entities.Alive(e) {
		w.log.Warn("destroy of invalid entity", "entity", e)
		return
	}
	w.components.entityDestroyed(e)
	w.systems.entityDestroyed(e)
	w.entities.Destroy(e)
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.entities.Alive(e)
}

// Init runs the Init hook of every registered system.
func (w *World) Init() {
	w.systems.initAll(w)
}

// Update runs every registered system once with the given delta time, then
// flushes the deferred command buffer.
func (w *World) Update(dt float64) {
	w.systems.updateAll(w, dt)
	w.commands.flush(w)
	w.updates++
}

// Shutdown runs the Shutdown hook of every registered system.
func (w *World) Shutdown() {
	w.systems.shutdownAll(w)
}

// Commands returns the deferred command buffer. Structural changes made
// from inside a system's Update must go through it; the buffer is flushed
// after all systems ran.
func (w *World) Commands() *Commands {
	return w.commands
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.LivingCount()
}

// SystemCount returns the number of registered system kinds.
func (w *World) SystemCount() int {
	return w.systems.count()
}

// Signature returns the entity's current component signature.
func (w *World) Signature(e Entity) Signature {
	return w.entities.Signature(e)
}

// Entities iterates every live entity, lowest identifier first.
func (w *World) Entities() iter.Seq[Entity] {
	return w.entities.each
}

// ComponentTypes returns the registered component types indexed by their
// ComponentID.
func (w *World) ComponentTypes() []reflect.Type {
	out := make([]reflect.Type, len(w.components.types))
	copy(out, w.components.types)
	return out
}

// ComponentIDByType returns the ComponentID bound to t, if registered.
func (w *World) ComponentIDByType(t reflect.Type) (ComponentID, bool) {
	return w.components.idOf(t)
}

// ComponentByType returns a pointer to the entity's payload of the given
// registered type, type-erased. Debug tooling uses this; typed access goes
// through GetComponent.
func (w *World) ComponentByType(e Entity, t reflect.Type) (any, bool) {
	s, ok := w.components.storeOf(t)
	if !ok {
		return nil, false
	}
	return s.getAny(e)
}
