package ecs_test

import (
	"io"
	"log/slog"

	"github.com/corepulse/corepulse/ecs"
)

// Common test component types
type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	DX, DY, DZ float32
}

type Renderable struct {
	MeshID uint32
}

type Health struct {
	Current, Max int
}

type Name struct {
	Value string
}

// Custom primitive type for testing non-struct payloads
type Score int32

func newTestWorld(opts ...ecs.Option) *ecs.World {
	opts = append([]ecs.Option{
		ecs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	return ecs.NewWorld(opts...)
}

// MovementSystem integrates Position by Velocity for its members.
type MovementSystem struct {
	ecs.SystemBase
	Updates int
}

func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	s.Updates++
	for e := range s.Entities() {
		pos := ecs.GetComponent[Position](w, e)
		vel := ecs.GetComponent[Velocity](w, e)
		pos.X += vel.DX * float32(dt)
		pos.Y += vel.DY * float32(dt)
		pos.Z += vel.DZ * float32(dt)
	}
}

// RenderSystem records its membership transitions and lifecycle calls.
type RenderSystem struct {
	ecs.SystemBase
	InitCalls     int
	ShutdownCalls int
	Added         []ecs.Entity
	Removed       []ecs.Entity
}

func (s *RenderSystem) Init(w *ecs.World)              { s.InitCalls++ }
func (s *RenderSystem) Update(w *ecs.World, _ float64) {}
func (s *RenderSystem) Shutdown(w *ecs.World)          { s.ShutdownCalls++ }
func (s *RenderSystem) EntityAdded(e ecs.Entity)       { s.Added = append(s.Added, e) }
func (s *RenderSystem) EntityRemoved(e ecs.Entity)     { s.Removed = append(s.Removed, e) }

// CatchAllSystem has an empty required signature, so every entity whose
// signature ever changes becomes a member.
type CatchAllSystem struct {
	ecs.SystemBase
}

func (s *CatchAllSystem) Update(w *ecs.World, _ float64) {}
