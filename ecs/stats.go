package ecs

import "time"

// SystemStats is a snapshot of one system's execution counters.
type SystemStats struct {
	Name           string
	Signature      Signature
	EntityCount    int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// WorldStats is a snapshot of the world's bookkeeping state.
type WorldStats struct {
	Entities        int
	EntityCapacity  int
	EntitiesCreated uint64
	ComponentKinds  int
	SystemCount     int
	TotalUpdates    int64
	Systems         []SystemStats
}

// Stats returns a snapshot of entity, component and system counters.
func (w *World) Stats() WorldStats {
	stats := WorldStats{
		Entities:        w.entities.LivingCount(),
		EntityCapacity:  w.entities.Capacity(),
		EntitiesCreated: w.entities.CreatedTotal(),
		ComponentKinds:  w.components.kindCount(),
		SystemCount:     w.systems.count(),
		TotalUpdates:    w.updates,
		Systems:         make([]SystemStats, len(w.systems.entries)),
	}
	for i, en := range w.systems.entries {
		s := SystemStats{
			Name:           en.name,
			Signature:      en.signature,
			EntityCount:    en.system.base().EntityCount(),
			ExecutionCount: en.executions,
			MaxDuration:    en.maxDuration,
			LastDuration:   en.lastDuration,
			TotalDuration:  en.totalDuration,
		}
		if en.executions > 0 {
			s.MinDuration = en.minDuration
			s.AvgDuration = en.totalDuration / time.Duration(en.executions)
		}
		stats.Systems[i] = s
	}
	return stats
}
