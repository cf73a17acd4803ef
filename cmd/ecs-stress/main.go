package main

//go:generate go run ./gen

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/corepulse/corepulse/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 0, "Entities destroyed and respawned per update.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting world stress test...")

	// 1. Set up the world with the generated component and system set.
	// Identifier 0 is reserved, so capacity is one past the target count.
	world := ecs.NewWorld(ecs.WithMaxEntities(*entityCount + 1))
	RegisterAllGeneratedComponents(world)
	RegisterAllGeneratedSystems(world)

	// 2. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	live := make([]ecs.Entity, 0, *entityCount)
	for i := 0; i < *entityCount; i++ {
		// Spawn an entity with 1 to 5 random components
		numComponents := rand.Intn(5) + 1
		live = append(live, SpawnRandomEntity(world, numComponents))
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     generatedComponentCount,
		Systems:        generatedSystemCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	world.Init()

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			world.Update(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			// Churn exercises identifier recycling and membership fan-out
			// under load, not just the steady-state update path.
			for i := 0; i < *churn && len(live) > 0; i++ {
				victim := rand.Intn(len(live))
				world.DestroyEntity(live[victim])
				live[victim] = SpawnRandomEntity(world, rand.Intn(5)+1)
			}

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
		}
	}

	world.Shutdown()

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = world.Stats().TotalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
