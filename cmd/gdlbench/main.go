// gdlbench measures simulation throughput on a synthetic scene.
//
// Profiling:
//
//	gdlbench -entities 5000 -ticks 10000 -profile cpu
//	go tool pprof -http=":8000" gdlbench cpu.pprof
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"

	"github.com/lixenwraith/gdl-engine/behavior"
	"github.com/lixenwraith/gdl-engine/compile"
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/engine"
)

func main() {
	entities := flag.Int("entities", 1000, "entities to simulate")
	ticks := flag.Int("ticks", 10000, "ticks to run")
	mode := flag.String("profile", "", "profile mode: cpu, mem or empty")
	flag.Parse()

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		fmt.Println("unknown profile mode:", *mode)
		return
	}

	sim := build(*entities)
	dt := 1.0 / 60.0

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		sim.Advance(dt)
	}
	elapsed := time.Since(start)

	perTick := elapsed / time.Duration(*ticks)
	fmt.Printf("%d entities, %d ticks in %v (%v/tick, %.0f ticks/s)\n",
		*entities, *ticks, elapsed.Round(time.Millisecond), perTick,
		float64(time.Second)/float64(perTick))
}

// build synthesizes a world directly, bypassing the compiler, so the
// benchmark isolates integration and behavior dispatch.
func build(n int) *engine.Simulation {
	def := &compile.GameDefinition{Title: "bench", Width: 4096, Height: 4096}
	sim := engine.NewSimulation(def, engine.NewGameContext(), nil)

	player := sim.World.CreateEntity("player", "player")
	sim.World.Transforms.Set(player, component.TransformComponent{X: 2048, Y: 2048, ScaleX: 1, ScaleY: 1})
	sim.World.Physics.Set(player, component.PhysicsComponent{MaxSpeed: 300})

	for i := 0; i < n; i++ {
		e := sim.World.CreateEntity(fmt.Sprintf("enemy-%d", i), "enemy")
		sim.World.Transforms.Set(e, component.TransformComponent{
			X:      float64(i%64) * 64,
			Y:      float64(i/64) * 64,
			ScaleX: 1, ScaleY: 1,
		})
		sim.World.Physics.Set(e, component.PhysicsComponent{MaxSpeed: 120})
		sim.World.Stats.Set(e, component.StatsComponent{Health: 100, MaxHealth: 100})
		sim.World.Behaviors.Set(e, engine.BehaviorComponent{
			Behaviors: []engine.Behavior{behavior.NewEnemyAI(behavior.Props{
				"speed":          80.0,
				"detectionRange": 150.0,
			})},
		})
	}
	return sim
}
