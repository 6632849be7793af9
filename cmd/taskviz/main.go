// Command taskviz runs the task layer against the built-in simulation world
// and streams behavior-selection events to websocket observers. It is a
// development tool; the library itself has no network surface.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"villager-tasks/tasklayer/compose"
	"villager-tasks/tasklayer/config"
	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/internal/sim"
	"villager-tasks/tasklayer/logging"
	"villager-tasks/tasklayer/logging/sinks"
	"villager-tasks/tasklayer/task"
	"villager-tasks/tasklayer/tasks"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "listen address for observers")
		seed     = flag.String("seed", sim.DefaultSeed, "deterministic world seed")
		tickRate = flag.Int("tick-rate", 20, "game ticks per second")
		cfgPath  = flag.String("config", "", "optional tuning config override")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("taskviz: %v", err)
		}
		cfg = loaded
	}

	hub := newHub()
	console := sinks.NewConsoleSink(os.Stdout).Publisher()
	pub := logging.PublisherFunc(func(ctx context.Context, event logging.Event) {
		console.Publish(ctx, event)
		hub.Broadcast(event)
	})

	binding := buildBinding(cfg, pub)
	world, agents := buildWorld(*seed, binding, cfg, pub)

	http.Handle("/ws", hub)
	go func() {
		log.Printf("taskviz listening on %s", *addr)
		if err := http.ListenAndServe(*addr, nil); err != nil {
			log.Fatalf("taskviz: %v", err)
		}
	}()

	interval := time.Second / time.Duration(*tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		world.Advance()
		for _, agent := range agents {
			agent.Tick(world)
		}
	}
}

// buildBinding registers the sample contributors, freezes the registry, and
// wires the composition engine the way a host module-init phase would.
func buildBinding(cfg config.Config, pub logging.Publisher) *compose.Binding {
	registry := task.NewRegistry(pub)

	farmer := task.NewBuilder().
		Constant(task.Work, 6, tasks.CropTenderFactory(tasks.CropTenderConfig{
			Seed: "wheat_seeds",
			Planted: func() host.BlockState {
				return &sim.CropState{Kind: "wheat", MaxAge: 7}
			},
			EndDelay: cfg.WorkerEndDelayTicks,
		})).
		Random(task.Work, tasks.BoneMealerFactory(tasks.BoneMealerConfig{
			EndDelay: cfg.WorkerEndDelayTicks,
		}), 2).
		MustBuild()
	registry.MustRegister("farmer", farmer)

	if err := registry.Base().AddPlayConstant(5, func(speed float64) host.Behavior {
		return sim.Builtin{Label: "chase_friends"}
	}); err != nil {
		log.Fatalf("taskviz: %v", err)
	}

	frozen := registry.Freeze()
	engine := compose.NewEngine(frozen, sim.BuiltinDefaults{},
		compose.WithRandomPriority(cfg.RandomTaskPriority),
		compose.WithPublisher(pub))
	return compose.NewBinding(engine)
}

func buildWorld(seed string, binding *compose.Binding, cfg config.Config, pub logging.Publisher) (*sim.World, []*sim.Agent) {
	world := sim.NewWorld(seed)

	// A small farm plot next to the villagers.
	for x := 2; x <= 5; x++ {
		for z := 2; z <= 5; z++ {
			world.SetBlockState(host.BlockPos{X: x, Y: -1, Z: z}, sim.FarmlandState{})
			if (x+z)%2 == 0 {
				world.SetBlockState(host.BlockPos{X: x, Y: 0, Z: z}, &sim.CropState{Kind: "wheat", Age: 7, MaxAge: 7})
			}
		}
	}

	farmer := sim.NewVillager("farmer", host.Vec3{X: 3.5, Y: 0, Z: 3.5})
	farmer.Items().Add("wheat_seeds", 16)
	farmer.Items().Add("bone_meal", 8)
	baby := sim.NewBabyVillager(host.Vec3{X: 1.5, Y: 0, Z: 1.5})

	agents := []*sim.Agent{
		sim.NewAgent(farmer, binding, cfg.DefaultSpeed, pub),
		sim.NewAgent(baby, binding, cfg.DefaultSpeed, pub),
	}
	return world, agents
}
