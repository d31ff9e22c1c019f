package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/sim"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "", "Tuning file (.yaml, .yml or .toml)")
	levelPath := flag.String("level", "", "TMX level (empty = bundled proving ground)")
	script := flag.String("script", "idle:30,walk:60,run:60,run+jump:1,run:60,crouch:30,idle:30", "Input script")
	spawn := flag.Int("spawn", 0, "Spawn point index")
	trace := flag.Bool("trace", true, "Log every tick")
	realtime := flag.Bool("realtime", false, "Tick on the wall clock at sim.tick_rate")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	steps, err := sim.ParseScript(*script)
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	w := donburi.NewWorld()
	if _, err := factory.LoadLevel(w, *levelPath); err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	character, err := factory.SpawnCharacter(w, *spawn)
	if err != nil {
		log.Fatalf("Failed to spawn character: %v", err)
	}

	runner := sim.NewRunner(w, character)
	report := func(s sim.Sample) {
		if *trace {
			logSample(s)
		}
	}

	log.Printf("Running %d ticks at %d ticks/second", steps.Ticks(), config.Sim.TickRate)

	var last sim.Sample
	if *realtime {
		last = runRealtime(runner, steps, report)
	} else {
		last = runner.Run(steps, report)
	}

	log.Printf("Finished at tick %d: posture=%s pos=(%.3f, %.3f, %.3f) yaw=%.1f",
		last.Tick, last.Posture, last.Position.X(), last.Position.Y(), last.Position.Z(), last.Yaw)
}

// runRealtime plays the script one tick per ticker interval. SIGINT stops
// it early.
func runRealtime(runner *sim.Runner, steps sim.Script, report func(sim.Sample)) sim.Sample {
	var (
		last  sim.Sample
		index int
		count int
	)

	var loop *sim.Loop
	loop = sim.NewLoop(config.Sim.TickRate, func() {
		if index >= len(steps) {
			loop.Stop()
			return
		}
		last = runner.Tick(steps[index])
		report(last)
		count++
		if count >= steps[index].Ticks {
			index++
			count = 0
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	loop.Run()
	return last
}

func logSample(s sim.Sample) {
	log.Printf("tick=%d posture=%-7s from=%-7s loco=%-4s arm=%-6s pos=(%.3f, %.3f, %.3f) yaw=%6.1f v=%6.2f grounded=%t blocked=%t | %s=%.2f %s=%.2f %s=%.2f %s=%.2f %s=%.2f",
		s.Tick, s.Posture, s.PreviousPosture, s.Locomotion, s.Arm,
		s.Position.X(), s.Position.Y(), s.Position.Z(), s.Yaw, s.VerticalVelocity,
		s.Grounded, s.Blocked,
		config.DriverNames[motion.DriverPosture], s.Drivers.Value(motion.DriverPosture),
		config.DriverNames[motion.DriverMoveSpeed], s.Drivers.Value(motion.DriverMoveSpeed),
		config.DriverNames[motion.DriverTurnSpeed], s.Drivers.Value(motion.DriverTurnSpeed),
		config.DriverNames[motion.DriverVerticalSpeed], s.Drivers.Value(motion.DriverVerticalSpeed),
		config.DriverNames[motion.DriverFeetPhase], s.Drivers.Value(motion.DriverFeetPhase),
	)
}
