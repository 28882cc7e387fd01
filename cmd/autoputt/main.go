package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/yohamta/donburi"
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Printf("Warning: %v", err)
	}

	tps := flag.Int("tps", config.C.TPS, "Simulation ticks per second")
	duration := flag.Duration("duration", 30*time.Second, "How long to play (0 = until interrupted)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for layouts and aim jitter")
	width := flag.Int("width", config.C.Width, "Course width")
	height := flag.Int("height", config.C.Height, "Course height")
	variant := flag.String("variant", config.C.Variant.String(), "Obstacle variant (dynamic or static)")
	flag.Parse()

	v, err := config.ParseVariant(*variant)
	if err != nil {
		log.Fatalf("Invalid -variant: %v", err)
	}

	sim := core.NewSimulation(donburi.NewWorld(), float64(*width), float64(*height),
		core.WithRand(rand.New(rand.NewSource(*seed))),
		core.WithVariant(v),
	)
	bot := &core.AimBot{
		Delay:  *tps / 2,
		Jitter: 0.15,
		Rand:   rand.New(rand.NewSource(*seed + 1)),
	}

	wins := 0
	driver := &core.Driver{
		Sim: sim,
		Input: func(s *core.Simulation) {
			if bot.Act(s) == core.ShotFired {
				log.Printf("Shot %d (charge %+.0f)", s.Stats().Shots, s.Ball().Charge)
			}
		},
		Render: func(s *core.Simulation) {
			if w := s.Stats().Wins; w != wins {
				wins = w
				log.Printf("Win %d at tick %d", wins, s.Tick())
			}
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	log.Printf("Starting autoputt %dx%d at %d tps (seed %d)", *width, *height, *tps, *seed)
	err = driver.Run(ctx, core.NewTickerScheduler(*tps))
	stats := sim.Stats()
	log.Printf("Finished after %d ticks: %d wins, best %s (%v)", sim.Tick(), stats.Wins, stats.BestLabel(), err)
}
