package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/ui"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid rows")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid columns")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "time between snake moves")
	cellSize := flag.Int("cell", 24, "cell size in pixels")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "spawn seed (0 = random)")
	flag.IntVar(&cfg.MaxObstacles, "obstacles", cfg.MaxObstacles, "obstacle cap (0 = one per food, unbounded)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *cellSize <= 0 {
		log.Fatalf("config error: cell size must be positive, got %d", *cellSize)
	}

	renderer := ui.NewRenderer(int32(*cellSize))
	w, h := renderer.WindowSize(cfg.Height, cfg.Width)
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// Frame time drives both the tick cadence and the food respawn delay.
	sched := game.NewManualScheduler()
	engine := newGame(cfg, sched)
	frame := engine.Snapshot()
	var elapsed time.Duration

	for !rl.WindowShouldClose() {
		for _, key := range ui.PressedKeys() {
			if engine.GameOver() {
				if key == ui.RestartKey {
					engine = newGame(cfg, sched)
					frame = engine.Snapshot()
					elapsed = 0
				}
				continue
			}
			if d, ok := game.DirectionForKey(key); ok {
				_ = engine.SetDirection(d)
			}
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		sched.Advance(dt)

		// Update game state at fixed interval
		elapsed += dt
		for elapsed >= cfg.TickInterval && !engine.GameOver() {
			elapsed -= cfg.TickInterval
			snap, err := engine.Tick()
			if err != nil {
				log.Fatalf("game error: %v", err)
			}
			if snap.GameOver {
				log.Printf("game over, score %d", snap.Score)
			}
		}

		// The crashing tick clears the body, so game over keeps the last
		// running frame on screen under the overlay.
		if engine.GameOver() {
			frame.GameOver = true
			frame.Score = engine.Score()
		} else {
			frame = engine.Snapshot()
		}
		renderer.Draw(frame)
	}
}

func newGame(cfg game.Config, sched game.Scheduler) *game.Engine {
	engine, err := game.NewEngine(cfg, game.WithScheduler(sched))
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	return engine
}
