// gdlrun loads a game description, compiles it and runs the simulation
// in the terminal.
//
// Usage:
//
//	gdlrun [-config runner.yaml] game.gdl
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gdl-engine/audio"
	_ "github.com/lixenwraith/gdl-engine/behavior"
	"github.com/lixenwraith/gdl-engine/compile"
	"github.com/lixenwraith/gdl-engine/config"
	"github.com/lixenwraith/gdl-engine/engine"
)

func main() {
	configPath := flag.String("config", "runner.yaml", "runner configuration file")
	logPath := flag.String("log", "gdlrun.log", "log file path")
	scene := flag.String("scene", "", "override the start scene")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gdlrun [-config runner.yaml] game.gdl")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configPath, *logPath, *scene); err != nil {
		fmt.Fprintln(os.Stderr, "gdlrun:", err)
		os.Exit(1)
	}
}

func run(gamePath, configPath, logPath, sceneOverride string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel, logPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	source, err := os.ReadFile(gamePath)
	if err != nil {
		return err
	}
	def, err := compile.New(log).Compile(source)
	if err != nil {
		return fmt.Errorf("compile %s: %w", gamePath, err)
	}

	ctx := engine.NewGameContext()
	in := newTermInput(cfg.Keys)
	ctx.Input = in

	if cfg.Audio {
		am := audio.NewManager()
		if err := am.Initialize(); err != nil {
			log.Warn("audio unavailable, running silent", zap.Error(err))
		} else {
			ctx.Audio = am
			defer am.Cleanup()
		}
	}

	sim := engine.NewSimulation(def, ctx, log)
	start := def.StartScene
	if sceneOverride != "" {
		start = sceneOverride
	}
	if err := sim.LoadScene(start); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return loop(screen, sim, in, cfg, log)
}

// loop runs the event pump and the fixed-rate tick/render loop until
// the player quits or either goroutine fails.
func loop(screen tcell.Screen, sim *engine.Simulation, in *termInput, cfg *config.Config, log *zap.Logger) error {
	g, ctx := errgroup.WithContext(context.Background())
	quit := make(chan struct{})

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return nil
				}
				in.Handle(ev)
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventInterrupt:
				// Posted by the tick loop on exit so PollEvent unblocks.
				return nil
			}
		}
	})

	g.Go(func() error {
		dt := 1.0 / cfg.TickRate
		ticker := time.NewTicker(time.Duration(float64(time.Second) / cfg.TickRate))
		defer ticker.Stop()
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))

		worldW, worldH := cfg.WorldWidth, cfg.WorldHeight
		if sim.Bounds.X > 0 && sim.Bounds.Y > 0 {
			worldW, worldH = sim.Bounds.X, sim.Bounds.Y
		}
		r := newRenderer(screen, worldW, worldH)
		for {
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}

			sim.Advance(dt)
			if req := sim.Ctx.Scene.TakeRequest(); req != nil {
				if err := sim.LoadScene(req.Scene); err != nil {
					log.Error("scene transition failed", zap.String("scene", req.Scene), zap.Error(err))
					return err
				}
			}
			r.Draw(sim, dt)
		}
	})

	err := g.Wait()
	log.Info("session ended", zap.Float64("elapsed", sim.Elapsed()))
	return err
}

func newLogger(level, path string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
