package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"rock-snake/audio"
	"rock-snake/game"
	"rock-snake/game/types"
	"rock-snake/ui"
	"rock-snake/ui/terminal"
	"rock-snake/ui/window"

	"github.com/pkg/errors"
)

func main() {
	defaults := game.DefaultConfig()
	speed := flag.Int("speed", defaults.Speed, "Game speed in ticks per second")
	width := flag.Int("width", defaults.Width, "Board width in pixels")
	height := flag.Int("height", defaults.Height, "Board height in pixels")
	cell := flag.Int("cell", defaults.CellSize, "Cell size in pixels")
	variant := flag.String("variant", string(defaults.Variant), "Game variant: classic or extended")
	rocks := flag.Int("rocks", defaults.Rocks, "Number of rocks in the extended variant")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 for a random one")
	frontend := flag.String("frontend", "window", "Frontend: window or terminal")
	sound := flag.Bool("sound", false, "Play sound effects")
	logFile := flag.String("log", "", "Write logs to this file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := game.Config{
		Width:    *width,
		Height:   *height,
		CellSize: *cell,
		Speed:    *speed,
		Variant:  game.Variant(*variant),
		Rocks:    *rocks,
		Seed:     *seed,
	}

	if err := run(cfg, *frontend, *sound, *logFile, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, frontend string, sound bool, logFile string, debug bool) error {
	logger, closeLog, err := newLogger(logFile, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := game.NewGame(cfg, logger)
	if err != nil {
		return err
	}

	fe, err := newFrontend(frontend, g.Grid)
	if err != nil {
		return err
	}
	if err := fe.Init(); err != nil {
		return errors.Wrapf(err, "starting %s frontend", frontend)
	}
	defer fe.Close()

	sounds := audio.NewSoundPlayer()
	if sound {
		// Non-fatal, game can run without sound
		if err := sounds.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		}
	}
	defer sounds.Close()

	ui.Run(g, fe, game.NewClock(cfg.Speed), sounds.Play)

	stats := g.GetStats()
	logger.Info("session ended",
		"session", g.UUID,
		"duration", g.ElapsedTime().String(),
		"ticks", stats.Ticks,
		"high_score", stats.HighScore,
		"deaths", stats.Deaths)
	return nil
}

func newFrontend(name string, grid types.Grid) (ui.Frontend, error) {
	switch name {
	case "window":
		return window.NewRenderer(grid), nil
	case "terminal":
		return terminal.New(nil, grid), nil
	}
	return nil, errors.Errorf("unknown frontend %q", name)
}

// newLogger logs to a file when one is given and nowhere otherwise, since
// stderr belongs to the terminal frontend while the game runs.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening log file")
		}
		w = f
		closeFn = func() { f.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}
