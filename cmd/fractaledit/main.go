// Command fractaledit is an interactive editor for fractal patterns.
//
// Move the mouse over the pattern to select a vertex or a segment.  Drag a
// selected vertex with the left mouse button, click a selected segment to
// insert a new vertex, and click a selected vertex with the right mouse
// button to delete it.  SPACE grows the fractal quickly, ESC quits.
//
// With -headless, no window is opened.  The fractal is grown for the given
// number of ticks and the final frame is written to a PNG file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/fractal/editor"
	"seehuhn.de/go/fractal/patterns"
)

func main() {
	var cfg headlessConfig
	name := flag.String("pattern", "classic_seed", "Start with the named catalogue `pattern`.")
	verbose := flag.Bool("v", false, "Log debug messages.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 100, "Stop after N ticks in headless mode.")
	flag.IntVar(&cfg.Bursts, "burst", 0, "Grow by N bursts before the first tick in headless mode.")
	flag.StringVar(&cfg.Out, "out", "fractal.png", "Write the final frame of headless mode to `file`.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*name, cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(name string, cfg headlessConfig, logger *slog.Logger) error {
	tc, ok := patterns.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}

	sessCfg := editor.DefaultConfig()
	sessCfg.Logger = logger
	s := editor.NewSession(tc.Pattern, sessCfg)
	logger.Info("session started", "pattern", name, "points", len(s.Pattern), "fractal", len(s.Fractal))

	if !cfg.Enabled {
		return runWindow(s, tc.Width, tc.Height)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := runHeadless(ctx, s, tc.Width, tc.Height, cfg, logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
