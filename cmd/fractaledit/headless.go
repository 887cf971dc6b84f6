package main

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"seehuhn.de/go/fractal/editor"
	"seehuhn.de/go/fractal/render"
)

// headlessConfig controls a session without a window.
type headlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Bursts  int
	Out     string
}

// runHeadless advances the session at the configured tick rate until
// cfg.Ticks ticks have passed or ctx is cancelled, and then writes the
// final frame to cfg.Out.
func runHeadless(ctx context.Context, s *editor.Session, width, height int, cfg headlessConfig, logger *slog.Logger) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	for range cfg.Bursts {
		s.Burst()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for tick < cfg.Ticks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Tick()
			tick++
		}
	}
	logger.Info("headless run finished", "ticks", tick, "fractal", len(s.Fractal))

	return writeFrame(s, width, height, cfg.Out)
}

// writeFrame draws the session and stores the image as PNG.
func writeFrame(s *editor.Session, width, height int, fname string) (err error) {
	c := render.NewCanvas(width, height)
	s.Draw(c)

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := png.Encode(f, c.Img); err != nil {
		return fmt.Errorf("encode %s: %w", fname, err)
	}
	return nil
}
