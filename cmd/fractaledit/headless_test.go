package main

import (
	"context"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/fractal/editor"
	"seehuhn.de/go/fractal/patterns"
)

func TestRunHeadless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	cfg := headlessConfig{Enabled: true, Hz: 1000, Ticks: 3, Bursts: 1, Out: out}

	s := editor.NewSession(patterns.Seed(), editor.DefaultConfig())
	before := len(s.Fractal)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := runHeadless(context.Background(), s, 320, 200, cfg, logger); err != nil {
		t.Fatal(err)
	}
	if len(s.Fractal) <= before {
		t.Errorf("fractal did not grow: %d -> %d", before, len(s.Fractal))
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("frame size %dx%d", b.Dx(), b.Dy())
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "frame.png")
	cfg := headlessConfig{Enabled: true, Hz: 1, Ticks: 1000, Out: out}
	s := editor.NewSession(patterns.Seed(), editor.DefaultConfig())
	err := runHeadless(ctx, s, 10, 10, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != context.Canceled {
		t.Errorf("got error %v, want context.Canceled", err)
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("cancelled run wrote a frame")
	}
}

func TestRunUnknownPattern(t *testing.T) {
	err := run("no_such_pattern", headlessConfig{Enabled: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err == nil {
		t.Error("unknown pattern accepted")
	}
}
