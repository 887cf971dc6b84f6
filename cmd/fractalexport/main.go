// Command fractalexport renders the pattern catalogue to image files.
//
// For every pattern in the catalogue the fractal is built, optionally
// grown further, and written as PNG.  With -pdf, a vector version is
// written as well.  With -json, the catalogue is written to a JSON file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/patterns"
)

type options struct {
	outDir   string
	backend  string
	pdf      bool
	grow     int
	only     string
	jsonFile string
}

func main() {
	var opt options
	flag.StringVar(&opt.outDir, "out", "out", "Write images to `dir`.")
	flag.StringVar(&opt.backend, "backend", "render", "Rasteriser to use for PNG output: render or vector.")
	flag.BoolVar(&opt.pdf, "pdf", false, "Also write PDF files.")
	flag.IntVar(&opt.grow, "grow", 0, "Apply N growth steps after building each fractal.")
	flag.StringVar(&opt.only, "only", "", "Only export the pattern with the given `name`.")
	flag.StringVar(&opt.jsonFile, "json", "", "Write the catalogue as JSON to `file`.")
	verbose := flag.Bool("v", false, "Log debug messages.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(opt, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(opt options, logger *slog.Logger) error {
	var draw drawFunc
	switch opt.backend {
	case "render":
		draw = drawRender
	case "vector":
		draw = drawVector
	default:
		return fmt.Errorf("unknown backend %q", opt.backend)
	}

	if err := os.MkdirAll(opt.outDir, 0755); err != nil {
		return err
	}

	var built []namedFractal
	for _, category := range slices.Sorted(maps.Keys(patterns.All)) {
		for _, tc := range patterns.All[category] {
			name := category + "_" + tc.Name
			if opt.only != "" && name != opt.only {
				continue
			}

			f := tc.Build()
			grow := fractal.DefaultGrowOptions()
			for range opt.grow {
				fractal.Grow(&f, tc.Pattern, grow)
			}
			st := fractal.Measure(f)
			logger.Debug("built",
				"name", name,
				"points", st.Points,
				"length", st.Length,
				"shortest", st.Shortest,
				"longest", st.Longest)

			pngPath := filepath.Join(opt.outDir, name+".png")
			if err := writePNG(pngPath, tc, f, draw); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if opt.pdf {
				pdfPath := filepath.Join(opt.outDir, name+".pdf")
				if err := writePDF(pdfPath, tc, f); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			logger.Info("exported", "name", name, "points", len(f))
			built = append(built, namedFractal{name: name, c: tc, f: f, stats: st})
		}
	}
	if opt.only != "" && len(built) == 0 {
		return fmt.Errorf("unknown pattern %q", opt.only)
	}

	if opt.jsonFile != "" {
		if err := writeJSON(opt.jsonFile, built); err != nil {
			return err
		}
	}
	return nil
}

type namedFractal struct {
	name  string
	c     patterns.Case
	f     fractal.Polyline
	stats fractal.Stats
}
