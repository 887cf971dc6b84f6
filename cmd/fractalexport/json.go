package main

import (
	"encoding/json"
	"os"

	"seehuhn.de/go/geom/vec"
)

type jsonCatalogue struct {
	Patterns []jsonPattern `json:"patterns"`
}

type jsonPattern struct {
	Name     string      `json:"name"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Depth    int         `json:"depth,omitempty"`
	Pattern  [][]float64 `json:"pattern"`
	Points   int         `json:"points"`
	Length   float64     `json:"length"`
	Shortest float64     `json:"shortest"`
	Longest  float64     `json:"longest"`
}

// writeJSON writes the patterns and summary statistics of their fractals.
func writeJSON(fname string, built []namedFractal) (err error) {
	var out jsonCatalogue
	for _, b := range built {
		out.Patterns = append(out.Patterns, jsonPattern{
			Name:     b.name,
			Width:    b.c.Width,
			Height:   b.c.Height,
			Depth:    b.c.Depth,
			Pattern:  pointsToJSON(b.c.Pattern),
			Points:   b.stats.Points,
			Length:   b.stats.Length,
			Shortest: b.stats.Shortest,
			Longest:  b.stats.Longest,
		})
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
