// seehuhn.de/go/fractal - self-similar polylines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package patterns

import (
	"math"

	"seehuhn.de/go/fractal"
)

// Seed returns the pattern the interactive editor starts with.
func Seed() fractal.Polyline {
	return fractal.Polyline{
		pt(80, 600), pt(400, 600), pt(900, 400), pt(1400, 600), pt(1720, 600),
	}
}

var classicCases = []Case{
	{
		Name:    "seed",
		Pattern: Seed(),
		Width:   1920,
		Height:  1080,
	},
	{
		Name:    "koch",
		Pattern: unit(50, 250, 200, 0, 0, 1, 0, 1.5, math.Sqrt(3)/2, 2, 0, 3, 0),
		Width:   700,
		Height:  300,
	},
	{
		Name:    "levy",
		Pattern: unit(150, 400, 200, 0, 0, 1, 1, 2, 0),
		Width:   700,
		Height:  600,
	},
	{
		Name: "minkowski",
		Pattern: unit(50, 250, 150,
			0, 0, 1, 0, 1, 1, 2, 1, 2, 0, 2, -1, 3, -1, 3, 0, 4, 0),
		Width:  700,
		Height: 500,
	},
	{
		Name:    "cesaro",
		Pattern: unit(50, 350, 150, 0, 0, 1.5, 0, 2, 1.2, 2.5, 0, 4, 0),
		Width:   700,
		Height:  500,
	},
}

// unit maps pattern points given in a y-up unit coordinate system onto a
// y-down canvas, with the origin at (x0, y0) and scale factor s.
// The coordinates are given as a flat list x1, y1, x2, y2, ...
func unit(x0, y0, s float64, coords ...float64) fractal.Polyline {
	res := make(fractal.Polyline, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, pt(x0+s*coords[i], y0-s*coords[i+1]))
	}
	return res
}
