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

package fractal

import (
	"math"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/rect"
)

// Stats summarises the geometry of a polyline.
type Stats struct {
	Points   int
	Segments int

	// Length is the total arc length.
	Length float64

	// Shortest and Longest are the lengths of the shortest and of the
	// longest segment.  Both are zero for polylines without segments.
	Shortest, Longest float64

	// Bounds is the bounding box of all points.  It is the zero
	// rectangle for an empty polyline.
	Bounds rect.Rect
}

// Measure computes summary statistics for p.
func Measure(p Polyline) Stats {
	st := Stats{
		Points:   len(p),
		Segments: p.Segments(),
	}
	if len(p) == 0 {
		return st
	}

	box := curve.NewRectFromPoints(toPoint(p[0]), toPoint(p[0]))
	st.Shortest = math.Inf(1)
	for i, q := range p {
		box = box.UnionPoint(toPoint(q))
		if i == 0 {
			continue
		}
		l := curve.Line{P0: toPoint(p[i-1]), P1: toPoint(q)}.Length()
		st.Length += l
		st.Shortest = min(st.Shortest, l)
		st.Longest = max(st.Longest, l)
	}
	if st.Segments == 0 {
		st.Shortest = 0
	}
	st.Bounds = rect.Rect{LLx: box.X0, LLy: box.Y0, URx: box.X1, URy: box.Y1}
	return st
}
