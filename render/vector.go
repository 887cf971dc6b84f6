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

package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// VectorStroke draws the polyline pts onto dst using the rasteriser from
// golang.org/x/image/vector.  Every segment becomes a quadrilateral of the
// given width and every interior vertex gets a bevel join.  No caps are
// drawn.  The ctm maps polyline coordinates to pixel coordinates of dst.
func VectorStroke(dst draw.Image, pts []vec.Vec2, ctm matrix.Matrix, width float64, src image.Image) {
	b := dst.Bounds()
	if len(pts) < 2 || width <= 0 || b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	origin := vec.Vec2{X: float64(b.Min.X), Y: float64(b.Min.Y)}
	var quad [4]vec.Vec2
	polygon := func(pts ...vec.Vec2) {
		if signedArea(pts) > 0 {
			for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
				pts[i], pts[j] = pts[j], pts[i]
			}
		}
		for i, p := range pts {
			q := apply(ctm, p).Sub(origin)
			if i == 0 {
				z.MoveTo(float32(q.X), float32(q.Y))
			} else {
				z.LineTo(float32(q.X), float32(q.Y))
			}
		}
		z.ClosePath()
	}

	d := width / 2
	var prevT vec.Vec2
	first := true
	for i := 1; i < len(pts); i++ {
		a, c := pts[i-1], pts[i]
		seg := c.Sub(a)
		if seg.Length() < zeroLengthThreshold {
			continue
		}
		t := unit(seg)
		n := normal(t).Mul(d)
		quad = [4]vec.Vec2{a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)}
		polygon(quad[:]...)

		if !first {
			side := d
			if prevT.X*t.Y-prevT.Y*t.X > 0 {
				side = -d
			}
			polygon(a, a.Add(normal(prevT).Mul(side)), a.Add(normal(t).Mul(side)))
		}
		prevT = t
		first = false
	}

	z.Draw(dst, b, src, image.Point{})
}

// apply maps p through m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
