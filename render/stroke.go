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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
// The emit callback receives coverage row by row; its slice argument is
// valid only during the call.
//
// The outline is assembled from convex pieces: one quadrilateral per
// segment, plus join and cap shapes.  All pieces are given the same
// orientation, so that the nonzero rule paints their union.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginShape()
	r.flatten(p, r.strokeSubpath)
	r.scan(emit)
}

// strokeSubpath adds the outline pieces of one flattened subpath.
func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	if d <= 0 {
		return
	}
	if len(pts) == 1 {
		// a subpath without direction only shows with round caps
		if r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
		}
		return
	}

	var prevT vec.Vec2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		t := unit(b.Sub(a))
		n := normal(t).Mul(d)
		r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
		if i > 1 {
			r.addJoin(a, prevT, t, d)
		}
		prevT = t
	}

	if closed {
		if len(pts) > 2 {
			r.addJoin(pts[0], prevT, unit(pts[1].Sub(pts[0])), d)
		}
		return
	}
	last := len(pts) - 1
	r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
	r.addCap(pts[last], unit(pts[last].Sub(pts[last-1])), d)
}

// addCap adds the cap at the end point P of a subpath.
// T is the unit tangent pointing away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		n := normal(T).Mul(d)
		ext := T.Mul(d)
		r.addPolygon(P.Add(n), P.Add(n).Add(ext), P.Sub(n).Add(ext), P.Sub(n))
	case graphics.LineCapRound:
		r.addDisc(P, d)
	}
}

// addJoin adds the join at P, where the direction of the path changes
// from T1 to T2.  Only the outer side of the corner needs filling; the
// inner side is covered by the segment pieces.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	sin := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(P, d)
		return
	}

	// For a left turn the outer side is on the right.
	side := d
	if sin > 0 {
		side = -d
	}
	o1 := P.Add(normal(T1).Mul(side))
	o2 := P.Add(normal(T2).Mul(side))

	if r.Join == graphics.LineJoinMiter {
		// The miter length relative to the line width is 1/sin(φ/2) for
		// the interior angle φ, and sin(φ/2) = cos(θ/2) for the turning
		// angle θ.
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bis := normal(T1).Add(normal(T2))
			if l := bis.Length(); l > zeroLengthThreshold {
				m := P.Add(bis.Mul(side / (cosHalf * l)))
				r.addPolygon(P, o1, m, o2)
				return
			}
		}
	}
	r.addPolygon(P, o1, o2)
}

// addDisc adds a regular polygon approximating the circle with the given
// center and radius.  The number of corners is chosen so that the
// deviation from the circle stays below the flatness in device space.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)
	n := minDiscCorners
	if devRadius > r.Flatness {
		// a chord spanning the angle α deviates r(1-cos(α/2)) from the arc
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.piece = r.piece[:0]
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.piece = append(r.piece, center.Add(vec.Vec2{X: cos, Y: sin}.Mul(radius)))
	}
	r.addPolygon(r.piece...)
}

// addPolygon adds the closed polygon through pts to the edge list.  The
// vertices are traversed so that the polygon has negative signed area in
// user space.  Polygons of zero area are dropped.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	n := len(pts)
	switch a := signedArea(pts); {
	case a < 0:
		for i := range n {
			r.addEdge(pts[i], pts[(i+1)%n])
		}
	case a > 0:
		for i := n - 1; i >= 0; i-- {
			r.addEdge(pts[(i+1)%n], pts[i])
		}
	}
}

// signedArea returns the signed area of the closed polygon through pts.
// The area is positive if the vertices are in counter-clockwise order in
// a y-up coordinate system.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// unit returns v scaled to length 1.
// The caller guarantees that v is not (close to) zero.
func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// normal returns T rotated by 90° counter-clockwise (in y-up coordinates).
func normal(T vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -T.Y, Y: T.X}
}

const (
	// minDiscCorners is the smallest number of corners used for round caps
	// and joins.
	minDiscCorners = 8

	// miterEpsilon absorbs rounding errors at the miter limit.
	miterEpsilon = 1e-10
)
