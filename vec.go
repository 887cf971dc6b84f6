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
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// Rot90 returns p rotated by a quarter turn, (x, y) → (y, -x).
func Rot90(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.Y, Y: -p.X}
}

// LengthSq returns the squared length of v.
func LengthSq(v vec.Vec2) float64 {
	return v.Dot(v)
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b vec.Vec2) float64 {
	return LengthSq(b.Sub(a))
}

// SegmentDistSq returns the squared distance between p and the line
// segment from v to w.
//
// The projection of p onto the line through v and w is clamped to the
// segment. If v == w, the distance to v is returned.
func SegmentDistSq(p, v, w vec.Vec2) float64 {
	l2 := DistSq(v, w)
	if l2 == 0 {
		return DistSq(p, v)
	}

	// v + t(w-v) is the projection for t = (p-v)·(w-v) / |w-v|²
	t := p.Sub(v).Dot(w.Sub(v)) / l2
	t = max(0, min(1, t))
	proj := v.Add(w.Sub(v).Mul(t))
	return DistSq(p, proj)
}

func toPoint(v vec.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}
