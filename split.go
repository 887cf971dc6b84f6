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

import "seehuhn.de/go/geom/vec"

// similarity describes the family of similarity transforms which map the
// anchor endpoints of a pattern onto a target segment.
//
// The pattern is stored in anchor-frame coordinates, where the first
// point of the pattern is (0, 0) and the last point is (1, 0).  A point q
// of the frame lands on p0 + q.X·(p1-p0) + q.Y·Rot90(p1-p0) for the
// target segment p0→p1.
type similarity struct {
	local  []vec.Vec2 // pattern points in anchor-frame coordinates
	active []bool     // active[i] is set if edge i-1→i passes the length gate
}

// newSimilarity prepares the substitution of pattern into other segments.
// Edges of the pattern are eligible for further recursion if their squared
// length is below gate.  The second return value is false if the pattern
// has no usable anchor segment.
func newSimilarity(pattern Polyline, gate float64) (*similarity, bool) {
	if len(pattern) < 2 {
		return nil, false
	}
	a := pattern[0]
	ab := pattern[len(pattern)-1].Sub(a)
	l2 := LengthSq(ab)
	if l2 < degenerateThreshold {
		return nil, false
	}
	scale := 1 / l2
	ortX := ab
	ortY := Rot90(ab)

	s := &similarity{
		local:  make([]vec.Vec2, len(pattern)),
		active: make([]bool, len(pattern)),
	}
	for i, q := range pattern {
		v := q.Sub(a)
		s.local[i] = vec.Vec2{X: v.Dot(ortX) * scale, Y: v.Dot(ortY) * scale}
		s.active[i] = i > 0 && DistSq(pattern[i-1], q) < gate
	}
	return s, true
}

// place maps the anchor-frame point q onto the segment starting at p0
// with direction d.
func place(q, p0, d vec.Vec2) vec.Vec2 {
	return p0.Add(d.Mul(q.X)).Add(Rot90(d).Mul(q.Y))
}

// appendSegment appends the interior points of the substitution of
// p0→p1, down to the given depth.  Neither p0 nor p1 is appended.
func (s *similarity) appendSegment(out Polyline, p0, p1 vec.Vec2, depth int) Polyline {
	if depth <= 0 {
		return out
	}

	d := p1.Sub(p0)
	last := len(s.local) - 1
	prev := place(s.local[0], p0, d)
	for i := 1; i <= last; i++ {
		q := place(s.local[i], p0, d)
		if s.active[i] {
			out = s.appendSegment(out, prev, q, depth-1)
			if i < last {
				out = append(out, q)
			}
		}
		prev = q
	}
	return out
}

// AppendSplit replaces the segment p0→p1 by a copy of pattern, scaled,
// rotated and translated so that the first and last points of the
// pattern land on p0 and p1.  This is repeated recursively for the
// pieces, down to the given depth.  The points strictly between p0 and p1
// are appended to out and the extended slice is returned; p0 and p1
// themselves are not appended.
//
// Only pattern edges whose squared length, measured on the pattern
// itself, is below gate take part: they are substituted recursively and
// their end point is emitted.  Other edges are skipped, so that their
// start and end are joined by a straight edge.
//
// Nothing is appended if depth is 0, or if the first and last point of
// the pattern (nearly) coincide.
func AppendSplit(out Polyline, p0, p1 vec.Vec2, pattern Polyline, depth int, gate float64) Polyline {
	if depth <= 0 {
		return out
	}
	s, ok := newSimilarity(pattern, gate)
	if !ok {
		return out
	}
	return s.appendSegment(out, p0, p1, depth)
}

// degenerateThreshold is the squared anchor distance below which a
// pattern cannot define a similarity transform.
const degenerateThreshold = 1e-15
