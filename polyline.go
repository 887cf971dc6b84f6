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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polyline is an open path through its points, in order.
//
// The same type is used for patterns (the user-edited seed shape) and for
// the fractals built from them. A polyline with fewer than two points has
// no segments.
type Polyline []vec.Vec2

// Segments returns the number of segments of the polyline.
func (p Polyline) Segments() int {
	return max(len(p)-1, 0)
}

// Clone returns a copy of p which does not share storage with p.
func (p Polyline) Clone() Polyline {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Insert inserts pt so that it becomes the point with index i.
// Any fractal built from p must be rebuilt afterwards.
func (p *Polyline) Insert(i int, pt vec.Vec2) {
	*p = slices.Insert(*p, i, pt)
}

// Move replaces the point with index i by pt.
// Any fractal built from p must be rebuilt afterwards.
func (p *Polyline) Move(i int, pt vec.Vec2) {
	(*p)[i] = pt
}

// Remove deletes the point with index i.
// Any fractal built from p must be rebuilt afterwards.
func (p *Polyline) Remove(i int) {
	*p = slices.Delete(*p, i, i+1)
}

// Path converts the polyline into a single open subpath.
// An empty polyline gives an empty path.
func (p Polyline) Path() *path.Data {
	res := &path.Data{}
	for i, pt := range p {
		if i == 0 {
			res.MoveTo(pt)
		} else {
			res.LineTo(pt)
		}
	}
	return res
}
