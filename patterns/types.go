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
	"seehuhn.de/go/fractal"
	"seehuhn.de/go/geom/vec"
)

// Case is a named seed pattern together with the canvas it is drawn on.
type Case struct {
	Name    string           // lowercase a-z and _ only
	Pattern fractal.Polyline // the seed shape, in canvas coordinates
	Width   int              // canvas width in pixels
	Height  int              // canvas height in pixels
	Depth   int              // recursion depth (zero means fractal.DefaultDepth)
}

// Build returns the fractal of the case's pattern.
func (c Case) Build() fractal.Polyline {
	if c.Depth > 0 {
		return fractal.BuildDepth(c.Pattern, c.Depth)
	}
	return fractal.Build(c.Pattern)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
