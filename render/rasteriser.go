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

// Package render draws polylines into images.
//
// The Rasteriser computes exact-area anti-aliased coverage for filled and
// stroked paths.  Canvas combines a Rasteriser with an RGBA image.
// VectorStroke is an alternative backend built on golang.org/x/image/vector.
package render

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to anti-aliased pixel coverage values, the
// fraction of each pixel covered by the painted shape.  Coverage is
// computed by the nonzero winding rule.
//
// The caller creates one instance and reuses it for many paths; internal
// buffers grow as needed but never shrink.  A Rasteriser is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used at the corners of a stroked path.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins.  Must be >= 1.
	MiterLimit float64

	cover     []float32  // signed cover change per pixel; reused as output
	area      []float32  // signed area within each pixel
	edges     []edge     // edges of the current shape, device space
	active    []int      // indices of edges crossing the current scanline
	sub       []vec.Vec2 // points of the subpath being flattened
	piece     []vec.Vec2 // scratch polygon for stroke pieces
	bboxEmpty bool
	bbox      rect.Rect // device space bounding box of edges
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// PDF default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.sub = r.sub[:0]
	r.piece = r.piece[:0]
}

// FillNonZero fills the path using the nonzero winding rule.  Open
// subpaths are closed implicitly.  The emit callback receives coverage
// row by row; its slice argument is valid only during the call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginShape()
	r.flatten(p, func(pts []vec.Vec2, _ bool) {
		for i := 1; i < len(pts); i++ {
			r.addEdge(pts[i-1], pts[i])
		}
		if len(pts) > 1 {
			r.addEdge(pts[len(pts)-1], pts[0])
		}
	})
	r.scan(emit)
}

// flatten walks p and calls fn once for every subpath, with the subpath
// reduced to a list of points.  Curves are replaced by line segments.
// Consecutive duplicate points are dropped.  For closed subpaths the
// first point is repeated at the end.  The slice passed to fn is reused.
func (r *Rasteriser) flatten(p path.Path, fn func(pts []vec.Vec2, closed bool)) {
	r.sub = r.sub[:0]
	var start vec.Vec2
	open := false

	add := func(_, to vec.Vec2) {
		last := r.sub[len(r.sub)-1]
		if to.Sub(last).Length() < zeroLengthThreshold {
			return
		}
		r.sub = append(r.sub, to)
	}
	finish := func(closed bool) {
		if open {
			fn(r.sub, closed)
		}
		r.sub = r.sub[:0]
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			start = pts[0]
			r.sub = append(r.sub, start)
			open = true
		case path.CmdClose:
			if n := len(r.sub); open && n > 1 {
				if r.sub[n-1].Sub(start).Length() < zeroLengthThreshold {
					r.sub[n-1] = start
				} else {
					r.sub = append(r.sub, start)
				}
			}
			finish(true)
		default:
			if !open {
				// drawing without a current subpath continues from the
				// start of the last one
				r.sub = append(r.sub, start)
				open = true
			}
			current := r.sub[len(r.sub)-1]
			switch cmd {
			case path.CmdLineTo:
				add(current, pts[0])
			case path.CmdQuadTo:
				r.flattenQuadratic(current, pts[0], pts[1], add)
			case path.CmdCubeTo:
				r.flattenCubic(current, pts[0], pts[1], pts[2], add)
			}
		}
	}
	finish(false)
}

// transformLinear applies the 2×2 linear part of the CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 by line
// segments, using the CTM-aware flatness tolerance.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev := e.Length(); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates the cubic Bézier p0, p1, p2, p3 by line
// segments.  The number of segments follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// beginShape clears the edge list.
func (r *Rasteriser) beginShape() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the user space segment p0→p1 to device space and
// adds it to the edge list.  Horizontal edges carry no coverage and are
// dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	box := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if r.bboxEmpty {
		r.bbox = box
		r.bboxEmpty = false
	} else {
		r.bbox = rect.Rect{
			LLx: min(r.bbox.LLx, box.LLx),
			LLy: min(r.bbox.LLy, box.LLy),
			URx: max(r.bbox.URx, box.URx),
			URy: max(r.bbox.URy, box.URy),
		}
	}
}

// scan converts the edge list into coverage, one scanline at a time,
// using an active edge list.
//
// For every pixel two values are accumulated: cover, the signed vertical
// extent of the edges crossing the pixel, and area, the part of the cover
// which lies to the right of the crossing within the pixel.  Integrating
// cover from the left and adding area gives the signed covered area of
// each pixel.
func (r *Rasteriser) scan(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	// edges entirely above the clip region never become active
	next := 0
	for next < len(r.edges) && r.edges[next].yMax() <= float64(yMin) {
		next++
	}
	r.active = r.active[:0]

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x - xMin.  Contributions left of
// xMin are folded into the first pixel; contributions right of xMax are
// dropped.  The return value reports whether e crosses the scanline.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	switch {
	case right < xMin:
		c := sign * float32(bottom-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case left >= xMax:
		return true
	case left == right:
		r.deposit(e, top, bottom, sign, left, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), top)
		segBottom := min(max(ya, yb), bottom)
		if segBottom <= segTop {
			continue
		}
		r.deposit(e, segTop, segBottom, sign, pix, xMin, xMax)
	}
	return true
}

// deposit adds the part of e between top and bottom, which lies within
// pixel column pix, to the buffers.
func (r *Rasteriser) deposit(e *edge, top, bottom float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(bottom-top)
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((top+bottom)/2-e.y0)
		frac := xMid - float64(pix)
		r.cover[pix-xMin] += c
		r.area[pix-xMin] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover and area values into coverage
// by the nonzero winding rule.  The cover slice is overwritten.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  It returns nil if all values
// are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.  Joins with an
	// interior angle below about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimum vertical extent, in device
	// pixels, for an edge to contribute coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a path segment.
	// Shorter segments are dropped while flattening.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of the turning angle
	// for which a join is drawn.
	collinearityThreshold = 1e-6
)
