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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes how a polyline is stroked.
type Style struct {
	Width float64
	Color color.Color
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

// Canvas is an RGBA image together with a rasteriser and a
// transformation from drawing coordinates to pixels.
type Canvas struct {
	Img *image.RGBA

	// CTM maps drawing coordinates to pixel coordinates.
	CTM matrix.Matrix

	r *Rasteriser
}

// NewCanvas allocates a transparent canvas of the given size, with the
// identity transformation.
func NewCanvas(width, height int) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Img: image.NewRGBA(image.Rect(0, 0, width, height)),
		CTM: matrix.Identity,
		r:   NewRasteriser(clip),
	}
}

// Clear fills the whole canvas with c.
func (c *Canvas) Clear(col color.Color) {
	r, g, b, a := col.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	pix := c.Img.Pix
	for i := 0; i+4 <= len(pix); i += 4 {
		copy(pix[i:i+4], px[:])
	}
}

// StrokePolyline draws the line through pts.  Consecutive points are
// joined by straight segments.
func (c *Canvas) StrokePolyline(pts []vec.Vec2, s Style) {
	if len(pts) == 0 {
		return
	}
	c.r.CTM = c.CTM
	c.r.Width = s.Width
	c.r.Cap = s.Cap
	c.r.Join = s.Join
	c.r.Stroke(PolylinePath(pts), c.painter(s.Color))
}

// Dot draws a filled disc.  The radius is given in drawing coordinates.
func (c *Canvas) Dot(center vec.Vec2, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	c.r.CTM = c.CTM
	c.r.Width = 2 * radius
	c.r.Cap = graphics.LineCapRound
	c.r.Stroke(PolylinePath([]vec.Vec2{center}), c.painter(col))
}

// Fill paints the interior of p by the nonzero winding rule.
func (c *Canvas) Fill(p path.Path, col color.Color) {
	c.r.CTM = c.CTM
	c.r.FillNonZero(p, c.painter(col))
}

// painter returns an emit function which composites col onto the canvas
// using the "over" operator, with the coverage as an additional alpha
// factor.
func (c *Canvas) painter(col color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := col.RGBA()
	src := [4]float32{
		float32(sr) / 0xffff,
		float32(sg) / 0xffff,
		float32(sb) / 0xffff,
		float32(sa) / 0xffff,
	}
	return func(y, xMin int, coverage []float32) {
		row := c.Img.Pix[y*c.Img.Stride+4*xMin:]
		for i, cov := range coverage {
			px := row[4*i : 4*i+4]
			keep := 1 - src[3]*cov
			for k := range px {
				v := 255*src[k]*cov + float32(px[k])*keep
				px[k] = uint8(min(v+0.5, 255))
			}
		}
	}
}

// PolylinePath returns the path which visits pts in order.
func PolylinePath(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			buf[0] = p
			if !yield(cmd, buf[:]) {
				return
			}
		}
	}
}

// Fit returns the transformation which scales and centres the bounding box
// b into a width×height image, leaving margin pixels on every side.  The
// aspect ratio is preserved.
func Fit(b rect.Rect, width, height int, margin float64) matrix.Matrix {
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin
	bw := b.URx - b.LLx
	bh := b.URy - b.LLy

	s := 1.0
	switch {
	case bw > 0 && bh > 0:
		s = min(w/bw, h/bh)
	case bw > 0:
		s = w / bw
	case bh > 0:
		s = h / bh
	}
	if s <= 0 {
		s = 1
	}

	cx := (b.LLx + b.URx) / 2
	cy := (b.LLy + b.URy) / 2
	return matrix.Matrix{s, 0, 0, s, float64(width)/2 - s*cx, float64(height)/2 - s*cy}
}
