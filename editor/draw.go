package editor

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal/render"
)

// Colours and line widths of the editor display.
var (
	background     = color.RGBA{A: 255}
	selectionColor = color.RGBA{R: 40, G: 40, B: 201, A: 255}
	fractalColor   = color.RGBA{R: 201, G: 201, B: 201, A: 255}
)

const (
	segmentWidth = 5.0
	patternWidth = 3.0
	fractalWidth = 1.0
	vertexRadius = 7.5

	// patternGray is the brightness of a fully highlighted pattern.
	patternGray = 0.3
)

// Draw paints the session onto c: the selected segment, the pattern, the
// fractal and the selected vertex, in this order.
func (s *Session) Draw(c *render.Canvas) {
	c.Clear(background)

	if i, ok := s.valid(s.Segment); ok && i > 0 {
		c.StrokePolyline(s.Pattern[i-1:i+1], render.Style{
			Width: segmentWidth,
			Color: selectionColor,
			Cap:   graphics.LineCapRound,
		})
	}

	g := uint8(255*patternGray*s.highlight + 0.5)
	c.StrokePolyline(s.Pattern, render.Style{
		Width: patternWidth,
		Color: color.RGBA{R: g, G: g, B: g, A: 255},
		Join:  graphics.LineJoinRound,
	})

	c.StrokePolyline(s.Fractal, render.Style{
		Width: fractalWidth,
		Color: fractalColor,
		Join:  graphics.LineJoinBevel,
	})

	if i, ok := s.valid(s.Vertex); ok {
		c.Dot(s.Pattern[i], vertexRadius, selectionColor)
	}
}
