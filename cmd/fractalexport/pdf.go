package main

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/patterns"
)

// writePDF writes a single page PDF file showing the pattern and its
// fractal.  One canvas pixel corresponds to one PDF point.
func writePDF(fname string, c patterns.Case, f fractal.Polyline) error {
	paper := &pdf.Rectangle{
		URx: float64(c.Width),
		URy: float64(c.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; patterns use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(c.Height)})

	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetLineWidth(3)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	if len(c.Pattern) > 1 {
		drawPath(page, c.Pattern.Path())
		page.Stroke()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lineWidth)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinBevel)
	if len(f) > 1 {
		drawPath(page, f.Path())
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the part of the PDF page API used by drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPath(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
