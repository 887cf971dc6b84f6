package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/patterns"
	"seehuhn.de/go/fractal/render"
)

// drawFunc draws the fractal f of the case c into a new image.
type drawFunc func(c patterns.Case, f fractal.Polyline) image.Image

var (
	patternColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	lineWidth    = 1.0
)

func drawRender(c patterns.Case, f fractal.Polyline) image.Image {
	cv := render.NewCanvas(c.Width, c.Height)
	cv.Clear(color.White)
	cv.StrokePolyline(c.Pattern, render.Style{
		Width: 3,
		Color: patternColor,
		Join:  graphics.LineJoinRound,
		Cap:   graphics.LineCapRound,
	})
	cv.StrokePolyline(f, render.Style{
		Width: lineWidth,
		Color: color.Black,
		Join:  graphics.LineJoinBevel,
	})
	return cv.Img
}

func drawVector(c patterns.Case, f fractal.Polyline) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	render.VectorStroke(img, c.Pattern, matrix.Identity, 3, image.NewUniform(patternColor))
	render.VectorStroke(img, f, matrix.Identity, lineWidth, image.Black)
	return img
}

func writePNG(fname string, c patterns.Case, f fractal.Polyline, fn drawFunc) (err error) {
	img := fn(c, f)

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
