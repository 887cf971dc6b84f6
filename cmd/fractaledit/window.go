package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fractal/editor"
	"seehuhn.de/go/fractal/render"
)

// runWindow opens a window showing the session and forwards mouse and
// keyboard input to it.  It blocks until the window closes.
func runWindow(s *editor.Session, width, height int) error {
	g := &editorGame{
		s:      s,
		canvas: render.NewCanvas(width, height),
	}
	ebiten.SetWindowTitle("fractaledit")
	ebiten.SetWindowSize(width/2, height/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type editorGame struct {
	s      *editor.Session
	canvas *render.Canvas
	img    *ebiten.Image

	mouseX, mouseY int
}

var mouseButtons = []struct {
	eb ebiten.MouseButton
	ed editor.Button
}{
	{ebiten.MouseButtonLeft, editor.Left},
	{ebiten.MouseButtonRight, editor.Right},
}

func (g *editorGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if x, y := ebiten.CursorPosition(); x != g.mouseX || y != g.mouseY {
		g.mouseX, g.mouseY = x, y
		g.s.MouseMove(vec.Vec2{X: float64(x), Y: float64(y)})
	}
	for _, b := range mouseButtons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.eb):
			g.s.MouseButton(b.ed, true)
		case inpututil.IsMouseButtonJustReleased(b.eb):
			g.s.MouseButton(b.ed, false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.s.Burst()
	}

	g.s.Tick()
	return nil
}

func (g *editorGame) Draw(screen *ebiten.Image) {
	b := g.canvas.Img.Bounds()
	if g.img == nil {
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.s.Draw(g.canvas)
	g.img.WritePixels(g.canvas.Img.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *editorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.canvas.Img.Bounds()
	return b.Dx(), b.Dy()
}
