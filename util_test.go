package fractal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// seed has the shape of the pattern the editor starts with.
var seed = Polyline{pt(0, 0), pt(1, 0), pt(2, 1), pt(3, 0), pt(4, 0)}
