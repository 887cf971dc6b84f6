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
	"testing"
)

func TestGrowLongest(t *testing.T) {
	f := Polyline{pt(0, 0), pt(4, 0), pt(5, 0)}
	GrowLongest(&f, seed)
	want := Polyline{pt(0, 0), pt(1, 0), pt(2, 1), pt(3, 0), pt(4, 0), pt(5, 0)}
	diff(t, want, f)
}

func TestGrowLongestTie(t *testing.T) {
	f := Polyline{pt(0, 0), pt(4, 0), pt(8, 0)}
	GrowLongest(&f, seed)
	want := Polyline{pt(0, 0), pt(1, 0), pt(2, 1), pt(3, 0), pt(4, 0), pt(8, 0)}
	diff(t, want, f)
}

func TestGrowLongestDegenerate(t *testing.T) {
	f := Polyline{pt(1, 1), pt(1, 1), pt(1, 1)}
	GrowLongest(&f, seed)
	diff(t, Polyline{pt(1, 1), pt(1, 1), pt(1, 1)}, f)

	f = Polyline{pt(0, 0), pt(4, 0)}
	loop := Polyline{pt(0, 0), pt(1, 1), pt(0, 0)}
	GrowLongest(&f, loop)
	diff(t, Polyline{pt(0, 0), pt(4, 0)}, f)

	var empty Polyline
	GrowLongest(&empty, seed)
	if len(empty) != 0 {
		t.Errorf("empty fractal grew to %d points", len(empty))
	}
}

func TestGrowLongestBurst(t *testing.T) {
	f := Build(seed)
	n := len(f)
	GrowLongestBurst(&f, seed, 1)
	if len(f) != n+len(seed)-2 {
		t.Errorf("got %d points, want %d", len(f), n+len(seed)-2)
	}
	GrowLongestBurst(&f, seed, 10)
	if len(f) != n+11*(len(seed)-2) {
		t.Errorf("got %d points, want %d", len(f), n+11*(len(seed)-2))
	}
	if f[0] != seed[0] || f[len(f)-1] != seed[len(seed)-1] {
		t.Error("anchors moved")
	}
}

func TestGrow(t *testing.T) {
	// squared lengths 16, 9, 16: only the outer segments are selected
	f := Polyline{pt(0, 0), pt(4, 0), pt(7, 0), pt(11, 0)}
	Grow(&f, seed, DefaultGrowOptions())
	want := Polyline{
		pt(0, 0), pt(1, 0), pt(2, 1), pt(3, 0), pt(4, 0),
		pt(7, 0), pt(8, 0), pt(9, 1), pt(10, 0), pt(11, 0),
	}
	diff(t, want, f)
}

func TestGrowCap(t *testing.T) {
	orig := Polyline{pt(0, 0), pt(4, 0), pt(7, 0), pt(11, 0)}

	f := orig.Clone()
	Grow(&f, seed, GrowOptions{Shrink: 0.9, MaxPoints: 9})
	diff(t, orig, f)

	f = orig.Clone()
	Grow(&f, seed, GrowOptions{Shrink: 0.9, MaxPoints: 10})
	if len(f) != 10 {
		t.Errorf("got %d points, want 10", len(f))
	}
}

func TestGrowNeverExceedsCap(t *testing.T) {
	opt := GrowOptions{Shrink: 0.95, MaxPoints: 6000}
	f := Build(seed)
	for i := range 200 {
		before := f.Clone()
		Grow(&f, seed, opt)
		if len(f) > opt.MaxPoints {
			t.Fatalf("step %d: %d points exceed the cap", i, len(f))
		}
		if len(f) == len(before) {
			diff(t, before, f)
		}
		if f[0] != seed[0] || f[len(f)-1] != seed[len(seed)-1] {
			t.Fatalf("step %d: anchors moved", i)
		}
	}
}

func TestGrowDegenerate(t *testing.T) {
	f := Polyline{pt(2, 2), pt(2, 2)}
	Grow(&f, seed, DefaultGrowOptions())
	diff(t, Polyline{pt(2, 2), pt(2, 2)}, f)

	f = Polyline{pt(0, 0), pt(4, 0)}
	Grow(&f, Polyline{pt(0, 0)}, DefaultGrowOptions())
	diff(t, Polyline{pt(0, 0), pt(4, 0)}, f)
}

func TestGrowUsesCurrentPattern(t *testing.T) {
	f := Polyline{pt(0, 0), pt(4, 0)}
	flat := Polyline{pt(0, 0), pt(2, 0), pt(4, 0)}
	Grow(&f, flat, DefaultGrowOptions())
	diff(t, Polyline{pt(0, 0), pt(2, 0), pt(4, 0)}, f)
}
