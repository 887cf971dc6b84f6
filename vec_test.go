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

	"seehuhn.de/go/geom/vec"
)

func TestRot90(t *testing.T) {
	diff(t, pt(2, -1), Rot90(pt(1, 2)))
	diff(t, pt(0, 0), Rot90(pt(0, 0)))

	// a quarter turn is orthogonal and preserves length
	v := pt(3, -7)
	if d := v.Dot(Rot90(v)); d != 0 {
		t.Errorf("v·Rot90(v) = %g, want 0", d)
	}
	if LengthSq(Rot90(v)) != LengthSq(v) {
		t.Error("Rot90 changed the length")
	}
}

func TestDistSq(t *testing.T) {
	if d := DistSq(pt(0, 0), pt(3, 4)); d != 25 {
		t.Errorf("got %g, want 25", d)
	}
	if d := DistSq(pt(-1, -1), pt(-1, -1)); d != 0 {
		t.Errorf("got %g, want 0", d)
	}
}

func TestSegmentDistSq(t *testing.T) {
	cases := []struct {
		name    string
		p, v, w vec.Vec2
		want    float64
	}{
		{"above_middle", pt(0, 1), pt(-1, 0), pt(1, 0), 1},
		{"on_segment", pt(0.5, 0), pt(-1, 0), pt(1, 0), 0},
		{"beyond_end", pt(3, 0), pt(-1, 0), pt(1, 0), 4},
		{"before_start", pt(-1, -3), pt(0, 0), pt(0, 10), 1 + 9},
		{"degenerate", pt(3, 4), pt(0, 0), pt(0, 0), 25},
		{"diagonal", pt(0, 2), pt(0, 0), pt(2, 2), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentDistSq(tc.p, tc.v, tc.w); got != tc.want {
				t.Errorf("got %g, want %g", got, tc.want)
			}
		})
	}
}
