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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestSplitDepthZero(t *testing.T) {
	out := Polyline{pt(9, 9)}
	got := AppendSplit(out, pt(0, 0), pt(4, 0), seed, 0, math.Inf(1))
	diff(t, Polyline{pt(9, 9)}, got)
}

func TestSplitDegeneratePattern(t *testing.T) {
	loop := Polyline{pt(0, 0), pt(1, 1), pt(2, 0), pt(0, 0)}
	got := AppendSplit(nil, pt(0, 0), pt(4, 0), loop, 3, math.Inf(1))
	if len(got) != 0 {
		t.Errorf("degenerate pattern produced %d points", len(got))
	}

	got = AppendSplit(nil, pt(0, 0), pt(4, 0), Polyline{pt(1, 1)}, 3, math.Inf(1))
	if len(got) != 0 {
		t.Errorf("single point pattern produced %d points", len(got))
	}
}

func TestSplitOneLevel(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 vec.Vec2
		want   Polyline
	}{
		{
			name: "identity",
			p0:   pt(0, 0),
			p1:   pt(4, 0),
			want: Polyline{pt(1, 0), pt(2, 1), pt(3, 0)},
		},
		{
			name: "quarter_turn",
			p0:   pt(0, 0),
			p1:   pt(0, 4),
			want: Polyline{pt(0, 1), pt(-1, 2), pt(0, 3)},
		},
		{
			name: "scaled_and_shifted",
			p0:   pt(10, 10),
			p1:   pt(18, 10),
			want: Polyline{pt(12, 10), pt(14, 12), pt(16, 10)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AppendSplit(nil, tc.p0, tc.p1, seed, 1, math.Inf(1))
			diff(t, tc.want, got)
		})
	}
}

func TestSplitLengthGate(t *testing.T) {
	// squared edge lengths of seed are 1, 2, 2, 1
	got := AppendSplit(nil, pt(0, 0), pt(4, 0), seed, 1, 1.5)
	diff(t, Polyline{pt(1, 0)}, got)

	got = AppendSplit(nil, pt(0, 0), pt(4, 0), seed, 3, 0.5)
	if len(got) != 0 {
		t.Errorf("closed gate produced %d points", len(got))
	}
}

func TestSplitGateUsesPatternLengths(t *testing.T) {
	// The target segment is huge, but eligibility only depends on the
	// pattern's own edges.
	small := AppendSplit(nil, pt(0, 0), pt(4, 0), seed, 2, 1.5)
	large := AppendSplit(nil, pt(0, 0), pt(4000, 0), seed, 2, 1.5)
	if len(small) != len(large) {
		t.Errorf("point count depends on target scale: %d vs %d", len(small), len(large))
	}
}

func TestSplitCount(t *testing.T) {
	want := 3
	for depth := 1; depth <= 5; depth++ {
		got := AppendSplit(nil, pt(0, 0), pt(1, 1), seed, depth, math.Inf(1))
		if len(got) != want {
			t.Errorf("depth %d: got %d points, want %d", depth, len(got), want)
		}
		want = 4*(want+1) - 1
	}
}

func TestSplitSimilarity(t *testing.T) {
	p0, p1 := pt(-3, 2), pt(5, -1)
	full := Polyline{p0}
	full = AppendSplit(full, p0, p1, seed, 1, math.Inf(1))
	full = append(full, p1)

	// edge lengths scale uniformly with the target segment
	k := DistSq(p0, p1) / DistSq(seed[0], seed[len(seed)-1])
	var want, got []float64
	for i := 1; i < len(seed); i++ {
		want = append(want, k*DistSq(seed[i-1], seed[i]))
		got = append(got, DistSq(full[i-1], full[i]))
	}
	diff(t, want, got, cmpopts.EquateApprox(1e-12, 0))

	// the bump stays on the same side of the segment
	side := (p1.Sub(p0)).Dot(Rot90(full[2].Sub(p0)))
	if side <= 0 {
		t.Errorf("pattern was mirrored")
	}
}
