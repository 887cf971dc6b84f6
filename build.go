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

import "math"

// Build constructs the fractal for the given pattern, using the depth
// returned by DefaultDepth.
func Build(pattern Polyline) Polyline {
	return BuildDepth(pattern, DefaultDepth(pattern.Segments()))
}

// BuildDepth constructs the fractal for pattern by substituting the
// pattern into each of its own segments, recursively, to the given depth.
// Depth 1 returns the pattern itself.
//
// Pattern segments whose squared length is at least 0.9 times the squared
// distance between the first and last pattern point are never
// substituted.  This keeps the recursion from blowing up for edges which
// are as long as the pattern itself.
//
// The result starts with the first and ends with the last point of the
// pattern.  Patterns with fewer than two points give an empty result.
func BuildDepth(pattern Polyline, depth int) Polyline {
	if len(pattern) < 2 {
		return nil
	}

	gate := lengthGateFactor * DistSq(pattern[0], pattern[len(pattern)-1])
	s, ok := newSimilarity(pattern, gate)

	res := make(Polyline, 0, capacityHint(pattern.Segments(), depth))
	for i, q := range pattern {
		if i > 0 && ok && s.active[i] {
			res = s.appendSegment(res, pattern[i-1], q, depth-1)
		}
		res = append(res, q)
	}
	return res
}

// DefaultDepth returns the smallest depth d ≥ 1 for which segments^d
// reaches the target size of a freshly built fractal.
//
// For patterns with at most one segment no depth reaches the target,
// but the fractal then equals the pattern for every depth, and 1 is
// returned.
func DefaultDepth(segments int) int {
	if segments <= 1 {
		return 1
	}
	depth, n := 1, segments
	for n < defaultTargetSegments {
		n *= segments
		depth++
	}
	return depth
}

// capacityHint estimates the number of points in a fractal with the
// given pattern size and depth, clamped to maxCapacityHint.
func capacityHint(segments, depth int) int {
	n := math.Pow(float64(segments), float64(depth)) + 1
	if n > maxCapacityHint {
		return maxCapacityHint
	}
	return int(n)
}

const (
	// defaultTargetSegments is the segment count which DefaultDepth
	// aims for.
	defaultTargetSegments = 2000

	// lengthGateFactor relates the length gate to the squared distance
	// between the anchor endpoints of a pattern.
	lengthGateFactor = 0.9

	// maxCapacityHint bounds the memory allocated up front by BuildDepth.
	maxCapacityHint = 1 << 20
)
