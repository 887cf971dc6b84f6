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
	"slices"
)

// GrowOptions controls the threshold batch growth performed by Grow.
type GrowOptions struct {
	// Shrink scales the longest squared segment length to obtain the
	// selection threshold.  All segments with a squared length above the
	// threshold are grown together.  Typical values are 0.9–0.95.
	Shrink float64

	// MaxPoints is the hard cap on the size of the fractal.  A growth step
	// which could exceed this size is skipped.
	MaxPoints int
}

// DefaultGrowOptions returns the options used by interactive callers.
func DefaultGrowOptions() GrowOptions {
	return GrowOptions{
		Shrink:    defaultShrink,
		MaxPoints: defaultMaxPoints,
	}
}

// GrowLongest replaces the longest segment of f by one level of the
// pattern.  If several segments share the maximal length, the first one
// is used.  Nothing happens if f or pattern has no segment of non-zero
// length.
//
// f must have been built from the current pattern.
func GrowLongest(f *Polyline, pattern Polyline) {
	var longest float64
	idx := 0
	for i := 1; i < len(*f); i++ {
		if l := DistSq((*f)[i-1], (*f)[i]); l > longest {
			longest = l
			idx = i
		}
	}
	if idx == 0 {
		return
	}

	part := AppendSplit(nil, (*f)[idx-1], (*f)[idx], pattern, 1, growthGate)
	*f = slices.Insert(*f, idx, part...)
}

// GrowLongestBurst calls GrowLongest count times.
func GrowLongestBurst(f *Polyline, pattern Polyline, count int) {
	for range count {
		GrowLongest(f, pattern)
	}
}

// Grow applies one level of the pattern to every segment of f whose
// squared length exceeds opt.Shrink times the squared length of the
// longest segment.  Growing several comparably long segments at once
// makes the curve densify evenly.
//
// If the grown fractal could have more than opt.MaxPoints points, f is
// left unchanged.  The step can simply be retried later; once the cap is
// reached this makes Grow a no-op.
//
// f must have been built from the current pattern.
func Grow(f *Polyline, pattern Polyline, opt GrowOptions) {
	fr := *f
	if len(fr) < 2 || len(pattern) < 2 {
		return
	}

	var longest float64
	for i := 1; i < len(fr); i++ {
		longest = max(longest, DistSq(fr[i-1], fr[i]))
	}
	threshold := longest * opt.Shrink

	size := len(fr)
	selected := 0
	for i := 1; i < len(fr); i++ {
		if DistSq(fr[i-1], fr[i]) > threshold {
			size += len(pattern) - 2
			selected++
		}
	}
	if selected == 0 || size > opt.MaxPoints {
		return
	}

	s, ok := newSimilarity(pattern, growthGate)
	if !ok {
		return
	}
	next := make(Polyline, 0, size)
	for i, q := range fr {
		if i > 0 && DistSq(fr[i-1], q) > threshold {
			next = s.appendSegment(next, fr[i-1], q, 1)
		}
		next = append(next, q)
	}
	*f = next
}

// growthGate admits every pattern edge to substitution.
var growthGate = math.Inf(1)

const (
	defaultShrink    = 0.9
	defaultMaxPoints = 500_000
)
