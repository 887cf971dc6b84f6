// Package fractal builds self-similar polylines.
//
// A pattern is a short open polyline.  Its first and last points, the
// anchor endpoints, define a reference segment.  The fractal of a pattern
// is obtained by replacing each segment of the pattern by a copy of the
// whole pattern, scaled, rotated and translated so that the anchor
// endpoints land on the segment's endpoints, and by repeating this for
// the pieces.  Build computes the fractal to a fixed depth; Grow and
// GrowLongest refine an existing fractal by one more level on its longest
// segments, so that the curve can be densified in small steps.
//
// All functions operate on explicit Polyline values and keep no state
// between calls.  A fractal must be rebuilt whenever its pattern changes.
package fractal
