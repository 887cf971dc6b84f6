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

package patterns

// degenerateCases contains patterns at the edge of what the construction
// can handle.  None of them may cause a fault.
var degenerateCases = []Case{
	// A single segment can never be substituted: its only edge fails the
	// length gate.
	{
		Name:    "single_segment",
		Pattern: unit(50, 100, 400, 0, 0, 1, 0),
		Width:   500,
		Height:  200,
		Depth:   8,
	},

	// Coincident anchors do not define a similarity transform.
	{
		Name:    "closed_loop",
		Pattern: unit(250, 300, 100, 0, 0, 1, 1, -1, 1, 0, 0),
		Width:   500,
		Height:  400,
	},

	// The middle edge is as long as the anchor distance and is left
	// straight at every level.
	{
		Name:    "bracket",
		Pattern: unit(50, 300, 100, 0, 0, 0, 1, 4, 1, 4, 0),
		Width:   500,
		Height:  400,
		Depth:   5,
	},

	// Repeated points give zero length edges.
	{
		Name:    "repeated_point",
		Pattern: unit(50, 250, 100, 0, 0, 1, 0, 1, 0, 2, 1, 3, 0, 4, 0),
		Width:   500,
		Height:  400,
		Depth:   4,
	},
}
