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

var waveCases = []Case{
	{
		Name:    "square",
		Pattern: unit(50, 250, 100, 0, 0, 1, 0, 1, 1, 2, 1, 2, -1, 3, -1, 3, 0, 4, 0),
		Width:   500,
		Height:  500,
	},
	{
		Name:    "zigzag",
		Pattern: unit(50, 250, 130, 0, 0, 1, 0.6, 2, -0.6, 3, 0),
		Width:   500,
		Height:  500,
	},
	{
		Name:    "sawtooth",
		Pattern: unit(50, 250, 100, 0, 0, 2, 0.8, 2, 0, 4, 0),
		Width:   500,
		Height:  400,
	},
}
