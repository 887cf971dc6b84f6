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

// Package editor holds the state of an interactive pattern editing
// session.
//
// A Session owns a pattern and the fractal built from it.  Mouse events
// select a vertex or a segment of the pattern and modify it; after every
// modification the fractal is rebuilt from scratch.  Between events the
// fractal is refined by Tick and Burst.
package editor

import (
	"io"
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fractal"
)

// Button identifies a mouse button.
type Button int

// These are the mouse buttons used by the editor.
const (
	Left Button = iota
	Right
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Config holds the parameters of a Session.
type Config struct {
	// PickRadius is the distance within which the mouse selects a vertex
	// or a segment.
	PickRadius float64

	// BurstCount is the number of single-segment growth steps performed
	// by Burst.
	BurstCount int

	// Grow controls the growth step performed by Tick.
	Grow fractal.GrowOptions

	// Logger receives debug messages.  If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultConfig returns the default editor configuration: a pick radius
// of 5 pixels and bursts of 1000 steps.
func DefaultConfig() Config {
	return Config{
		PickRadius: 5,
		BurstCount: 1000,
		Grow:       fractal.DefaultGrowOptions(),
	}
}

// Session is the state of one editing session.
type Session struct {
	// Pattern is the pattern being edited.
	Pattern fractal.Polyline

	// Fractal is the curve built from Pattern, possibly grown further.
	Fractal fractal.Polyline

	// Vertex is the selected vertex, if any.
	Vertex Index

	// Segment is the selected segment, if any.  Segment i joins the
	// pattern points i-1 and i.
	Segment Index

	// Mouse is the last known mouse position.
	Mouse vec.Vec2

	cfg       Config
	log       *slog.Logger
	pressed   [2]bool
	highlight float64
}

// NewSession starts a session for a copy of pattern.
func NewSession(pattern fractal.Polyline, cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		Pattern:   pattern.Clone(),
		cfg:       cfg,
		log:       log,
		highlight: 1,
	}
	s.rebuild()
	return s
}

// MouseMove records a new mouse position.  If a button is held, the
// selected vertex or segment is edited.  Moving the mouse resets the
// highlight of the pattern.
func (s *Session) MouseMove(p vec.Vec2) {
	s.Mouse = p
	s.highlight = 1
	s.process()
}

// MouseButton records a button press or release.
func (s *Session) MouseButton(b Button, pressed bool) {
	if b != Left && b != Right {
		return
	}
	s.pressed[b] = pressed
	s.process()
}

// Pressed reports whether the button b is held down.
func (s *Session) Pressed(b Button) bool {
	if b != Left && b != Right {
		return false
	}
	return s.pressed[b]
}

// Burst grows the fractal by repeatedly substituting the pattern into the
// longest segment.
func (s *Session) Burst() {
	before := len(s.Fractal)
	fractal.GrowLongestBurst(&s.Fractal, s.Pattern, s.cfg.BurstCount)
	s.log.Debug("burst", "count", s.cfg.BurstCount, "before", before, "after", len(s.Fractal))
}

// Tick performs the per-frame work: one threshold batch growth step and
// fading of the pattern highlight.
func (s *Session) Tick() {
	fractal.Grow(&s.Fractal, s.Pattern, s.cfg.Grow)
	s.highlight *= highlightDecay
}

// Highlight returns the brightness factor of the pattern outline, in the
// range (0, 1].  It is 1 after the mouse moved and decays with every tick.
func (s *Session) Highlight() float64 {
	return s.highlight
}

// process applies pending edits, updates the selection for the current
// mouse position, and applies edits for the new selection.
func (s *Session) process() {
	s.apply()

	s.Vertex = None()
	s.Segment = None()
	r2 := s.cfg.PickRadius * s.cfg.PickRadius
	if i, ok := s.pickVertex(r2); ok {
		s.Vertex = Some(i)
	} else if i, ok := s.pickSegment(r2); ok {
		s.Segment = Some(i)
	}

	s.apply()
}

func (s *Session) pickVertex(r2 float64) (int, bool) {
	for i, p := range s.Pattern {
		if fractal.DistSq(p, s.Mouse) <= r2 {
			return i, true
		}
	}
	return 0, false
}

func (s *Session) pickSegment(r2 float64) (int, bool) {
	for i := 1; i < len(s.Pattern); i++ {
		if fractal.SegmentDistSq(s.Mouse, s.Pattern[i], s.Pattern[i-1]) <= r2 {
			return i, true
		}
	}
	return 0, false
}

// apply edits the pattern according to the buttons held and the current
// selection, and rebuilds the fractal if the pattern changed.
func (s *Session) apply() {
	changed := false
	if s.pressed[Left] {
		if i, ok := s.valid(s.Vertex); ok && s.Pattern[i] != s.Mouse {
			s.Pattern.Move(i, s.Mouse)
			changed = true
		}
		if i, ok := s.valid(s.Segment); ok {
			s.Pattern.Insert(i, s.Mouse)
			changed = true
		}
	}
	if s.pressed[Right] {
		if i, ok := s.valid(s.Vertex); ok {
			s.Pattern.Remove(i)
			changed = true
		}
	}
	if changed {
		s.rebuild()
	}
}

// valid returns the index held by x, if it refers to a point of the
// pattern.
func (s *Session) valid(x Index) (int, bool) {
	i, ok := x.Get()
	if !ok || i < 0 || i >= len(s.Pattern) {
		return 0, false
	}
	return i, true
}

func (s *Session) rebuild() {
	s.Fractal = fractal.Build(s.Pattern)
	s.log.Debug("rebuild", "pattern", len(s.Pattern), "fractal", len(s.Fractal))
}

// highlightDecay is the factor applied to the highlight on every tick.
const highlightDecay = 0.95
