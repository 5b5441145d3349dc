/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package surface keeps the ordered sequence of committed strokes for a
// canvas. It records what the user drew in which mode, color and width; turning
// that into pixels is left to the UI toolkit.
package surface

import (
	"log/slog"

	"github.com/google/uuid"

	applog "paintpad/internal/log"
	"paintpad/internal/paint"
)

// Point is a position in canvas coordinates.
type Point struct{ X, Y float32 }

// Stroke is one committed drawing operation.
// For shapes Points holds exactly the anchor and the end point.
type Stroke struct {
	ID     string      `json:"id" yaml:"id"`
	Mode   paint.Mode  `json:"-" yaml:"-"`
	Color  paint.Color `json:"color" yaml:"color"`
	Width  int         `json:"width" yaml:"width"`
	Points []Point     `json:"points" yaml:"points,flow"`
}

// Kind names the stroke's mode for printing.
func (s Stroke) Kind() string { return s.Mode.String() }

// Canvas captures strokes using the most recently configured drawing config.
// It is not safe for concurrent use.
type Canvas struct {
	cfg     paint.DrawingConfig
	enabled bool
	strokes []Stroke
	current *Stroke
	log     *slog.Logger

	// OnChange, if set, is called whenever the visible content changes.
	OnChange func()
}

// NewCanvas returns an empty, enabled canvas configured with cfg.
func NewCanvas(cfg paint.DrawingConfig) *Canvas {
	return &Canvas{cfg: cfg, enabled: true, log: applog.WithComponent("surface")}
}

// Configure sets the config used for the next stroke. A stroke in progress keeps its own.
func (c *Canvas) Configure(cfg paint.DrawingConfig) { c.cfg = cfg }

// Config returns the config the next stroke will use.
func (c *Canvas) Config() paint.DrawingConfig { return c.cfg }

// SetEnabled turns stroke capture on or off. Disabling drops a stroke in progress.
func (c *Canvas) SetEnabled(v bool) {
	c.enabled = v
	if !v && c.current != nil {
		c.current = nil
		c.notify()
	}
}

// Enabled reports whether Begin starts strokes.
func (c *Canvas) Enabled() bool { return c.enabled }

// Begin starts a stroke at p. It is a no-op when disabled or when the mode draws nothing.
func (c *Canvas) Begin(p Point) {
	if !c.enabled || !c.cfg.Mode.Drawing() {
		return
	}
	c.current = &Stroke{
		ID:     uuid.NewString(),
		Mode:   c.cfg.Mode,
		Color:  c.cfg.Color,
		Width:  c.cfg.Width,
		Points: []Point{p},
	}
	c.notify()
}

// Extend adds p to the stroke in progress.
func (c *Canvas) Extend(p Point) {
	if c.current == nil {
		return
	}
	if c.current.Mode.IsShape() {
		c.current.Points = append(c.current.Points[:1], p)
	} else {
		c.current.Points = append(c.current.Points, p)
	}
	c.notify()
}

// End commits the stroke in progress. Strokes with fewer than two points are discarded.
func (c *Canvas) End() (Stroke, bool) {
	s := c.current
	c.current = nil
	if s == nil {
		return Stroke{}, false
	}
	if len(s.Points) < 2 {
		c.notify()
		return Stroke{}, false
	}
	c.strokes = append(c.strokes, *s)
	c.log.Debug("stroke committed", slog.String("id", s.ID), slog.String("mode", s.Kind()), slog.Int("points", len(s.Points)))
	c.notify()
	return *s, true
}

// Current returns the stroke in progress, if any.
func (c *Canvas) Current() (Stroke, bool) {
	if c.current == nil {
		return Stroke{}, false
	}
	return *c.current, true
}

// Strokes returns the committed strokes in commit order.
func (c *Canvas) Strokes() []Stroke { return append([]Stroke(nil), c.strokes...) }

// Len returns the number of committed strokes.
func (c *Canvas) Len() int { return len(c.strokes) }

// Clear deletes every stroke.
func (c *Canvas) Clear() {
	n := len(c.strokes)
	c.strokes = nil
	c.current = nil
	c.log.Debug("canvas cleared", slog.Int("removed", n))
	c.notify()
}

// UndoLast removes the most recently committed stroke.
func (c *Canvas) UndoLast() bool {
	if len(c.strokes) == 0 {
		return false
	}
	last := c.strokes[len(c.strokes)-1]
	c.strokes = c.strokes[:len(c.strokes)-1]
	c.log.Debug("stroke rewound", slog.String("id", last.ID))
	c.notify()
	return true
}

func (c *Canvas) notify() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
