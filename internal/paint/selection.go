/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paint

import "strings"

// Slot names one of the two color holders.
type Slot uint8

const (
	SlotA Slot = iota
	SlotB
)

func (k Slot) String() string {
	if k == SlotB {
		return "b"
	}
	return "a"
}

// Other returns the opposite slot.
func (k Slot) Other() Slot {
	if k == SlotB {
		return SlotA
	}
	return SlotB
}

// ParseSlot maps "a"/"b" (any case, optional "slot" prefix) to a Slot.
// Unknown names yield SlotA and false.
func ParseSlot(s string) (Slot, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(strings.TrimPrefix(v, "slot"), "_")
	switch strings.TrimSpace(v) {
	case "a":
		return SlotA, true
	case "b":
		return SlotB, true
	}
	return SlotA, false
}

// Stroke width bounds.
const (
	MinStrokeWidth     = 1
	MaxStrokeWidth     = 100
	DefaultStrokeWidth = 4
)

// ClampWidth limits v to [MinStrokeWidth, MaxStrokeWidth].
func ClampWidth(v int) int {
	return max(MinStrokeWidth, min(MaxStrokeWidth, v))
}

// DrawingConfig is what a drawing surface needs to render the next stroke.
type DrawingConfig struct {
	Mode  Mode
	Color Color
	Width int
}

// State is a printable copy of a Selection.
type State struct {
	Tool       string `yaml:"tool" json:"tool"`
	Shape      string `yaml:"shape" json:"shape"`
	ActiveSlot string `yaml:"active_slot" json:"active_slot"`
	SlotA      Color  `yaml:"slot_a" json:"slot_a"`
	SlotB      Color  `yaml:"slot_b" json:"slot_b"`
	Width      int    `yaml:"width" json:"width"`
}

// Selection tracks the active mode, color slots and stroke width.
// It is not safe for concurrent use; drive it from a single event loop.
type Selection struct {
	mode     Mode
	slots    [2]Color
	active   Slot
	width    int
	onChange func(DrawingConfig)
}

// Option customizes a new Selection.
type Option func(*Selection)

// WithSlotColors overrides the initial slot colors.
func WithSlotColors(a, b Color) Option {
	return func(s *Selection) { s.slots = [2]Color{a, b} }
}

// WithStrokeWidth overrides the initial width; it is clamped.
func WithStrokeWidth(w int) Option {
	return func(s *Selection) { s.width = ClampWidth(w) }
}

// NewSelection returns the start-up state: brush, slot A black and active,
// slot B white, width 4.
func NewSelection(opts ...Option) *Selection {
	s := &Selection{
		mode:  ToolMode(ToolBrush),
		slots: [2]Color{Black, White},
		width: DefaultStrokeWidth,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OnChange registers fn to receive the drawing config after every mutation.
func (s *Selection) OnChange(fn func(DrawingConfig)) { s.onChange = fn }

func (s *Selection) changed() {
	if s.onChange != nil {
		s.onChange(s.ActiveDrawingConfig())
	}
}

// SelectTool activates t and discards any shape selection.
func (s *Selection) SelectTool(t Tool) {
	s.mode = ToolMode(t)
	s.changed()
}

// SelectShape activates sh and discards any tool selection.
func (s *Selection) SelectShape(sh Shape) {
	s.mode = ShapeMode(sh)
	s.changed()
}

// SelectColorSlot makes k the active slot. Slot colors are untouched.
func (s *Selection) SelectColorSlot(k Slot) {
	s.active = k & 1
	s.changed()
}

// SetSlotColor stores c in slot k whether or not k is active.
func (s *Selection) SetSlotColor(k Slot, c Color) {
	s.slots[k&1] = c
	s.changed()
}

// SetStrokeWidth stores v clamped to [1,100].
func (s *Selection) SetStrokeWidth(v int) {
	s.width = ClampWidth(v)
	s.changed()
}

// Mode returns the active mode.
func (s *Selection) Mode() Mode { return s.mode }

// ActiveSlot returns the slot whose color is used for drawing.
func (s *Selection) ActiveSlot() Slot { return s.active }

// SlotColor returns the color stored in k.
func (s *Selection) SlotColor(k Slot) Color { return s.slots[k&1] }

// StrokeWidth returns the current width.
func (s *Selection) StrokeWidth() int { return s.width }

// ActiveDrawingConfig returns the mode, the active slot's color and the width.
func (s *Selection) ActiveDrawingConfig() DrawingConfig {
	return DrawingConfig{Mode: s.mode, Color: s.slots[s.active], Width: s.width}
}

// Snapshot returns a printable copy of the state.
func (s *Selection) Snapshot() State {
	return State{
		Tool:       s.mode.Tool().String(),
		Shape:      s.mode.Shape().String(),
		ActiveSlot: s.active.String(),
		SlotA:      s.slots[SlotA],
		SlotB:      s.slots[SlotB],
		Width:      s.width,
	}
}
