/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package overlay tracks which modal panels are shown over the canvas.
package overlay

import (
	"fmt"
	"strings"
)

// Kind identifies an overlay panel.
type Kind uint8

const (
	ShapePicker Kind = iota
	ColorPicker
	WidthSlider
	numKinds
)

var kindNames = [...]string{ShapePicker: "shape_picker", ColorPicker: "color_picker", WidthSlider: "width_slider"}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("overlay(%d)", uint8(k))
}

// Kinds lists all overlays.
func Kinds() []Kind { return []Kind{ShapePicker, ColorPicker, WidthSlider} }

// ParseKind maps "shape_picker", "color-picker", "width" and similar to a Kind.
func ParseKind(s string) (Kind, bool) {
	v := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case "shapepicker", "shape", "shapes":
		return ShapePicker, true
	case "colorpicker", "color", "colour", "colourpicker":
		return ColorPicker, true
	case "widthslider", "width", "stroke":
		return WidthSlider, true
	}
	return 0, false
}

// Policy decides how overlays interact when more than one is opened.
type Policy uint8

const (
	// PolicyExclusive shows at most one overlay; opening one closes the rest.
	PolicyExclusive Policy = iota
	// PolicyLayered lets overlays stack independently.
	PolicyLayered
)

func (p Policy) String() string {
	if p == PolicyLayered {
		return "layered"
	}
	return "exclusive"
}

// ParsePolicy maps "exclusive" or "layered"; anything else is exclusive and false.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "layered":
		return PolicyLayered, true
	case "exclusive", "":
		return PolicyExclusive, true
	}
	return PolicyExclusive, false
}

// Event is delivered to a Controller by presentation code.
type Event interface{ overlayEvent() }

// BackdropTap reports a tap outside the panel of an open overlay.
type BackdropTap struct{ Overlay Kind }

func (BackdropTap) overlayEvent() {}

// Controller holds overlay visibility. All overlays start closed.
type Controller struct {
	policy   Policy
	open     [numKinds]bool
	onChange func(k Kind, open bool)
}

// NewController returns a controller using policy p.
func NewController(p Policy) *Controller { return &Controller{policy: p} }

// Policy returns the active policy.
func (c *Controller) Policy() Policy { return c.policy }

// OnChange registers fn to be called on every visibility transition.
func (c *Controller) OnChange(fn func(k Kind, open bool)) { c.onChange = fn }

func (c *Controller) set(k Kind, v bool) {
	if k >= numKinds || c.open[k] == v {
		return
	}
	c.open[k] = v
	if c.onChange != nil {
		c.onChange(k, v)
	}
}

// Open shows k. Under PolicyExclusive every other overlay is closed first.
func (c *Controller) Open(k Kind) {
	if c.policy == PolicyExclusive {
		for _, o := range Kinds() {
			if o != k {
				c.set(o, false)
			}
		}
	}
	c.set(k, true)
}

// Close hides k.
func (c *Controller) Close(k Kind) { c.set(k, false) }

// Toggle flips k.
func (c *Controller) Toggle(k Kind) {
	if c.IsOpen(k) {
		c.Close(k)
		return
	}
	c.Open(k)
}

// CloseAll hides every overlay.
func (c *Controller) CloseAll() {
	for _, k := range Kinds() {
		c.set(k, false)
	}
}

// IsOpen reports whether k is visible.
func (c *Controller) IsOpen(k Kind) bool { return k < numKinds && c.open[k] }

// Visible returns the open overlays in Kinds order.
func (c *Controller) Visible() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if c.open[k] {
			out = append(out, k)
		}
	}
	return out
}

// Handle applies an external event.
func (c *Controller) Handle(ev Event) {
	switch e := ev.(type) {
	case BackdropTap:
		c.Close(e.Overlay)
	}
}
