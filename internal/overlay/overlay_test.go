/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package overlay

import (
	"reflect"
	"testing"
)

func TestAllClosedAtStart(t *testing.T) {
	for _, p := range []Policy{PolicyExclusive, PolicyLayered} {
		c := NewController(p)
		if v := c.Visible(); len(v) != 0 {
			t.Fatalf("%v: expected no open overlays, got %v", p, v)
		}
	}
}

func TestOpenCloseToggle(t *testing.T) {
	c := NewController(PolicyLayered)
	c.Open(ColorPicker)
	if !c.IsOpen(ColorPicker) {
		t.Fatalf("color picker should be open")
	}
	c.Toggle(ColorPicker)
	if c.IsOpen(ColorPicker) {
		t.Fatalf("toggle should close")
	}
	c.Toggle(WidthSlider)
	if !c.IsOpen(WidthSlider) {
		t.Fatalf("toggle should open")
	}
	c.Close(WidthSlider)
	c.Close(WidthSlider)
	if c.IsOpen(WidthSlider) {
		t.Fatalf("close should be idempotent")
	}
}

func TestLayeredKeepsOthersOpen(t *testing.T) {
	c := NewController(PolicyLayered)
	c.Open(ShapePicker)
	c.Open(ColorPicker)
	c.Open(WidthSlider)
	if got := c.Visible(); !reflect.DeepEqual(got, Kinds()) {
		t.Fatalf("expected all open, got %v", got)
	}
}

func TestExclusiveClosesOthers(t *testing.T) {
	c := NewController(PolicyExclusive)
	var log []string
	c.OnChange(func(k Kind, open bool) {
		state := "closed"
		if open {
			state = "open"
		}
		log = append(log, k.String()+":"+state)
	})
	c.Open(ShapePicker)
	c.Open(WidthSlider)
	if got := c.Visible(); !reflect.DeepEqual(got, []Kind{WidthSlider}) {
		t.Fatalf("expected only width slider open, got %v", got)
	}
	want := []string{"shape_picker:open", "shape_picker:closed", "width_slider:open"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("transition log = %v, want %v", log, want)
	}
}

func TestBackdropTapCloses(t *testing.T) {
	c := NewController(PolicyLayered)
	c.Open(ColorPicker)
	c.Open(ShapePicker)
	c.Handle(BackdropTap{Overlay: ColorPicker})
	if c.IsOpen(ColorPicker) || !c.IsOpen(ShapePicker) {
		t.Fatalf("backdrop tap should close only its overlay: %v", c.Visible())
	}
}

func TestParseKindAndPolicy(t *testing.T) {
	cases := map[string]Kind{"shape_picker": ShapePicker, "Color-Picker": ColorPicker, "width": WidthSlider}
	for in, want := range cases {
		if got, ok := ParseKind(in); !ok || got != want {
			t.Errorf("ParseKind(%q) = %v,%v", in, got, ok)
		}
	}
	if _, ok := ParseKind("palette"); ok {
		t.Errorf("ParseKind(palette) should fail")
	}
	if p, ok := ParsePolicy("Layered"); !ok || p != PolicyLayered {
		t.Errorf("ParsePolicy(Layered) = %v,%v", p, ok)
	}
	if p, ok := ParsePolicy("stacked"); ok || p != PolicyExclusive {
		t.Errorf("ParsePolicy(stacked) = %v,%v", p, ok)
	}
}
