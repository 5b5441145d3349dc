/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package studio

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintpad/internal/overlay"
	"paintpad/internal/paint"
	"paintpad/internal/surface"
)

type fakeSurface struct {
	configs []paint.DrawingConfig
	enabled bool
	clears  int
	undos   int
}

func (f *fakeSurface) Configure(cfg paint.DrawingConfig) { f.configs = append(f.configs, cfg) }
func (f *fakeSurface) SetEnabled(v bool)                 { f.enabled = v }
func (f *fakeSurface) Clear()                            { f.clears++ }

func (f *fakeSurface) UndoLast() bool {
	f.undos++
	return false
}

func (f *fakeSurface) last() paint.DrawingConfig { return f.configs[len(f.configs)-1] }

type recorder struct{ names []string }

func (r *recorder) Event(name string, _ map[string]any) { r.names = append(r.names, name) }

var red = paint.Color{R: 0xff, A: 0xff}

func newTest(p overlay.Policy) (*Controller, *fakeSurface, *recorder) {
	s := &fakeSurface{}
	r := &recorder{}
	c := New(paint.NewSelection(), s, Options{Policy: p, Telemetry: r})
	return c, s, r
}

func TestNewPushesInitialConfig(t *testing.T) {
	_, s, _ := newTest(overlay.PolicyExclusive)
	if len(s.configs) != 1 {
		t.Fatalf("expected one initial configure, got %d", len(s.configs))
	}
	want := paint.DrawingConfig{Mode: paint.ToolMode(paint.ToolBrush), Color: paint.Black, Width: paint.DefaultStrokeWidth}
	if got := s.last(); got != want {
		t.Fatalf("initial config = %+v, want %+v", got, want)
	}
}

func TestSurfaceFollowsSelection(t *testing.T) {
	c, s, r := newTest(overlay.PolicyExclusive)
	c.Dispatch(ShapePicked{Shape: paint.ShapeCircle})
	if got := s.last().Mode; got != paint.ShapeMode(paint.ShapeCircle) {
		t.Fatalf("mode = %v", got)
	}
	c.Dispatch(ToolPressed{Tool: paint.ToolEraser})
	m := s.last().Mode
	if m.Shape() != paint.ShapeNone || m.Tool() != paint.ToolEraser {
		t.Fatalf("expected eraser only, got %v", m)
	}
	c.Dispatch(WidthChanged{Value: 250})
	if s.last().Width != 100 {
		t.Fatalf("width not clamped: %d", s.last().Width)
	}
	c.Dispatch(SlotPressed{Slot: paint.SlotB})
	c.Dispatch(SlotColorSet{Slot: paint.SlotA, Color: red})
	if s.last().Color != paint.White {
		t.Fatalf("active color should stay slot B's, got %v", s.last().Color)
	}
	if len(r.names) != 2 || r.names[0] != "shape_selected" || r.names[1] != "tool_selected" {
		t.Fatalf("telemetry = %v", r.names)
	}
}

func TestShapePickedClosesShapePickerOnlyWhenExclusive(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(OverlayOpened{Overlay: overlay.ShapePicker})
	c.Dispatch(ShapePicked{Shape: paint.ShapeLine})
	if c.Overlays().IsOpen(overlay.ShapePicker) {
		t.Fatalf("exclusive: shape picker should close after a pick")
	}

	c, _, _ = newTest(overlay.PolicyLayered)
	c.Dispatch(OverlayOpened{Overlay: overlay.ShapePicker})
	c.Dispatch(ShapePicked{Shape: paint.ShapeLine})
	if !c.Overlays().IsOpen(overlay.ShapePicker) {
		t.Fatalf("layered: shape picker should stay open until the backdrop is tapped")
	}
	c.Dispatch(BackdropTapped{Overlay: overlay.ShapePicker})
	if c.Overlays().IsOpen(overlay.ShapePicker) {
		t.Fatalf("backdrop tap should close the shape picker")
	}
}

func TestSurfaceDisabledWhileOverlayOpen(t *testing.T) {
	for _, p := range []overlay.Policy{overlay.PolicyExclusive, overlay.PolicyLayered} {
		c, s, _ := newTest(p)
		if !s.enabled {
			t.Fatalf("%v: surface should start enabled", p)
		}
		c.Dispatch(OverlayOpened{Overlay: overlay.WidthSlider})
		if s.enabled {
			t.Fatalf("%v: surface should be disabled under an open overlay", p)
		}
		c.Dispatch(OverlayToggled{Overlay: overlay.ColorPicker})
		c.Dispatch(OverlayClosed{Overlay: overlay.WidthSlider})
		if s.enabled {
			t.Fatalf("%v: surface should stay disabled while the picker is open", p)
		}
		c.Dispatch(BackdropTapped{Overlay: overlay.ColorPicker})
		if !s.enabled {
			t.Fatalf("%v: surface should be enabled once every overlay is closed", p)
		}
	}
}

func TestCanvasIgnoresStrokesUnderOverlay(t *testing.T) {
	sel := paint.NewSelection()
	cv := surface.NewCanvas(sel.ActiveDrawingConfig())
	c := New(sel, cv, Options{})
	c.Dispatch(OverlayOpened{Overlay: overlay.WidthSlider})
	cv.Begin(surface.Point{X: 1, Y: 1})
	cv.Extend(surface.Point{X: 9, Y: 9})
	if _, ok := cv.End(); ok || cv.Len() != 0 {
		t.Fatalf("no stroke should be committed while an overlay is open")
	}
	c.Dispatch(BackdropTapped{Overlay: overlay.WidthSlider})
	cv.Begin(surface.Point{X: 1, Y: 1})
	cv.Extend(surface.Point{X: 9, Y: 9})
	if _, ok := cv.End(); !ok {
		t.Fatalf("stroke should be committed after the overlay closed")
	}
}

func TestOverlaysDismissedClosesAll(t *testing.T) {
	c, s, _ := newTest(overlay.PolicyLayered)
	c.Dispatch(OverlayOpened{Overlay: overlay.ShapePicker})
	c.Dispatch(PickerOpened{})
	sess, _ := c.Session()
	c.Dispatch(OverlaysDismissed{})
	if v := c.Overlays().Visible(); len(v) != 0 {
		t.Fatalf("expected no open overlays, got %v", v)
	}
	if !sess.Done() || !s.enabled {
		t.Fatalf("dismiss should end the picker session and enable the surface")
	}
}

func TestSlotColorSetSurvivesPickerCancel(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerOpened{})
	c.Dispatch(PickerColor{Color: paint.Color{G: 0x80, A: 0xff}})
	c.Dispatch(SlotColorSet{Slot: paint.SlotA, Color: red})
	c.Dispatch(PickerColor{Color: paint.White})
	c.Dispatch(PickerCancelled{})
	if got := c.Selection().SlotColor(paint.SlotA); got != red {
		t.Fatalf("slot A = %v, want the directly set red", got)
	}
}

func TestSlotColorSetOtherSlotKeepsSession(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerOpened{})
	first, _ := c.Session()
	c.Dispatch(SlotColorSet{Slot: paint.SlotB, Color: red})
	if cur, ok := c.Session(); !ok || cur != first {
		t.Fatalf("setting another slot should not restart the session")
	}
}

func TestToolPressedClosesShapePickerOnlyWhenExclusive(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(OverlayOpened{Overlay: overlay.ShapePicker})
	c.Dispatch(ToolPressed{Tool: paint.ToolBrush})
	if c.Overlays().IsOpen(overlay.ShapePicker) {
		t.Fatalf("exclusive: shape picker should close")
	}

	c, _, _ = newTest(overlay.PolicyLayered)
	c.Dispatch(OverlayOpened{Overlay: overlay.ShapePicker})
	c.Dispatch(ToolPressed{Tool: paint.ToolBrush})
	if !c.Overlays().IsOpen(overlay.ShapePicker) {
		t.Fatalf("layered: shape picker should stay open")
	}
}

func TestBackdropCommitsPickerSession(t *testing.T) {
	c, s, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerOpened{})
	sess, ok := c.Session()
	if !ok {
		t.Fatalf("expected a running session")
	}
	c.Dispatch(PickerColor{Color: paint.Color{G: 0x80, A: 0xff}})
	c.Dispatch(PickerColor{Color: red})
	if s.last().Color != red {
		t.Fatalf("colors should apply live, got %v", s.last().Color)
	}
	c.Dispatch(BackdropTapped{Overlay: overlay.ColorPicker})
	if !sess.Done() {
		t.Fatalf("backdrop tap should end the session")
	}
	if _, ok := c.Session(); ok {
		t.Fatalf("no session expected after close")
	}
	if got := c.Selection().SlotColor(paint.SlotA); got != red {
		t.Fatalf("slot A = %v, want committed red", got)
	}
}

func TestPickerCancelRestores(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerOpened{})
	c.Dispatch(PickerColor{Color: red})
	c.Dispatch(PickerCancelled{})
	if c.Overlays().IsOpen(overlay.ColorPicker) {
		t.Fatalf("cancel should close the picker")
	}
	if got := c.Selection().SlotColor(paint.SlotA); got != paint.Black {
		t.Fatalf("slot A = %v, want restored black", got)
	}
}

func TestPickerCommitKeepsColor(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyLayered)
	c.Dispatch(SlotPressed{Slot: paint.SlotB})
	c.Dispatch(OverlayToggled{Overlay: overlay.ColorPicker})
	c.Dispatch(PickerColor{Color: red})
	c.Dispatch(PickerCommitted{})
	if got := c.Selection().SlotColor(paint.SlotB); got != red {
		t.Fatalf("slot B = %v", got)
	}
	if got := c.Selection().SlotColor(paint.SlotA); got != paint.Black {
		t.Fatalf("slot A touched: %v", got)
	}
}

func TestExclusiveOpenCommitsPicker(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerOpened{})
	sess, _ := c.Session()
	c.Dispatch(PickerColor{Color: red})
	c.Dispatch(OverlayOpened{Overlay: overlay.WidthSlider})
	if !sess.Done() || c.Overlays().IsOpen(overlay.ColorPicker) {
		t.Fatalf("opening another overlay should close the picker")
	}
	if got := c.Selection().SlotColor(paint.SlotA); got != red {
		t.Fatalf("slot A = %v", got)
	}
}

func TestSlotSwitchRestartsSession(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerOpened{})
	first, _ := c.Session()
	c.Dispatch(SlotPressed{Slot: paint.SlotB})
	second, ok := c.Session()
	if !ok || second == first || second.Slot() != paint.SlotB {
		t.Fatalf("expected a new session on slot B")
	}
	if !first.Done() {
		t.Fatalf("first session should be committed")
	}
}

func TestPickerColorWithoutSession(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	c.Dispatch(PickerColor{Color: red})
	if got := c.Selection().ActiveDrawingConfig().Color; got != red {
		t.Fatalf("color = %v", got)
	}
}

func TestClearAndRewind(t *testing.T) {
	c, s, r := newTest(overlay.PolicyExclusive)
	c.Dispatch(RewindPressed{})
	c.Dispatch(ClearPressed{})
	if s.undos != 1 || s.clears != 1 {
		t.Fatalf("undos=%d clears=%d", s.undos, s.clears)
	}
	if len(r.names) != 1 || r.names[0] != "canvas_cleared" {
		t.Fatalf("telemetry = %v", r.names)
	}
}

func TestWithCanvasSurface(t *testing.T) {
	sel := paint.NewSelection()
	cv := surface.NewCanvas(paint.DrawingConfig{})
	c := New(sel, cv, Options{})
	c.Dispatch(ShapePicked{Shape: paint.ShapeRectangle})
	c.Dispatch(WidthChanged{Value: 0})
	if got := cv.Config(); got.Mode != paint.ShapeMode(paint.ShapeRectangle) || got.Width != 1 {
		t.Fatalf("canvas config = %+v", got)
	}
	cv.Begin(surface.Point{X: 1, Y: 1})
	cv.Extend(surface.Point{X: 5, Y: 5})
	cv.End()
	c.Dispatch(RewindPressed{})
	if cv.Len() != 0 {
		t.Fatalf("rewind should remove the stroke")
	}
}

func TestRunStopsWhenChannelCloses(t *testing.T) {
	c, s, _ := newTest(overlay.PolicyExclusive)
	src := make(chan Event, 3)
	src <- ToolPressed{Tool: paint.ToolEraser}
	src <- WidthChanged{Value: 9}
	close(src)
	if err := c.Run(context.Background(), src); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := s.last(); got.Width != 9 || got.Mode.Tool() != paint.ToolEraser {
		t.Fatalf("config = %+v", got)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	c, _, _ := newTest(overlay.PolicyExclusive)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := c.Run(ctx, make(chan Event))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
