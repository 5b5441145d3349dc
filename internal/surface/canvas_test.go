/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"testing"

	"paintpad/internal/paint"
)

func brush() paint.DrawingConfig {
	return paint.NewSelection().ActiveDrawingConfig()
}

func draw(c *Canvas, pts ...Point) (Stroke, bool) {
	c.Begin(pts[0])
	for _, p := range pts[1:] {
		c.Extend(p)
	}
	return c.End()
}

func TestFreehandStrokeKeepsAllPoints(t *testing.T) {
	c := NewCanvas(brush())
	s, ok := draw(c, Point{0, 0}, Point{1, 1}, Point{2, 3})
	if !ok {
		t.Fatalf("stroke not committed")
	}
	if len(s.Points) != 3 || s.Width != 4 || s.Color != paint.Black || s.Kind() != "brush" {
		t.Fatalf("unexpected stroke: %+v", s)
	}
	if s.ID == "" {
		t.Fatalf("stroke id missing")
	}
}

func TestShapeStrokeKeepsAnchorAndEnd(t *testing.T) {
	sel := paint.NewSelection()
	sel.SelectShape(paint.ShapeRectangle)
	c := NewCanvas(sel.ActiveDrawingConfig())
	s, ok := draw(c, Point{0, 0}, Point{5, 5}, Point{10, 4})
	if !ok {
		t.Fatalf("shape not committed")
	}
	if len(s.Points) != 2 || s.Points[0] != (Point{0, 0}) || s.Points[1] != (Point{10, 4}) {
		t.Fatalf("unexpected shape points: %+v", s.Points)
	}
}

func TestSinglePointStrokeDiscarded(t *testing.T) {
	c := NewCanvas(brush())
	if _, ok := draw(c, Point{1, 1}); ok {
		t.Fatalf("single point stroke should be discarded")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty canvas")
	}
}

func TestConfigureAffectsNextStrokeOnly(t *testing.T) {
	sel := paint.NewSelection()
	c := NewCanvas(sel.ActiveDrawingConfig())
	c.Begin(Point{0, 0})
	sel.SetStrokeWidth(40)
	c.Configure(sel.ActiveDrawingConfig())
	c.Extend(Point{1, 1})
	first, _ := c.End()
	second, _ := draw(c, Point{0, 0}, Point{2, 2})
	if first.Width != 4 || second.Width != 40 {
		t.Fatalf("widths = %d, %d", first.Width, second.Width)
	}
}

func TestDisabledCanvasIgnoresInput(t *testing.T) {
	c := NewCanvas(brush())
	c.SetEnabled(false)
	if _, ok := draw(c, Point{0, 0}, Point{1, 1}); ok {
		t.Fatalf("disabled canvas accepted a stroke")
	}
	c.SetEnabled(true)
	c.Begin(Point{0, 0})
	c.SetEnabled(false)
	if _, ok := c.Current(); ok {
		t.Fatalf("disabling should drop stroke in progress")
	}
}

func TestNoneModeDrawsNothing(t *testing.T) {
	sel := paint.NewSelection()
	sel.SelectTool(paint.ToolNone)
	c := NewCanvas(sel.ActiveDrawingConfig())
	if _, ok := draw(c, Point{0, 0}, Point{1, 1}); ok {
		t.Fatalf("tool none should not draw")
	}
}

func TestUndoLastAndClear(t *testing.T) {
	c := NewCanvas(brush())
	changes := 0
	c.OnChange = func() { changes++ }
	a, _ := draw(c, Point{0, 0}, Point{1, 1})
	b, _ := draw(c, Point{2, 2}, Point{3, 3})
	if got := c.Strokes(); len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !c.UndoLast() {
		t.Fatalf("undo should succeed")
	}
	if got := c.Strokes(); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("undo removed the wrong stroke: %+v", got)
	}
	c.Clear()
	if c.Len() != 0 || c.UndoLast() {
		t.Fatalf("clear should leave nothing to rewind")
	}
	if changes == 0 {
		t.Fatalf("OnChange never fired")
	}
}

func TestStrokesReturnsCopy(t *testing.T) {
	c := NewCanvas(brush())
	draw(c, Point{0, 0}, Point{1, 1})
	got := c.Strokes()
	got[0].Width = 99
	if c.Strokes()[0].Width == 99 {
		t.Fatalf("Strokes leaked internal slice")
	}
}
