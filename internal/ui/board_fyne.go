//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"paintpad/internal/paint"
	"paintpad/internal/surface"
)

// Board renders a surface.Canvas and feeds drags into it as strokes.
type Board struct {
	widget.BaseWidget
	cv      *surface.Canvas
	bg      color.Color
	drawing bool
}

var _ fyne.Draggable = (*Board)(nil)

// NewBoard wraps cv. The board refreshes whenever cv changes.
func NewBoard(cv *surface.Canvas, bg paint.Color) *Board {
	b := &Board{cv: cv, bg: bg}
	cv.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

// Dragged starts a stroke at the drag origin on the first event and extends it afterwards.
func (b *Board) Dragged(e *fyne.DragEvent) {
	if !b.drawing {
		start := e.Position.Subtract(e.Dragged)
		b.cv.Begin(surface.Point{X: start.X, Y: start.Y})
		b.drawing = true
	}
	b.cv.Extend(surface.Point{X: e.Position.X, Y: e.Position.Y})
}

// DragEnd commits the stroke in progress.
func (b *Board) DragEnd() {
	b.drawing = false
	b.cv.End()
}

func (b *Board) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b, bg: canvas.NewRectangle(b.bg)}
	r.rebuild()
	return r
}

type boardRenderer struct {
	board   *Board
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Destroy()                     {}
func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardRenderer) MinSize() fyne.Size           { return r.board.MinSize() }
func (r *boardRenderer) Layout(size fyne.Size)        { r.bg.Resize(size) }

func (r *boardRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.board.Size())
	canvas.Refresh(r.board)
}

func (r *boardRenderer) rebuild() {
	objs := []fyne.CanvasObject{r.bg}
	strokes := r.board.cv.Strokes()
	if cur, ok := r.board.cv.Current(); ok {
		strokes = append(strokes, cur)
	}
	for _, s := range strokes {
		objs = append(objs, strokeObjects(s, r.board.bg)...)
	}
	r.objects = objs
}

// strokeObjects maps a stroke to Fyne primitives. Eraser strokes paint with bg.
func strokeObjects(s surface.Stroke, bg color.Color) []fyne.CanvasObject {
	if len(s.Points) < 2 {
		return nil
	}
	var col color.Color = s.Color
	w := float32(s.Width)
	a, z := pos(s.Points[0]), pos(s.Points[len(s.Points)-1])
	switch s.Mode.Shape() {
	case paint.ShapeLine:
		return []fyne.CanvasObject{line(a, z, col, w)}
	case paint.ShapeCircle:
		rad := float32(math.Hypot(float64(z.X-a.X), float64(z.Y-a.Y)))
		c := canvas.NewCircle(color.Transparent)
		c.StrokeColor, c.StrokeWidth = col, w
		c.Position1 = fyne.NewPos(a.X-rad, a.Y-rad)
		c.Position2 = fyne.NewPos(a.X+rad, a.Y+rad)
		return []fyne.CanvasObject{c}
	case paint.ShapeRectangle:
		rc := canvas.NewRectangle(color.Transparent)
		rc.StrokeColor, rc.StrokeWidth = col, w
		rc.Move(fyne.NewPos(min(a.X, z.X), min(a.Y, z.Y)))
		rc.Resize(fyne.NewSize(abs32(z.X-a.X), abs32(z.Y-a.Y)))
		return []fyne.CanvasObject{rc}
	}
	if s.Mode.Tool() == paint.ToolEraser {
		col = bg
	}
	out := make([]fyne.CanvasObject, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		out = append(out, line(pos(s.Points[i-1]), pos(s.Points[i]), col, w))
	}
	return out
}

func line(a, b fyne.Position, c color.Color, w float32) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = w
	l.Position1, l.Position2 = a, b
	return l
}

func pos(p surface.Point) fyne.Position { return fyne.NewPos(p.X, p.Y) }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
