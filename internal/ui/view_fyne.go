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
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"paintpad/internal/overlay"
	"paintpad/internal/paint"
	"paintpad/internal/studio"
	"paintpad/internal/surface"
)

var palette = []string{"black", "white", "red", "orange", "yellow", "green", "teal", "blue", "purple", "gray"}

// swatch is a tappable color square with an optional highlight border.
type swatch struct {
	widget.BaseWidget
	fill   *canvas.Rectangle
	border *canvas.Rectangle
	onTap  func()
}

func newSwatch(c color.Color, size float32, tapped func()) *swatch {
	s := &swatch{fill: canvas.NewRectangle(c), border: canvas.NewRectangle(color.Transparent), onTap: tapped}
	s.fill.SetMinSize(fyne.NewSize(size, size))
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.fill, s.border))
}

func (s *swatch) Tapped(_ *fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap()
	}
}

func (s *swatch) setColor(c color.Color) {
	s.fill.FillColor = c
	s.fill.Refresh()
}

func (s *swatch) setActive(v bool) {
	if v {
		s.border.StrokeColor, s.border.StrokeWidth = theme.Color(theme.ColorNamePrimary), 3
	} else {
		s.border.StrokeColor, s.border.StrokeWidth = color.Gray{Y: 150}, 1
	}
	s.border.Refresh()
}

// backdrop dims the board under an overlay and reports taps.
type backdrop struct {
	widget.BaseWidget
	onTap func()
}

func newBackdrop(tapped func()) *backdrop {
	b := &backdrop{onTap: tapped}
	b.ExtendBaseWidget(b)
	return b
}

func (b *backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.NRGBA{A: 90}))
}

func (b *backdrop) Tapped(_ *fyne.PointEvent) { b.onTap() }

// view holds the widgets of the main window.
type view struct {
	ctl   *studio.Controller
	board *Board

	brushBtn, eraserBtn *widget.Button
	shapesBtn, colorBtn *widget.Button
	widthBtn            *widget.Button
	clearBtn, rewindBtn *widget.Button
	slotA, slotB        *swatch
	status              *widget.Label

	shapeBtns map[paint.Shape]*widget.Button
	layers    map[overlay.Kind]*fyne.Container
	backdrops map[overlay.Kind]*backdrop

	red, green, blue   *widget.Slider
	preview            *canvas.Rectangle
	pickOK, pickCancel *widget.Button
	widthSlider        *widget.Slider
	widthLabel         *widget.Label

	syncing bool
	content fyne.CanvasObject
}

func newView(ctl *studio.Controller, cv *surface.Canvas, bg paint.Color) *view {
	v := &view{
		ctl:       ctl,
		board:     NewBoard(cv, bg),
		status:    widget.NewLabel(""),
		shapeBtns: map[paint.Shape]*widget.Button{},
		layers:    map[overlay.Kind]*fyne.Container{},
		backdrops: map[overlay.Kind]*backdrop{},
	}
	send := ctl.Dispatch

	v.brushBtn = widget.NewButtonWithIcon("Brush", theme.DocumentCreateIcon(), func() { send(studio.ToolPressed{Tool: paint.ToolBrush}) })
	v.eraserBtn = widget.NewButtonWithIcon("Eraser", theme.ContentRemoveIcon(), func() { send(studio.ToolPressed{Tool: paint.ToolEraser}) })
	v.shapesBtn = widget.NewButtonWithIcon("Shapes", theme.GridIcon(), func() { send(studio.OverlayToggled{Overlay: overlay.ShapePicker}) })
	v.colorBtn = widget.NewButtonWithIcon("Color", theme.ColorPaletteIcon(), func() { send(studio.OverlayToggled{Overlay: overlay.ColorPicker}) })
	v.widthBtn = widget.NewButtonWithIcon("Width", theme.MoreHorizontalIcon(), func() { send(studio.OverlayToggled{Overlay: overlay.WidthSlider}) })
	v.clearBtn = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() { send(studio.ClearPressed{}) })
	v.rewindBtn = widget.NewButtonWithIcon("Rewind", theme.ContentUndoIcon(), func() { send(studio.RewindPressed{}) })

	sel := ctl.Selection()
	v.slotA = newSwatch(sel.SlotColor(paint.SlotA), 28, func() { send(studio.SlotPressed{Slot: paint.SlotA}) })
	v.slotB = newSwatch(sel.SlotColor(paint.SlotB), 28, func() { send(studio.SlotPressed{Slot: paint.SlotB}) })

	toolbar := container.NewHBox(
		v.brushBtn, v.eraserBtn, v.shapesBtn,
		widget.NewSeparator(),
		v.slotA, v.slotB, v.colorBtn,
		widget.NewSeparator(),
		v.widthBtn,
		layout.NewSpacer(),
		v.rewindBtn, v.clearBtn,
	)

	panels := map[overlay.Kind]fyne.CanvasObject{
		overlay.ShapePicker: v.shapePanel(),
		overlay.ColorPicker: v.colorPanel(),
		overlay.WidthSlider: v.widthPanel(),
	}
	stack := []fyne.CanvasObject{v.board}
	for _, k := range overlay.Kinds() {
		v.backdrops[k] = newBackdrop(func() { send(studio.BackdropTapped{Overlay: k}) })
		card := widget.NewCard(title(k), "", panels[k])
		layer := container.NewStack(v.backdrops[k], container.NewCenter(card))
		layer.Hide()
		v.layers[k] = layer
		stack = append(stack, layer)
	}

	ctl.OnConfig(func(paint.DrawingConfig) { v.syncSelection() })
	ctl.OnOverlay(v.overlayChanged)
	v.syncSelection()

	v.content = container.NewBorder(toolbar, v.status, nil, nil, container.NewStack(stack...))
	return v
}

func title(k overlay.Kind) string {
	switch k {
	case overlay.ShapePicker:
		return "Shape"
	case overlay.ColorPicker:
		return "Color"
	default:
		return "Stroke width"
	}
}

func (v *view) shapePanel() fyne.CanvasObject {
	box := container.NewGridWithColumns(len(paint.Shapes()))
	for _, sh := range paint.Shapes() {
		b := widget.NewButton(sh.String(), func() { v.ctl.Dispatch(studio.ShapePicked{Shape: sh}) })
		v.shapeBtns[sh] = b
		box.Add(b)
	}
	return box
}

func (v *view) colorPanel() fyne.CanvasObject {
	swatches := container.NewGridWithColumns(5)
	for _, name := range palette {
		c := paint.MustParseColor(name)
		swatches.Add(newSwatch(c, 24, func() { v.setPickerColor(c, true) }))
	}
	channel := func() *widget.Slider {
		s := widget.NewSlider(0, 255)
		s.Step = 1
		s.OnChanged = func(float64) { v.pickerSliderChanged() }
		return s
	}
	v.red, v.green, v.blue = channel(), channel(), channel()
	v.preview = canvas.NewRectangle(color.Black)
	v.preview.SetMinSize(fyne.NewSize(48, 48))
	v.pickOK = widget.NewButton("OK", func() { v.ctl.Dispatch(studio.PickerCommitted{}) })
	v.pickCancel = widget.NewButton("Cancel", func() { v.ctl.Dispatch(studio.PickerCancelled{}) })
	sliders := container.New(layout.NewFormLayout(),
		widget.NewLabel("R"), v.red,
		widget.NewLabel("G"), v.green,
		widget.NewLabel("B"), v.blue,
	)
	return container.NewVBox(
		swatches,
		container.NewBorder(nil, nil, v.preview, nil, sliders),
		container.NewHBox(layout.NewSpacer(), v.pickCancel, v.pickOK),
	)
}

func (v *view) widthPanel() fyne.CanvasObject {
	v.widthSlider = widget.NewSlider(paint.MinStrokeWidth, paint.MaxStrokeWidth)
	v.widthSlider.Step = 1
	v.widthSlider.OnChanged = func(f float64) {
		if !v.syncing {
			v.ctl.Dispatch(studio.WidthChanged{Value: int(f)})
		}
	}
	v.widthLabel = widget.NewLabel("")
	return container.NewBorder(nil, nil, nil, v.widthLabel, container.NewGridWrap(fyne.NewSize(240, 40), v.widthSlider))
}

// pickerSliderChanged streams the slider color into the picker.
func (v *view) pickerSliderChanged() {
	if v.syncing {
		return
	}
	c := paint.Color{R: uint8(v.red.Value), G: uint8(v.green.Value), B: uint8(v.blue.Value), A: 0xff}
	v.ctl.Dispatch(studio.PickerColor{Color: c})
}

// setPickerColor moves the sliders to c; when emit is set the color is also sent.
func (v *view) setPickerColor(c paint.Color, emit bool) {
	v.syncing = true
	v.red.SetValue(float64(c.R))
	v.green.SetValue(float64(c.G))
	v.blue.SetValue(float64(c.B))
	v.syncing = false
	v.preview.FillColor = c
	v.preview.Refresh()
	if emit {
		v.ctl.Dispatch(studio.PickerColor{Color: c})
	}
}

func (v *view) overlayChanged(k overlay.Kind, open bool) {
	if open {
		switch k {
		case overlay.ColorPicker:
			sel := v.ctl.Selection()
			v.setPickerColor(sel.SlotColor(sel.ActiveSlot()), false)
		case overlay.WidthSlider:
			v.syncSelection()
		}
		v.layers[k].Show()
	} else {
		v.layers[k].Hide()
	}
}

// typedKey handles window-level keys.
func (v *view) typedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		v.ctl.Dispatch(studio.OverlaysDismissed{})
	}
}

// syncSelection mirrors the selection into toolbar and status widgets.
func (v *view) syncSelection() {
	sel := v.ctl.Selection()
	cfg := sel.ActiveDrawingConfig()
	v.slotA.setColor(sel.SlotColor(paint.SlotA))
	v.slotB.setColor(sel.SlotColor(paint.SlotB))
	v.slotA.setActive(sel.ActiveSlot() == paint.SlotA)
	v.slotB.setActive(sel.ActiveSlot() == paint.SlotB)
	importance := func(on bool) widget.Importance {
		if on {
			return widget.HighImportance
		}
		return widget.MediumImportance
	}
	v.brushBtn.Importance = importance(cfg.Mode.Tool() == paint.ToolBrush)
	v.eraserBtn.Importance = importance(cfg.Mode.Tool() == paint.ToolEraser)
	v.shapesBtn.Importance = importance(cfg.Mode.IsShape())
	v.brushBtn.Refresh()
	v.eraserBtn.Refresh()
	v.shapesBtn.Refresh()
	if v.widthSlider != nil {
		v.syncing = true
		v.widthSlider.SetValue(float64(cfg.Width))
		v.syncing = false
		v.widthLabel.SetText(fmt.Sprintf("%d px", cfg.Width))
	}
	if v.preview != nil {
		v.preview.FillColor = cfg.Color
		v.preview.Refresh()
	}
	v.status.SetText(fmt.Sprintf("%s  %s  %d px", cfg.Mode, cfg.Color.Hex(), cfg.Width))
}
