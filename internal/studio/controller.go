/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package studio wires the selection state, the overlay controller, color
// picker sessions and a drawing surface behind a single event dispatcher.
// Events are handled one at a time on the caller's goroutine.
package studio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	applog "paintpad/internal/log"
	"paintpad/internal/overlay"
	"paintpad/internal/paint"
	"paintpad/internal/picker"
)

// Surface is the drawing collaborator. *surface.Canvas implements it.
type Surface interface {
	Configure(cfg paint.DrawingConfig)
	SetEnabled(v bool)
	Clear()
	UndoLast() bool
}

// Emitter receives anonymous usage events. *telemetry.Client implements it.
type Emitter interface {
	Event(name string, props map[string]any)
}

// Options configures a Controller.
type Options struct {
	Policy    overlay.Policy
	Telemetry Emitter
}

// Controller owns the interaction state of one canvas.
type Controller struct {
	sel       *paint.Selection
	overlays  *overlay.Controller
	surface   Surface
	session   *picker.Session
	telemetry Emitter
	log       *slog.Logger

	onOverlay func(k overlay.Kind, open bool)
	onConfig  func(paint.DrawingConfig)
}

// New builds a controller around sel and surf and pushes the initial
// drawing config to the surface.
func New(sel *paint.Selection, surf Surface, opts Options) *Controller {
	c := &Controller{
		sel:       sel,
		overlays:  overlay.NewController(opts.Policy),
		surface:   surf,
		telemetry: opts.Telemetry,
		log:       applog.WithComponent("studio"),
	}
	sel.OnChange(c.configChanged)
	c.overlays.OnChange(c.overlayChanged)
	c.surface.Configure(sel.ActiveDrawingConfig())
	c.surface.SetEnabled(true)
	return c
}

// Selection exposes the selection state for rendering.
func (c *Controller) Selection() *paint.Selection { return c.sel }

// Overlays exposes overlay visibility for rendering.
func (c *Controller) Overlays() *overlay.Controller { return c.overlays }

// Session returns the running color picker session, if any.
func (c *Controller) Session() (*picker.Session, bool) {
	if c.session == nil || c.session.Done() {
		return nil, false
	}
	return c.session, true
}

// OnOverlay registers fn to observe overlay visibility changes.
func (c *Controller) OnOverlay(fn func(k overlay.Kind, open bool)) { c.onOverlay = fn }

// OnConfig registers fn to observe drawing config changes.
func (c *Controller) OnConfig(fn func(paint.DrawingConfig)) { c.onConfig = fn }

func (c *Controller) configChanged(cfg paint.DrawingConfig) {
	c.surface.Configure(cfg)
	if c.onConfig != nil {
		c.onConfig(cfg)
	}
}

func (c *Controller) overlayChanged(k overlay.Kind, open bool) {
	if k == overlay.ColorPicker {
		if open {
			c.beginSession()
		} else {
			c.endSession(false)
		}
	}
	// the board is covered while any overlay is up
	c.surface.SetEnabled(len(c.overlays.Visible()) == 0)
	if c.onOverlay != nil {
		c.onOverlay(k, open)
	}
}

func (c *Controller) beginSession() {
	c.endSession(false)
	c.session = picker.Begin(c.sel, c.sel.ActiveSlot())
}

func (c *Controller) endSession(cancel bool) {
	if c.session == nil {
		return
	}
	if cancel {
		c.session.Cancel()
	} else {
		c.session.Commit()
	}
	c.session = nil
}

// Dispatch applies one event. It never fails: out-of-range input is clamped
// and unknown events are logged and ignored.
func (c *Controller) Dispatch(ev Event) {
	c.log.Debug("dispatch", slog.String("event", eventName(ev)))
	switch e := ev.(type) {
	case ToolPressed:
		c.sel.SelectTool(e.Tool)
		if c.overlays.Policy() == overlay.PolicyExclusive {
			c.overlays.Close(overlay.ShapePicker)
		}
		c.emit("tool_selected", map[string]any{"tool": e.Tool.String()})
	case ShapePicked:
		c.sel.SelectShape(e.Shape)
		if c.overlays.Policy() == overlay.PolicyExclusive {
			c.overlays.Close(overlay.ShapePicker)
		}
		c.emit("shape_selected", map[string]any{"shape": e.Shape.String()})
	case SlotPressed:
		c.sel.SelectColorSlot(e.Slot)
		if c.session != nil && c.session.Slot() != e.Slot {
			c.beginSession()
		}
	case SlotColorSet:
		c.sel.SetSlotColor(e.Slot, e.Color)
		if s, ok := c.Session(); ok && s.Slot() == e.Slot {
			// a later cancel restores the directly set color
			c.beginSession()
		}
	case PickerOpened:
		c.overlays.Open(overlay.ColorPicker)
	case PickerColor:
		if s, ok := c.Session(); ok {
			s.Push(e.Color)
		} else {
			c.sel.SetSlotColor(c.sel.ActiveSlot(), e.Color)
		}
	case PickerCommitted:
		c.endSession(false)
		c.overlays.Close(overlay.ColorPicker)
	case PickerCancelled:
		c.endSession(true)
		c.overlays.Close(overlay.ColorPicker)
	case WidthChanged:
		c.sel.SetStrokeWidth(e.Value)
	case OverlayOpened:
		c.overlays.Open(e.Overlay)
	case OverlayClosed:
		c.overlays.Close(e.Overlay)
	case OverlayToggled:
		c.overlays.Toggle(e.Overlay)
	case OverlaysDismissed:
		c.overlays.CloseAll()
	case BackdropTapped:
		c.overlays.Handle(overlay.BackdropTap{Overlay: e.Overlay})
	case ClearPressed:
		c.surface.Clear()
		c.emit("canvas_cleared", nil)
	case RewindPressed:
		if !c.surface.UndoLast() {
			c.log.Debug("nothing to rewind")
		}
	default:
		c.log.Warn("unhandled event", slog.String("event", eventName(ev)))
	}
}

// Run dispatches events from src until it closes or ctx is done.
func (c *Controller) Run(ctx context.Context, src <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-src:
			if !ok {
				return nil
			}
			c.Dispatch(ev)
		}
	}
}

func (c *Controller) emit(name string, props map[string]any) {
	if c.telemetry != nil {
		c.telemetry.Event(name, props)
	}
}

func eventName(ev Event) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", ev), "studio.")
}
