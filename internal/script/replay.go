/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"context"
	"log/slog"

	applog "paintpad/internal/log"
	"paintpad/internal/overlay"
	"paintpad/internal/studio"
	"paintpad/internal/surface"
)

// Event converts a step to a studio event. Stroke steps have no event form.
func (s Step) Event() (studio.Event, bool) {
	switch s.Kind {
	case StepSelectTool:
		return studio.ToolPressed{Tool: s.Tool}, true
	case StepSelectShape:
		return studio.ShapePicked{Shape: s.Shape}, true
	case StepSetWidth:
		return studio.WidthChanged{Value: s.Width}, true
	case StepSelectSlot:
		return studio.SlotPressed{Slot: s.Slot}, true
	case StepSetColor:
		return studio.SlotColorSet{Slot: s.Slot, Color: s.Color}, true
	case StepOverlay:
		switch s.Action {
		case ActionOpen:
			return studio.OverlayOpened{Overlay: s.Overlay}, true
		case ActionClose:
			return studio.OverlayClosed{Overlay: s.Overlay}, true
		default:
			return studio.OverlayToggled{Overlay: s.Overlay}, true
		}
	case StepTapBackdrop:
		return studio.BackdropTapped{Overlay: s.Overlay}, true
	case StepPicker:
		switch s.Action {
		case ActionCommit:
			return studio.PickerCommitted{}, true
		case ActionCancel:
			return studio.PickerCancelled{}, true
		default:
			return studio.PickerOpened{}, true
		}
	case StepPick:
		return studio.PickerColor{Color: s.Color}, true
	case StepRewind:
		return studio.RewindPressed{}, true
	case StepClear:
		return studio.ClearPressed{}, true
	case StepDismiss:
		return studio.OverlaysDismissed{}, true
	}
	return nil, false
}

// Events returns the studio events of the script in order, skipping strokes.
func (s Script) Events() []studio.Event {
	out := make([]studio.Event, 0, len(s.Steps))
	for _, st := range s.Steps {
		if ev, ok := st.Event(); ok {
			out = append(out, ev)
		}
	}
	return out
}

// Play runs the script against c, drawing stroke steps on cv. c must drive cv;
// strokes made while an overlay is open are dropped by the disabled canvas.
func Play(ctx context.Context, s Script, c *studio.Controller, cv *surface.Canvas) error {
	l := applog.WithOperation(applog.WithComponent("script"), "play").With(slog.String("script", s.Name))
	l.Info("replay start", slog.Int("steps", len(s.Steps)))
	for _, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ev, ok := st.Event(); ok {
			c.Dispatch(ev)
			continue
		}
		if !cv.Enabled() {
			l.Debug("stroke ignored under overlay", slog.Int("line", st.Line), slog.Any("open", overlayNames(c.Overlays().Visible())))
			continue
		}
		drawStroke(cv, st.Points)
	}
	l.Info("replay done", slog.Int("strokes", cv.Len()))
	return nil
}

func drawStroke(cv *surface.Canvas, pts []surface.Point) {
	if len(pts) == 0 {
		return
	}
	cv.Begin(pts[0])
	for _, p := range pts[1:] {
		cv.Extend(p)
	}
	cv.End()
}

func overlayNames(ks []overlay.Kind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}
