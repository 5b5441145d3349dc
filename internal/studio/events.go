/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package studio

import (
	"paintpad/internal/overlay"
	"paintpad/internal/paint"
)

// Event is a discrete UI input processed by Controller.Dispatch.
type Event interface{ studioEvent() }

// ToolPressed selects a freehand tool.
type ToolPressed struct{ Tool paint.Tool }

// ShapePicked selects a shape from the shape picker.
type ShapePicked struct{ Shape paint.Shape }

// SlotPressed makes a color slot active.
type SlotPressed struct{ Slot paint.Slot }

// SlotColorSet writes a color into a slot directly, e.g. from a palette swatch.
type SlotColorSet struct {
	Slot  paint.Slot
	Color paint.Color
}

// PickerOpened opens the color picker on the active slot.
type PickerOpened struct{}

// PickerColor is one value from the color picker's continuous output.
type PickerColor struct{ Color paint.Color }

// PickerCommitted closes the color picker keeping the picked color.
type PickerCommitted struct{}

// PickerCancelled closes the color picker and restores the slot's previous color.
type PickerCancelled struct{}

// WidthChanged carries a width slider value; it is clamped on apply.
type WidthChanged struct{ Value int }

// OverlayOpened shows an overlay.
type OverlayOpened struct{ Overlay overlay.Kind }

// OverlayClosed hides an overlay.
type OverlayClosed struct{ Overlay overlay.Kind }

// OverlayToggled flips an overlay.
type OverlayToggled struct{ Overlay overlay.Kind }

// OverlaysDismissed hides every overlay, e.g. on Escape.
type OverlaysDismissed struct{}

// BackdropTapped reports a tap outside an overlay's panel.
type BackdropTapped struct{ Overlay overlay.Kind }

// ClearPressed deletes the canvas content.
type ClearPressed struct{}

// RewindPressed removes the last committed stroke.
type RewindPressed struct{}

func (ToolPressed) studioEvent()       {}
func (ShapePicked) studioEvent()       {}
func (SlotPressed) studioEvent()       {}
func (SlotColorSet) studioEvent()      {}
func (PickerOpened) studioEvent()      {}
func (PickerColor) studioEvent()       {}
func (PickerCommitted) studioEvent()   {}
func (PickerCancelled) studioEvent()   {}
func (WidthChanged) studioEvent()      {}
func (OverlayOpened) studioEvent()     {}
func (OverlayClosed) studioEvent()     {}
func (OverlayToggled) studioEvent()    {}
func (OverlaysDismissed) studioEvent() {}
func (BackdropTapped) studioEvent()    {}
func (ClearPressed) studioEvent()      {}
func (RewindPressed) studioEvent()     {}
