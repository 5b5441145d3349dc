/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"fmt"

	"paintpad/internal/overlay"
	"paintpad/internal/paint"
	"paintpad/internal/surface"
)

// Script is a replayable sequence of interaction steps.
// Scripts are written in YAML:
//
//	name: demo
//	steps:
//	  - select_shape: circle
//	  - set_width: 250
//	  - set_color: {slot: a, color: "#ff0000"}
//	  - overlay: {toggle: color_picker}
//	  - tap_backdrop: color_picker
//	  - stroke: [[0,0],[10,10]]
type Script struct {
	Name  string
	Steps []Step
}

// StepKind names one step type.
type StepKind int

const (
	StepSelectTool StepKind = iota
	StepSelectShape
	StepSetWidth
	StepSelectSlot
	StepSetColor
	StepOverlay
	StepTapBackdrop
	StepPicker
	StepPick
	StepStroke
	StepRewind
	StepClear
	StepDismiss
)

var stepKeys = map[string]StepKind{
	"select_tool":  StepSelectTool,
	"select_shape": StepSelectShape,
	"set_width":    StepSetWidth,
	"select_slot":  StepSelectSlot,
	"set_color":    StepSetColor,
	"overlay":      StepOverlay,
	"tap_backdrop": StepTapBackdrop,
	"picker":       StepPicker,
	"pick":         StepPick,
	"stroke":       StepStroke,
	"rewind":       StepRewind,
	"clear":        StepClear,
	"dismiss":      StepDismiss,
}

func (k StepKind) String() string {
	for name, v := range stepKeys {
		if v == k {
			return name
		}
	}
	return fmt.Sprintf("step(%d)", int(k))
}

// Action is an overlay or picker verb.
type Action string

const (
	ActionOpen   Action = "open"
	ActionClose  Action = "close"
	ActionToggle Action = "toggle"
	ActionCommit Action = "commit"
	ActionCancel Action = "cancel"
)

// Step is one parsed script entry. Only the fields relevant to Kind are set.
type Step struct {
	Kind    StepKind
	Line    int // 1-based line in the source
	Tool    paint.Tool
	Shape   paint.Shape
	Width   int
	Slot    paint.Slot
	Color   paint.Color
	Overlay overlay.Kind
	Action  Action
	Points  []surface.Point
}

// Error is a parse problem tied to a step.
type Error struct {
	Step    int // 0-based step index, -1 for document-level errors
	Line    int
	Message string
}

func (e Error) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("step %d (line %d): %s", e.Step+1, e.Line, e.Message)
}
