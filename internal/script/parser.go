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
	"strings"

	"gopkg.in/yaml.v3"

	"paintpad/internal/overlay"
	"paintpad/internal/paint"
	"paintpad/internal/surface"
)

type document struct {
	Name  string    `yaml:"name"`
	Steps yaml.Node `yaml:"steps"`
}

// Parse decodes a YAML replay script. Invalid steps are reported and skipped;
// the remaining steps are returned in order.
func Parse(data []byte) (Script, []Error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Script{}, []Error{{Step: -1, Line: 0, Message: err.Error()}}
	}
	s := Script{Name: doc.Name}
	if doc.Steps.Kind == 0 {
		return s, nil
	}
	if doc.Steps.Kind != yaml.SequenceNode {
		return s, []Error{{Step: -1, Line: doc.Steps.Line, Message: "steps must be a list"}}
	}
	var errs []Error
	for i, n := range doc.Steps.Content {
		st, err := parseStep(n)
		if err != nil {
			errs = append(errs, Error{Step: i, Line: n.Line, Message: err.Error()})
			continue
		}
		s.Steps = append(s.Steps, st)
	}
	return s, errs
}

func parseStep(n *yaml.Node) (Step, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return Step{}, fmt.Errorf("step must be a single-key mapping")
	}
	key, val := n.Content[0].Value, n.Content[1]
	kind, ok := stepKeys[key]
	if !ok {
		return Step{}, fmt.Errorf("unknown step %q", key)
	}
	st := Step{Kind: kind, Line: n.Line}
	switch kind {
	case StepSelectTool:
		t, ok := paint.ParseTool(val.Value)
		if !ok {
			return st, fmt.Errorf("unknown tool %q", val.Value)
		}
		st.Tool = t
	case StepSelectShape:
		sh, ok := paint.ParseShape(val.Value)
		if !ok {
			return st, fmt.Errorf("unknown shape %q", val.Value)
		}
		st.Shape = sh
	case StepSetWidth:
		if err := val.Decode(&st.Width); err != nil {
			return st, fmt.Errorf("width: %w", err)
		}
	case StepSelectSlot:
		k, ok := paint.ParseSlot(val.Value)
		if !ok {
			return st, fmt.Errorf("unknown slot %q", val.Value)
		}
		st.Slot = k
	case StepSetColor:
		var v struct {
			Slot  string `yaml:"slot"`
			Color string `yaml:"color"`
		}
		if err := val.Decode(&v); err != nil {
			return st, fmt.Errorf("set_color: %w", err)
		}
		k, ok := paint.ParseSlot(v.Slot)
		if !ok {
			return st, fmt.Errorf("unknown slot %q", v.Slot)
		}
		c, err := paint.ParseColor(v.Color)
		if err != nil {
			return st, err
		}
		st.Slot, st.Color = k, c
	case StepOverlay:
		var v map[string]string
		if err := val.Decode(&v); err != nil || len(v) != 1 {
			return st, fmt.Errorf("overlay: expected {open|close|toggle: <overlay>}")
		}
		for verb, name := range v {
			a := Action(strings.ToLower(verb))
			if a != ActionOpen && a != ActionClose && a != ActionToggle {
				return st, fmt.Errorf("unknown overlay action %q", verb)
			}
			k, ok := overlay.ParseKind(name)
			if !ok {
				return st, fmt.Errorf("unknown overlay %q", name)
			}
			st.Action, st.Overlay = a, k
		}
	case StepTapBackdrop:
		k, ok := overlay.ParseKind(val.Value)
		if !ok {
			return st, fmt.Errorf("unknown overlay %q", val.Value)
		}
		st.Overlay = k
	case StepPicker:
		a := Action(strings.ToLower(val.Value))
		if a != ActionOpen && a != ActionCommit && a != ActionCancel {
			return st, fmt.Errorf("unknown picker action %q", val.Value)
		}
		st.Action = a
	case StepPick:
		c, err := paint.ParseColor(val.Value)
		if err != nil {
			return st, err
		}
		st.Color = c
	case StepStroke:
		var pts [][]float32
		if err := val.Decode(&pts); err != nil {
			return st, fmt.Errorf("stroke: %w", err)
		}
		for i, p := range pts {
			if len(p) != 2 {
				return st, fmt.Errorf("stroke point %d: expected [x, y]", i)
			}
			st.Points = append(st.Points, surface.Point{X: p[0], Y: p[1]})
		}
	case StepRewind, StepClear, StepDismiss:
	}
	return st, nil
}
