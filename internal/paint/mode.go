/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package paint holds the drawing selection state: which tool or shape is
// active, the two color slots and the stroke width. Every operation is a total
// state transition; invalid input is mapped onto the nearest valid value.
package paint

import "strings"

// Tool is a freehand drawing tool.
type Tool uint8

const (
	ToolNone Tool = iota
	ToolBrush
	ToolEraser
)

var toolNames = [...]string{ToolNone: "none", ToolBrush: "brush", ToolEraser: "eraser"}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "none"
}

// Tools lists the selectable tools in toolbar order.
func Tools() []Tool { return []Tool{ToolBrush, ToolEraser} }

// ParseTool maps a tool name to a Tool. Unknown names yield ToolNone and false.
func ParseTool(s string) (Tool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brush", "pen":
		return ToolBrush, true
	case "eraser":
		return ToolEraser, true
	case "none", "":
		return ToolNone, true
	}
	return ToolNone, false
}

// Shape is a geometric primitive drawn from an anchor to the current point.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeLine
	ShapeCircle
	ShapeRectangle
)

var shapeNames = [...]string{ShapeNone: "none", ShapeLine: "line", ShapeCircle: "circle", ShapeRectangle: "rectangle"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "none"
}

// Shapes lists the shapes offered by the shape picker.
func Shapes() []Shape { return []Shape{ShapeLine, ShapeCircle, ShapeRectangle} }

// ParseShape maps a shape name to a Shape. Unknown names yield ShapeNone and false.
func ParseShape(s string) (Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return ShapeLine, true
	case "circle", "ellipse":
		return ShapeCircle, true
	case "rectangle", "rect":
		return ShapeRectangle, true
	case "none", "":
		return ShapeNone, true
	}
	return ShapeNone, false
}

type modeKind uint8

const (
	kindTool modeKind = iota
	kindShape
)

// Mode is the active drawing behavior: either a tool or a shape, never both.
// The zero Mode is the tool mode with no tool.
type Mode struct {
	kind  modeKind
	tool  Tool
	shape Shape
}

// ToolMode returns the mode for tool t.
func ToolMode(t Tool) Mode { return Mode{kind: kindTool, tool: t} }

// ShapeMode returns the mode for shape s.
func ShapeMode(s Shape) Mode { return Mode{kind: kindShape, shape: s} }

// IsShape reports whether the mode draws a shape.
func (m Mode) IsShape() bool { return m.kind == kindShape }

// Tool returns the active tool, or ToolNone in shape mode.
func (m Mode) Tool() Tool {
	if m.kind == kindTool {
		return m.tool
	}
	return ToolNone
}

// Shape returns the active shape, or ShapeNone in tool mode.
func (m Mode) Shape() Shape {
	if m.kind == kindShape {
		return m.shape
	}
	return ShapeNone
}

// Drawing reports whether the mode produces strokes at all.
func (m Mode) Drawing() bool { return m.Tool() != ToolNone || m.Shape() != ShapeNone }

func (m Mode) String() string {
	if m.kind == kindShape {
		return m.shape.String()
	}
	return m.tool.String()
}
