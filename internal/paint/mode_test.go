/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paint

import "testing"

func TestZeroModeIsEmptyTool(t *testing.T) {
	var m Mode
	if m.IsShape() || m.Tool() != ToolNone || m.Drawing() {
		t.Fatalf("zero mode should be tool none: %v", m)
	}
}

func TestModeProjection(t *testing.T) {
	m := ShapeMode(ShapeRectangle)
	if !m.IsShape() || m.Tool() != ToolNone || m.Shape() != ShapeRectangle || m.String() != "rectangle" {
		t.Fatalf("unexpected shape mode projection: %v", m)
	}
	m = ToolMode(ToolEraser)
	if m.IsShape() || m.Shape() != ShapeNone || m.Tool() != ToolEraser || m.String() != "eraser" {
		t.Fatalf("unexpected tool mode projection: %v", m)
	}
}

func TestParseToolAndShape(t *testing.T) {
	if tl, ok := ParseTool("Eraser"); !ok || tl != ToolEraser {
		t.Fatalf("ParseTool(Eraser) = %v,%v", tl, ok)
	}
	if tl, ok := ParseTool("spray"); ok || tl != ToolNone {
		t.Fatalf("ParseTool(spray) = %v,%v", tl, ok)
	}
	for _, sh := range Shapes() {
		got, ok := ParseShape(sh.String())
		if !ok || got != sh {
			t.Fatalf("ParseShape(%q) = %v,%v", sh.String(), got, ok)
		}
	}
	if sh, ok := ParseShape("triangle"); ok || sh != ShapeNone {
		t.Fatalf("ParseShape(triangle) = %v,%v", sh, ok)
	}
}
