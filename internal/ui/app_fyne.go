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
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"paintpad/internal/crash"
	applog "paintpad/internal/log"
	"paintpad/internal/paint"
	"paintpad/internal/studio"
	"paintpad/internal/surface"
	"paintpad/internal/telemetry"
	"paintpad/internal/version"
)

// Run starts the Fyne desktop UI and blocks until the window closes.
func Run(opts Options) error {
	cfg := opts.Config
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("version", version.String()), slog.String("overlay_policy", cfg.UI.Policy().String()))

	sel := paint.NewSelection(cfg.Canvas.SelectionOptions()...)
	cv := surface.NewCanvas(sel.ActiveDrawingConfig())
	defer crash.Recover(&crash.Context{Dir: opts.CrashDir, Selection: sel.Snapshot, Strokes: cv.Len})

	ctl := studio.New(sel, cv, studio.Options{Policy: cfg.UI.Policy(), Telemetry: telemetry.Default()})

	fyneApp := app.NewWithID("io.paintpad")
	applyTheme(fyneApp, cfg.General.Theme)
	w := fyneApp.NewWindow("PaintPad")
	prefs := fyneApp.Preferences()
	winW := max(prefs.IntWithFallback("window.width", 1024), 640)
	winH := max(prefs.IntWithFallback("window.height", 720), 480)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	v := newView(ctl, cv, cfg.Canvas.BackgroundColor())
	w.SetContent(v.content)
	w.Canvas().SetOnTypedKey(v.typedKey)
	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		l.Info("window closed", slog.Int("strokes", cv.Len()))
	})
	w.ShowAndRun()
	return nil
}

// forcedVariant pins the default theme to light or dark.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t forcedVariant) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}

func applyTheme(a fyne.App, name string) {
	switch strings.ToLower(name) {
	case "dark":
		a.Settings().SetTheme(forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		a.Settings().SetTheme(forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	}
}
