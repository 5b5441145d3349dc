/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"log/slog"
	"time"

	applog "paintpad/internal/log"
	"paintpad/internal/overlay"
	"paintpad/internal/paint"
	"paintpad/internal/telemetry"
)

// SelectionOptions turns the canvas section into initial selection options.
// Unparseable colors fall back to the defaults and are logged.
func (c CanvasConfig) SelectionOptions() []paint.Option {
	def := Defaults().Canvas
	a := colorOr(c.SlotA, def.SlotA, "canvas.slot_a")
	b := colorOr(c.SlotB, def.SlotB, "canvas.slot_b")
	w := c.DefaultWidth
	if w == 0 {
		w = def.DefaultWidth
	}
	return []paint.Option{paint.WithSlotColors(a, b), paint.WithStrokeWidth(w)}
}

// BackgroundColor returns the board background.
func (c CanvasConfig) BackgroundColor() paint.Color {
	return colorOr(c.Background, Defaults().Canvas.Background, "canvas.background")
}

func colorOr(v, def, key string) paint.Color {
	col, err := paint.ParseColor(v)
	if err == nil {
		return col
	}
	if v != "" {
		applog.WithComponent("config").Warn("invalid color, using default", slog.String("key", key), slog.String("value", v), slog.Any("err", err))
	}
	return paint.MustParseColor(def)
}

// Policy returns the overlay policy; unknown names mean exclusive.
func (u UIConfig) Policy() overlay.Policy {
	p, ok := overlay.ParsePolicy(u.OverlayPolicy)
	if !ok {
		applog.WithComponent("config").Warn("unknown overlay policy", slog.String("value", u.OverlayPolicy))
	}
	return p
}

// TelemetryClientConfig combines the general opt-in, the telemetry section and the keyring token.
func (c AppConfig) TelemetryClientConfig(token string) telemetry.Config {
	ms := c.Telemetry.TimeoutMs
	if ms <= 0 {
		ms = Defaults().Telemetry.TimeoutMs
	}
	return telemetry.Config{
		OptIn:     c.General.TelemetryOptIn,
		EventsURL: c.Telemetry.EventsURL,
		CrashURL:  c.Telemetry.CrashURL,
		Token:     token,
		Timeout:   time.Duration(ms) * time.Millisecond,
	}
}

// LogOptions converts the logging section for log.Init.
func (l LoggingConfig) LogOptions() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}
