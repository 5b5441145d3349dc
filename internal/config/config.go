/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	applog "paintpad/internal/log"
	"paintpad/internal/telemetry"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are read-only overrides applied at load time.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int             `yaml:"config_version"`
	General       GeneralConfig   `yaml:"general"`
	Canvas        CanvasConfig    `yaml:"canvas"`
	UI            UIConfig        `yaml:"ui"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`
	Logging       LoggingConfig   `yaml:"logging"`
}

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // "system" | "light" | "dark"
}

// CanvasConfig holds the initial selection and board look.
type CanvasConfig struct {
	DefaultWidth int    `yaml:"default_width"`
	SlotA        string `yaml:"slot_a"`
	SlotB        string `yaml:"slot_b"`
	Background   string `yaml:"background"`
}

type UIConfig struct {
	OverlayPolicy string `yaml:"overlay_policy"` // "exclusive" | "layered"
}

type TelemetryConfig struct {
	EventsURL string `yaml:"events_url"`
	CrashURL  string `yaml:"crash_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
	// Token is not stored on disk; it lives in the OS keychain.
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: "system"},
		Canvas:        CanvasConfig{DefaultWidth: 4, SlotA: "#000000", SlotB: "#ffffff", Background: "#ffffff"},
		UI:            UIConfig{OverlayPolicy: "exclusive"},
		Telemetry:     TelemetryConfig{TimeoutMs: 1500},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath     = "PAINT_CONFIG"
	EnvTheme          = "PAINT_THEME"
	EnvStrokeWidth    = "PAINT_STROKE_WIDTH"
	EnvSlotA          = "PAINT_SLOT_A"
	EnvSlotB          = "PAINT_SLOT_B"
	EnvOverlayPolicy  = "PAINT_OVERLAY_POLICY"
	EnvTelemetryOptIn = telemetry.EnvOptIn
	EnvTelemetryURL   = telemetry.EnvEventsURL
	EnvCrashURL       = telemetry.EnvCrashURL
	EnvLogLevel       = applog.EnvLevel
	EnvLogFormat      = applog.EnvFormat
	EnvLogSource      = applog.EnvSource
	EnvLogFile        = applog.EnvFile
)

// envKeys maps dotted config keys to the env var overriding them.
var envKeys = map[string]string{
	"general.theme":            EnvTheme,
	"general.telemetry_opt_in": EnvTelemetryOptIn,
	"canvas.default_width":     EnvStrokeWidth,
	"canvas.slot_a":            EnvSlotA,
	"canvas.slot_b":            EnvSlotB,
	"ui.overlay_policy":        EnvOverlayPolicy,
	"telemetry.events_url":     EnvTelemetryURL,
	"telemetry.crash_url":      EnvCrashURL,
	"logging.level":            EnvLogLevel,
	"logging.format":           EnvLogFormat,
	"logging.source":           EnvLogSource,
	"logging.file":             EnvLogFile,
}

// Dir returns the per-user config directory.
func Dir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PaintPad")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PaintPad")
	default:
		home := os.Getenv("HOME")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "paintpad"), nil
		}
		if home == "" {
			return "", fmt.Errorf("cannot resolve config directory: HOME not set")
		}
		base = filepath.Join(home, ".config", "paintpad")
	}
	return base, nil
}

// ConfigPath returns the config file path. PAINT_CONFIG wins over the user dir.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
// A file that fails schema validation is logged and ignored. The telemetry token is read from the
// keyring and returned separately.
func Load() (AppConfig, string, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, "", err
	}
	l := applog.WithComponent("config")
	if data, err := os.ReadFile(path); err == nil {
		if fileCfg, err := decode(data); err != nil {
			l.Warn("config file ignored", slog.String("path", path), slog.Any("err", err))
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	tok, err := tokenStore.Get(keyringService, keyringToken)
	if err != nil {
		l.Debug("no telemetry token", slog.Any("err", err))
	}
	return cfg, tok, nil
}

func decode(data []byte) (AppConfig, error) {
	if err := Validate(data); err != nil {
		return AppConfig{}, err
	}
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Save writes the user config YAML and persists the token into OS keyring (if non-empty).
func Save(cfg AppConfig, token string) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if token != "" {
		if err := tokenStore.Set(keyringService, keyringToken, token); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
	}
	return nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if v := strings.TrimSpace(src.General.Theme); v != "" {
		dst.General.Theme = strings.ToLower(v)
	}
	// booleans come straight from the file so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if src.Canvas.DefaultWidth != 0 {
		dst.Canvas.DefaultWidth = src.Canvas.DefaultWidth
	}
	if v := strings.TrimSpace(src.Canvas.SlotA); v != "" {
		dst.Canvas.SlotA = v
	}
	if v := strings.TrimSpace(src.Canvas.SlotB); v != "" {
		dst.Canvas.SlotB = v
	}
	if v := strings.TrimSpace(src.Canvas.Background); v != "" {
		dst.Canvas.Background = v
	}
	if v := strings.TrimSpace(src.UI.OverlayPolicy); v != "" {
		dst.UI.OverlayPolicy = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Telemetry.EventsURL); v != "" {
		dst.Telemetry.EventsURL = v
	}
	if v := strings.TrimSpace(src.Telemetry.CrashURL); v != "" {
		dst.Telemetry.CrashURL = v
	}
	if src.Telemetry.TimeoutMs != 0 {
		dst.Telemetry.TimeoutMs = src.Telemetry.TimeoutMs
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	str := func(key string, dst *string, lower bool) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			if lower {
				v = strings.ToLower(v)
			}
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			lv := strings.ToLower(v)
			*dst = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
		}
	}
	str(EnvTheme, &cfg.General.Theme, true)
	boolean(EnvTelemetryOptIn, &cfg.General.TelemetryOptIn)
	if v := strings.TrimSpace(os.Getenv(EnvStrokeWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.DefaultWidth = n
		}
	}
	str(EnvSlotA, &cfg.Canvas.SlotA, false)
	str(EnvSlotB, &cfg.Canvas.SlotB, false)
	str(EnvOverlayPolicy, &cfg.UI.OverlayPolicy, true)
	str(EnvTelemetryURL, &cfg.Telemetry.EventsURL, false)
	str(EnvCrashURL, &cfg.Telemetry.CrashURL, false)
	str(EnvLogLevel, &cfg.Logging.Level, true)
	str(EnvLogFormat, &cfg.Logging.Format, true)
	boolean(EnvLogSource, &cfg.Logging.Source)
	str(EnvLogFile, &cfg.Logging.File, false)
}

// Keys lists the dotted config keys that have an env override, sorted.
func Keys() []string {
	out := make([]string, 0, len(envKeys))
	for k := range envKeys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env, ok := envKeys[key]
	if !ok || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}
