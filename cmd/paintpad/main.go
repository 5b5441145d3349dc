/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"paintpad/internal/config"
	"paintpad/internal/crash"
	applog "paintpad/internal/log"
	"paintpad/internal/paint"
	"paintpad/internal/script"
	"paintpad/internal/studio"
	"paintpad/internal/surface"
	"paintpad/internal/telemetry"
	"paintpad/internal/ui"
	"paintpad/internal/version"
)

func usage() {
	fmt.Println("PaintPad")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  paintpad version|-v|--version      Show version")
	fmt.Println("  paintpad ui                        Launch desktop UI (build with -tags fyne for full UI)")
	fmt.Println("  paintpad replay <script.yaml>      Replay an interaction script headless and print the result")
	fmt.Println("  paintpad config [init]             Print the effective config, or write defaults to the config file")
	fmt.Println("  paintpad token set <value>|clear   Store or remove the telemetry token in the OS keychain")
}

func main() {
	cfg, token, err := config.Load()
	applog.Init(cfg.Logging.LogOptions())
	l := applog.WithComponent("cli")
	if err != nil {
		l.Warn("config not loaded, using defaults", slog.Any("err", err))
	}
	telemetry.SetDefault(telemetry.New(cfg.TelemetryClientConfig(token)))
	defer telemetry.Default().Close()

	cc := &crash.Context{Dir: crashDir()}
	defer crash.Recover(cc)

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("PaintPad")
		fmt.Println(version.String())
	case "ui":
		if err := ui.Run(ui.Options{Config: cfg, CrashDir: cc.Dir}); err != nil {
			fail(l, err)
		}
	case "replay":
		if len(args) < 3 {
			fmt.Println("replay requires <script.yaml>")
			usage()
			os.Exit(2)
		}
		data, err := os.ReadFile(args[2])
		if err != nil {
			fail(l, fmt.Errorf("read script: %w", err))
		}
		if err := replay(context.Background(), data, cfg, os.Stdout, cc); err != nil {
			fail(l, err)
		}
	case "config":
		if len(args) >= 3 && args[2] == "init" {
			path, _ := config.ConfigPath()
			if _, err := os.Stat(path); err == nil {
				fmt.Println("Config already exists:", path)
				return
			}
			if err := config.Save(config.Defaults(), ""); err != nil {
				fail(l, err)
			}
			fmt.Println("Wrote", path)
			return
		}
		if err := printConfig(os.Stdout, cfg); err != nil {
			fail(l, err)
		}
	case "token":
		switch {
		case len(args) >= 4 && args[2] == "set":
			if err := config.SaveToken(args[3]); err != nil {
				fail(l, err)
			}
			fmt.Println("Token stored.")
		case len(args) >= 3 && args[2] == "clear":
			if err := config.ForgetToken(); err != nil {
				fail(l, err)
			}
			fmt.Println("Token removed.")
		default:
			usage()
			os.Exit(2)
		}
	default:
		usage()
	}
}

func fail(l *slog.Logger, err error) {
	l.Error("command failed", slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}

func crashDir() string {
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crash")
}

type strokeResult struct {
	ID     string       `yaml:"id"`
	Kind   string       `yaml:"kind"`
	Color  paint.Color  `yaml:"color"`
	Width  int          `yaml:"width"`
	Points [][2]float32 `yaml:"points,flow"`
}

type replayResult struct {
	Script    string         `yaml:"script,omitempty"`
	Selection paint.State    `yaml:"selection"`
	Overlays  []string       `yaml:"open_overlays"`
	Strokes   []strokeResult `yaml:"strokes"`
}

// replay runs a script headless with cfg's initial selection and overlay
// policy and writes the final state to w as YAML.
func replay(ctx context.Context, data []byte, cfg config.AppConfig, w io.Writer, cc *crash.Context) error {
	s, errs := script.Parse(data)
	if len(errs) > 0 {
		all := make([]error, len(errs))
		for i, e := range errs {
			all[i] = e
		}
		return fmt.Errorf("script: %w", errors.Join(all...))
	}
	sel := paint.NewSelection(cfg.Canvas.SelectionOptions()...)
	cv := surface.NewCanvas(sel.ActiveDrawingConfig())
	if cc != nil {
		cc.Selection, cc.Strokes = sel.Snapshot, cv.Len
	}
	ctl := studio.New(sel, cv, studio.Options{Policy: cfg.UI.Policy(), Telemetry: telemetry.Default()})
	if err := script.Play(ctx, s, ctl, cv); err != nil {
		return err
	}

	res := replayResult{Script: s.Name, Selection: sel.Snapshot(), Overlays: []string{}, Strokes: []strokeResult{}}
	for _, k := range ctl.Overlays().Visible() {
		res.Overlays = append(res.Overlays, k.String())
	}
	for _, st := range cv.Strokes() {
		sr := strokeResult{ID: st.ID, Kind: st.Kind(), Color: st.Color, Width: st.Width}
		for _, p := range st.Points {
			sr.Points = append(sr.Points, [2]float32{p.X, p.Y})
		}
		res.Strokes = append(res.Strokes, sr)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}

// printConfig writes the effective config followed by the env overrides in effect.
func printConfig(w io.Writer, cfg config.AppConfig) error {
	path, _ := config.ConfigPath()
	_, _ = fmt.Fprintf(w, "# %s\n", path)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	for _, k := range config.Keys() {
		if env, ok := config.EnvOverrideFor(k); ok {
			_, _ = fmt.Fprintf(w, "# %s overridden by %s\n", k, env)
		}
	}
	return nil
}
