/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package picker turns the continuous output of a color picker widget into
// slot color updates. A Session lives from the moment the picker opens until
// it is committed, cancelled or its source runs dry.
package picker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	applog "paintpad/internal/log"
	"paintpad/internal/paint"
)

// Target receives picked colors. *paint.Selection satisfies it.
type Target interface {
	SetSlotColor(k paint.Slot, c paint.Color)
	SlotColor(k paint.Slot) paint.Color
}

// Session forwards every picked color to one slot of a Target.
type Session struct {
	id       string
	target   Target
	slot     paint.Slot
	original paint.Color
	last     paint.Color
	pushed   int
	done     bool
	log      *slog.Logger
}

// Begin starts a session writing into slot k of t. The slot's current color is
// remembered so Cancel can restore it.
func Begin(t Target, k paint.Slot) *Session {
	s := &Session{
		id:       uuid.NewString(),
		target:   t,
		slot:     k,
		original: t.SlotColor(k),
	}
	s.last = s.original
	s.log = applog.WithComponent("picker").With(slog.String("session", s.id), slog.String("slot", k.String()))
	s.log.Debug("session begin", slog.String("original", s.original.Hex()))
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Slot is the slot being edited.
func (s *Session) Slot() paint.Slot { return s.slot }

// Done reports whether the session has ended.
func (s *Session) Done() bool { return s.done }

// Push applies c immediately. Pushes after the session ended are dropped.
func (s *Session) Push(c paint.Color) {
	if s.done {
		s.log.Debug("color after session end dropped", slog.String("color", c.Hex()))
		return
	}
	s.last = c
	s.pushed++
	s.target.SetSlotColor(s.slot, c)
}

// Consume pushes colors from src until it closes or ctx is done. When src
// closes the session is committed.
func (s *Session) Consume(ctx context.Context, src <-chan paint.Color) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-src:
			if !ok {
				s.Commit()
				return nil
			}
			s.Push(c)
		}
	}
}

// Commit ends the session keeping the last pushed color.
func (s *Session) Commit() {
	if s.done {
		return
	}
	s.done = true
	s.log.Debug("session commit", slog.String("color", s.last.Hex()), slog.Int("updates", s.pushed))
}

// Cancel ends the session and restores the color the slot had at Begin.
func (s *Session) Cancel() {
	if s.done {
		return
	}
	s.done = true
	if s.last != s.original {
		s.target.SetSlotColor(s.slot, s.original)
	}
	s.last = s.original
	s.log.Debug("session cancel", slog.String("restored", s.original.Hex()), slog.Int("updates", s.pushed))
}
