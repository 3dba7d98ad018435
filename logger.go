// seehuhn.de/go/grid - pan and zoom for infinite 2D grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package grid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is the logger used until SetLogger is called.
var discard = slog.New(silent{})

type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (h silent) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silent) WithGroup(string) slog.Handler           { return h }

var current atomic.Pointer[slog.Logger]

// SetLogger sets the destination for diagnostic messages of this module.
// Rejected and clamped input is reported at debug level.  A nil logger
// switches logging off again, which is also the initial state.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger set by SetLogger.  The result is never nil.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}
