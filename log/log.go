// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides the structured logger shared by all packages.
//
// Package level loggers are declared once with WithContext and resolve the
// root handler on every call, so handlers installed later by the command
// line take effect for them too.
package log

import (
	"context"
	"log/slog"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// Levels, from most to least verbose.
const (
	LevelTrace = gethlog.LevelTrace
	LevelDebug = gethlog.LevelDebug
	LevelInfo  = gethlog.LevelInfo
	LevelWarn  = gethlog.LevelWarn
	LevelError = gethlog.LevelError
	LevelCrit  = gethlog.LevelCrit
)

// Logger writes key/value pairs at various levels.
type Logger interface {
	With(ctx ...any) Logger
	Enabled(ctx context.Context, level slog.Level) bool
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
}

type contextLogger struct {
	ctx []any
}

// WithContext returns a logger that prefixes every record with ctx.
func WithContext(ctx ...any) Logger {
	return &contextLogger{ctx: ctx}
}

// Root returns the root logger.
func Root() Logger {
	return &contextLogger{}
}

func (l *contextLogger) resolve() gethlog.Logger {
	if len(l.ctx) == 0 {
		return gethlog.Root()
	}
	return gethlog.Root().With(l.ctx...)
}

func (l *contextLogger) With(ctx ...any) Logger {
	merged := make([]any, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	return &contextLogger{ctx: append(merged, ctx...)}
}

func (l *contextLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return gethlog.Root().Enabled(ctx, level)
}

func (l *contextLogger) Trace(msg string, ctx ...any) { l.resolve().Trace(msg, ctx...) }
func (l *contextLogger) Debug(msg string, ctx ...any) { l.resolve().Debug(msg, ctx...) }
func (l *contextLogger) Info(msg string, ctx ...any)  { l.resolve().Info(msg, ctx...) }
func (l *contextLogger) Warn(msg string, ctx ...any)  { l.resolve().Warn(msg, ctx...) }
func (l *contextLogger) Error(msg string, ctx ...any) { l.resolve().Error(msg, ctx...) }
func (l *contextLogger) Crit(msg string, ctx ...any)  { l.resolve().Crit(msg, ctx...) }

// SetDefault installs h as the root handler.
func SetDefault(h slog.Handler) {
	gethlog.SetDefault(gethlog.NewLogger(h))
}

// FromVerbosity converts a 0 (crit) to 5 (trace) verbosity into a level.
func FromVerbosity(verbosity int) slog.Level {
	return gethlog.FromLegacyLevel(verbosity)
}
