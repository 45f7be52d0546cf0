// Package logging backs the component Logger interfaces with slog.
package logging

import (
	"log/slog"
	"os"
)

// SlogAdapter satisfies the auth.Logger interface over a *slog.Logger.
type SlogAdapter struct {
	l *slog.Logger
}

// New returns an adapter over a JSON slog handler on stderr.
func New() *SlogAdapter {
	return NewWithLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
}

// NewWithLogger wraps an existing slog logger.
func NewWithLogger(l *slog.Logger) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return &SlogAdapter{l: l}
}

func (a *SlogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *SlogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *SlogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *SlogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }
