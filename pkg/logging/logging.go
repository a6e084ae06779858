// Package logging configures the diagnostic log sink. Diagnostics go to
// stderr so they never mix with the functional output on stdout.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger returns a slog.Logger writing tint-formatted lines to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))
}
