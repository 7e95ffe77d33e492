package logginghelpers

import (
	"io"
	"log/slog"
)

// NewLogger writes text to console and, when file is not nil, json to file.
// Both share the same minimum level.
func NewLogger(console io.Writer, file io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevelNames}
	handler := NewMultiHandler(slog.NewTextHandler(console, opts))
	if file != nil {
		handler.AddHandler(slog.NewJSONHandler(file, opts))
	}
	return slog.New(handler)
}

func replaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case LevelReportIO:
		a.Value = slog.StringValue("IO")
	case LevelBrokenProcess:
		a.Value = slog.StringValue("BROKEN")
	}
	return a
}
