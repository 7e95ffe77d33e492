package logginghelpers

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// Level Debug -4
	LevelReportIO slog.Level = -2
	// Level Info 0
	// Level Warn 4
	// Level Error 8
	LevelBrokenProcess slog.Level = 12
)

// accepts the slog level names plus "io" and "trace" (trace logs everything)
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return slog.LevelDebug, nil
	case "io":
		return LevelReportIO, nil
	case "", "info":
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level `%s`", name)
	}
	return level, nil
}
