package services

import (
	"log/slog"

	logginghelpers "github.com/Pjt727/classwatch/data/logging-helpers"
)

const (
	LevelHttpReport slog.Level = logginghelpers.LevelReportIO
)
