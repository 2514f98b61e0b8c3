package app

import (
	"log/slog"
)

var LogLevel = new(slog.LevelVar)
