package microui

import (
	"log/slog"
	"os"
)

// logLevel controls the package logger. Defaults to Info so the debug
// chatter (focus changes, container recycling) stays quiet unless the
// host opts in via SetVerbose.
var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: logLevel,
}))

// SetVerbose toggles debug-level logging for the whole package. Debug
// output traces focus grants, hover-root selection and pool evictions,
// which is useful when widget ids collide or windows fight over input.
func SetVerbose(verbose bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}
