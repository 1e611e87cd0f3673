package cliutil

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the console logger every kernel binary uses for its run
// summary (iteration counts, elapsed phases, PASS/FAIL for --check_* modes),
// in the spirit of junjiewwang-perf-analysis/cmd/cli/cmd/root.go's
// verbose-gated logger setup, but backed by zerolog's console writer instead
// of a bespoke Logger interface.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
