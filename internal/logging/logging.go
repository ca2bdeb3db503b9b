// Package logging configures the zerolog logger used as s4's diagnostic stream.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State left by the last Setup: the console writer and the log file, if any.
var (
	console io.Writer = os.Stderr
	logFile *os.File
)

// Options controls logger setup.
type Options struct {
	// Verbosity raises the level: 0 info, 1 debug, 2+ trace.
	Verbosity int
	// Quiet lowers the level to warn. It wins over Verbosity.
	Quiet bool
	// LogFile, when set, receives a JSON copy of every log line.
	LogFile string
	// Out is the console writer target. Defaults to os.Stderr.
	Out io.Writer
	// NoColor disables ANSI colors on the console.
	NoColor bool
}

// Setup configures the global logger. Progress messages are logged at info
// level so they show by default on stderr. A log file opened by an earlier
// Setup is closed.
func Setup(opts Options) {
	_ = Close()
	zerolog.SetGlobalLevel(levelFor(opts))

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	console = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}

	writers := []io.Writer{console}
	var fileErr error
	if opts.LogFile != "" {
		f, err := openLogFile(opts.LogFile)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		}
		fileErr = err
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.LogFile).Msg("Logger initialized")
}

// Close closes the log file opened by Setup and drops it from the global
// logger. It is safe to call when no file is open.
func Close() error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	log.Logger = log.Logger.Output(console)
	return f.Close()
}

func levelFor(opts Options) zerolog.Level {
	if opts.Quiet {
		return zerolog.WarnLevel
	}
	switch opts.Verbosity {
	case 0:
		return zerolog.InfoLevel
	case 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a logger tagged with the given component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
