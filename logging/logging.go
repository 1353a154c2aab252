package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger.
// If filename is empty, logging is disabled; the TUI owns stdout.
// If filename is set, JSON lines go to that file and Bubble Tea logs are
// appended next to it.
func Setup(level, filename string) (zerolog.Logger, func(), error) {
	cleanup := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, cleanup, fmt.Errorf("parse log level: %w", err)
	}

	if filename == "" {
		l := zerolog.New(io.Discard).Level(zerolog.Disabled)
		log.Logger = l
		return l, cleanup, nil
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return zerolog.Logger{}, cleanup, fmt.Errorf("create logs dir: %w", err)
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, cleanup, err
	}

	// Bubble Tea's own logger, for program internals.
	tf, err := tea.LogToFile(filename+".tea", "tea")
	if err != nil {
		_ = f.Close()
		return zerolog.Logger{}, cleanup, err
	}

	l := zerolog.New(f).
		With().
		Timestamp().
		Logger().
		Level(lvl)
	log.Logger = l

	cleanup = func() {
		_ = tf.Close()
		_ = f.Close()
	}
	return l, cleanup, nil
}

// IsDebugMode reports whether debug events reach the log.
func IsDebugMode() bool {
	return log.Logger.GetLevel() <= zerolog.DebugLevel
}

func Debugf(format string, args ...any) { log.Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { log.Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { log.Warn().Msgf(format, args...) }
