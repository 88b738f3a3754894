// Package console provides the process-wide logger used by the generator.
// Debug output is suppressed unless DebugLevel is raised above zero.
package console

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the shared console logger.
var Logger = New(os.Stderr)

// Console wraps a zerolog logger with printf-style helpers.
type Console struct {
	// DebugLevel enables Debug output when greater than zero.
	DebugLevel int

	mu     sync.Mutex
	quiet  bool
	logger zerolog.Logger
}

// New creates a Console writing human readable lines to w.
func New(w io.Writer) *Console {
	return &Console{
		logger: zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: "15:04:05",
		}).With().Timestamp().Logger(),
	}
}

// SetOutput redirects the console to w.
func (c *Console) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = c.logger.Output(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"})
}

// SetQuiet silences Info and Warn output. Errors are still reported by callers.
func (c *Console) SetQuiet(quiet bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiet = quiet
}

// Debug logs a debug line when DebugLevel > 0.
func (c *Console) Debug(format string, args ...interface{}) {
	if c.DebugLevel <= 0 {
		return
	}
	c.logger.Debug().Msgf(format, args...)
}

// Info logs an informational line.
func (c *Console) Info(format string, args ...interface{}) {
	if c.isQuiet() {
		return
	}
	c.logger.Info().Msgf(format, args...)
}

// Warn logs a warning line.
func (c *Console) Warn(format string, args ...interface{}) {
	if c.isQuiet() {
		return
	}
	c.logger.Warn().Msgf(format, args...)
}

// Printf satisfies the Debugger interfaces used across the generator.
func (c *Console) Printf(format string, args ...interface{}) {
	c.Debug(format, args...)
}

func (c *Console) isQuiet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quiet
}
