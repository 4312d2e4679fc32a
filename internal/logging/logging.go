package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Setup opens (or creates) the log file and installs a charmbracelet logger
// writing to it as the process-wide default. The returned closer flushes and
// closes the file. An empty path discards all output, which keeps the
// terminal clean while the TUI owns it.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	log.SetDefault(New(w, lvl))
	return closer, nil
}

// SetupWriter installs a logger writing to w as the process-wide default.
// Commands that do not own the terminal log to stderr through it.
func SetupWriter(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetDefault(New(w, lvl))
	return nil
}

// New builds a logger with the timestamped format used across folio.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          "folio",
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
