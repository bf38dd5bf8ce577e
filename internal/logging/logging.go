// Package logging configures the process-wide logrus logger. The dashboard
// owns the terminal, so logs go to a state file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLogPath returns ~/.local/state/transitdash/<name>.log.
func DefaultLogPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "transitdash", name+".log")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Configure applies level and output to logger. An empty path logs to
// fallback. If the file cannot be opened the logger falls back too, and the
// open error is returned alongside a usable cleanup func.
func Configure(logger *logrus.Logger, level, path string, fallback io.Writer) (func(), error) {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if path == "" {
		logger.SetOutput(fallback)
		return func() {}, nil
	}

	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.SetOutput(fallback)
		return func() {}, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.SetOutput(fallback)
		return func() {}, fmt.Errorf("opening log file: %w", err)
	}

	logger.SetOutput(f)
	return func() {
		_ = f.Close()
	}, nil
}
