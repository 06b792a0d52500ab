// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/focusflow/focusflow/internal/config"
)

// Level converts a configured level name into a slog.Level. Unknown names
// fall back to info.
func Level(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer returns the rotating log file described by cfg.
func Writer(cfg config.LogConfig, path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}, nil
}

// New builds a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init installs the rotating file logger as the default slog logger. The
// returned closer flushes and closes the log file.
func Init(cfg config.LogConfig, path string) (io.Closer, error) {
	w, err := Writer(cfg, path)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(New(w, Level(cfg.Level)))

	return w, nil
}
