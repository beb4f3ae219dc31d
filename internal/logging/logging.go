package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/faizmokh/ttrk/internal/files"
)

const (
	maxFileSizeMB  = 5
	maxFileBackups = 3
	maxFileAgeDays = 28
)

// Options controls where diagnostics go and how verbose they are.
type Options struct {
	Level string
	// File, when set, receives a copy of every record and is rotated by size.
	File   string
	Stderr io.Writer
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
// An empty string is warn.
func ParseLevel(value string) (slog.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", value)
	}
	return level, nil
}

// Setup builds the diagnostics logger and installs it as the slog default.
// The returned closer releases the diagnostics file, if any.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var writer io.Writer = os.Stderr
	if opts.Stderr != nil {
		writer = opts.Stderr
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.File); path != "" {
		expanded, err := files.ExpandHome(path)
		if err != nil {
			return nil, nil, fmt.Errorf("find home directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   filepath.Clean(expanded),
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxFileBackups,
			MaxAge:     maxFileAgeDays,
		}
		writer = io.MultiWriter(writer, rotating)
		closer = rotating
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}

func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
