package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"

	"github.com/five82/sixcities/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// Options describes a logger.
type Options struct {
	// Writer receives human readable records. Required.
	Writer io.Writer
	Level  slog.Leveler
	// Color enables ANSI colors; leave off for files.
	Color bool
	// Poster, when set, also receives every record for fluentd.
	Poster Poster
	Tag    string
}

// New builds a logger from opts.
func New(opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	writer := opts.Writer
	if writer == nil {
		writer = io.Discard
	}

	var handler slog.Handler = tint.NewHandler(writer, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    !opts.Color,
	})
	if opts.Poster != nil {
		handler = Tee(handler, NewFluentHandler(opts.Poster, opts.Tag, level))
	}
	return slog.New(handler)
}

// Console returns a colored logger on stderr for command line tools.
func Console(level slog.Leveler) *slog.Logger {
	return New(Options{Writer: os.Stderr, Level: level, Color: true})
}

// Setup opens the client log file named in cfg and, when enabled, connects
// the fluentd forwarder. The returned close function flushes both.
func Setup(cfg config.Config) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	opts := Options{Writer: file, Level: cfg.LogLevel}
	closers := []func() error{file.Close}

	if cfg.Fluent.Enabled {
		client, err := fluent.New(fluent.Config{
			FluentHost: cfg.Fluent.Host,
			FluentPort: cfg.Fluent.Port,
			TagPrefix:  cfg.Fluent.Tag,
			Async:      true,
		})
		if err != nil {
			_ = file.Close()
			return nil, nil, fmt.Errorf("create fluentd client: %w", err)
		}
		opts.Poster = client
		closers = append([]func() error{client.Close}, closers...)
	}

	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			if err := c(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	return New(opts), closeAll, nil
}
