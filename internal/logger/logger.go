package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"dispatch_admin/internal/config"
)

// New 根日志，pretty 时输出控制台格式，否则输出 JSON
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter 同 New，输出到指定 writer
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
