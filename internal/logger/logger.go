// Package logger builds the process-wide slog.Logger.
//
// Lambda functions log JSON so CloudWatch can index the attributes; the local
// server and CLI default to tint's colored text output.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"CapIot.timestream/internal/config"
	"github.com/lmittmann/tint"
)

// InitLogger creates a logger from cfg, writes to stdout and installs it as the slog default.
func InitLogger(cfg config.Config) *slog.Logger {
	log := New(os.Stdout, cfg.LogFormat, cfg.SlogLevel())
	slog.SetDefault(log)
	return log
}

// New returns a logger writing to w. format is "json" or "text".
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: w != io.Writer(os.Stdout),
	}))
}
