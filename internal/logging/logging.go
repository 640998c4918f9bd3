// Package logging builds the process-wide hclog logger.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/config"
)

// New returns the root logger configured from cfg.
func New(name string, cfg config.LogConfig) hclog.Logger {
	return newLogger(name, cfg, os.Stderr)
}

func newLogger(name string, cfg config.LogConfig, out io.Writer) hclog.Logger {
	level := hclog.LevelFromString(cfg.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     out,
		JSONFormat: cfg.JSON,
	})
}
