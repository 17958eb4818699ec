package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// logConfig holds CLI flag values for log configuration, the same
// construct-then-RegisterFlags-then-build shape the pack's log.Config uses
// for its own --log-level/--log-format pair, adapted here to build a
// logrus.Logger instead of a slog Handler.
type logConfig struct {
	level  string
	format string
}

func newLogConfig() *logConfig {
	return &logConfig{level: "info", format: "text"}
}

// RegisterFlags adds --log-level and --log-format to flags.
func (c *logConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.level, "log-level", c.level,
		"log level: panic, fatal, error, warn, info, debug, or trace")
	flags.StringVar(&c.format, "log-format", c.format, "log format: text or json")
}

// newLogger builds the logrus.Logger described by c, writing to w.
func (c *logConfig) newLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	switch c.format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q: want text or json", c.format)
	}
	return log, nil
}
