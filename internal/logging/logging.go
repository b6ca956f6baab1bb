// Package logging builds the application logger from settings.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a logrus logger writing to stderr
func New(settings config.LogSettings) (*logrus.Logger, error) {
	return NewWithWriter(settings, os.Stderr)
}

// NewWithWriter creates a logrus logger writing to w
func NewWithWriter(settings config.LogSettings, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	level := settings.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(settings.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (expected text or json)", settings.Format)
	}

	return logger, nil
}
