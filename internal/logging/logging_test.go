package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	logger, err := New(config.LogSettings{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LogSettings{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.WithField("scenario", "base").Debug("simulated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "simulated", entry["msg"])
	assert.Equal(t, "base", entry["scenario"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(config.LogSettings{Level: "loud"})
	assert.Error(t, err)

	_, err = New(config.LogSettings{Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_SatisfiesEngineLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LogSettings{Level: "info"}, &buf)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Logger.Infof("crossover in year %d", 7)

	assert.Contains(t, buf.String(), "crossover in year 7")
}
