package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltersRecords(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.LogLevel = "warn"
	cfg, err := NewConfig(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.LogLevel = "verbose"
	cfg, err := NewConfig(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Debug("dropped")
	logger.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_Formats(t *testing.T) {
	t.Parallel()

	c := validConfig()
	cfg, err := NewConfig(c)
	require.NoError(t, err)

	var jsonBuf bytes.Buffer
	newLogger(cfg, &jsonBuf).Info("hello")
	var record map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])

	c.LogFormat = "text"
	textCfg, err := NewConfig(c)
	require.NoError(t, err)
	var textBuf bytes.Buffer
	newLogger(textCfg, &textBuf).Info("hello")
	assert.Contains(t, textBuf.String(), "msg=hello")
}
