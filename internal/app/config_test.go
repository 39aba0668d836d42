package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/powergridgo/internal/network"
)

func validConfig() Config {
	return Config{
		NetworkPath: "grid.hcl",
		Mode:        "pf",
		SCCase:      "max",
		Sequence:    1,
		LogFormat:   "json",
		LogLevel:    "info",
	}
}

func TestNewConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(validConfig())

	require.NoError(t, err)
	assert.Equal(t, "grid.hcl", cfg.NetworkPath)
}

func TestNewConfig_RequiresNetworkPath(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.NetworkPath = ""

	_, err := NewConfig(c)

	require.ErrorContains(t, err, "NetworkPath")
}

func TestNewConfig_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.Mode = "dc"

	_, err := NewConfig(c)

	require.ErrorContains(t, err, "unknown analysis mode")
}

func TestNewConfig_RejectsUnknownSCCase(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.SCCase = "typical"

	_, err := NewConfig(c)

	require.ErrorContains(t, err, "unknown short-circuit case")
}

func TestNewConfig_RejectsUnsupportedSequence(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.Sequence = 2

	_, err := NewConfig(c)

	require.ErrorContains(t, err, "unsupported sequence")
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.Mode = "sc"
	c.SCCase = "min"
	c.Sequence = 0
	c.CheckConnectivity = true
	cfg, err := NewConfig(c)
	require.NoError(t, err)

	opts := cfg.Options()

	assert.Equal(t, network.ModeSC, opts.Mode)
	assert.Equal(t, network.SCMin, opts.SCCase)
	assert.Equal(t, 0, opts.Sequence)
	assert.True(t, opts.CheckConnectivity)
}
