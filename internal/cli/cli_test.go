package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/powergridgo/internal/network"
)

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_PositionalNetworkPath(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"grid.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "grid.hcl", cfg.NetworkPath)
	assert.Equal(t, "pf", cfg.Mode)
	assert.Equal(t, "max", cfg.SCCase)
	assert.Equal(t, 1, cfg.Sequence)
	assert.False(t, cfg.CheckConnectivity)
}

func TestParse_FlagsOverrideDefaults(t *testing.T) {
	t.Parallel()

	args := []string{
		"-network", "net.hcl",
		"-mode", "sc",
		"-case", "min",
		"-sequence", "0",
		"-check-connectivity",
		"-log-format", "text",
		"-log-level", "debug",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "net.hcl", cfg.NetworkPath)
	assert.Equal(t, "sc", cfg.Mode)
	assert.Equal(t, "min", cfg.SCCase)
	assert.Equal(t, 0, cfg.Sequence)
	assert.True(t, cfg.CheckConnectivity)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)

	opts := cfg.Options()
	assert.Equal(t, network.ModeSC, opts.Mode)
	assert.Equal(t, network.SCMin, opts.SCCase)
}

func TestParse_ShorthandNetworkFlag(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-n", "short.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "short.hcl", cfg.NetworkPath)
}

func TestParse_ValidationFailures(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
	}{
		{"bad log format", []string{"-log-format", "xml", "grid.hcl"}},
		{"bad log level", []string{"-log-level", "verbose", "grid.hcl"}},
		{"bad mode", []string{"-mode", "dc", "grid.hcl"}},
		{"bad case", []string{"-case", "typical", "grid.hcl"}},
		{"bad sequence", []string{"-sequence", "2", "grid.hcl"}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_HelpFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "NETWORK_PATH")
}
