package netdef

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/powergridgo/internal/network"
)

func TestLoadBytes_FullNetwork(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
network "mv-feeder" {
  base_mva = 50
  f_hz     = 60
}

bus {
  id    = 1
  vn_kv = 110
}

bus {
  id         = 2
  vn_kv      = 20
  in_service = false
}

transformer {
  id           = 1
  hv_bus       = 1
  lv_bus       = 2
  sn_mva       = 40
  vn_hv_kv     = 110
  vn_lv_kv     = 20
  vk_percent   = 10
  vkr_percent  = 0.5
  vector_group = "YNyn"
}

ext_grid {
  id           = 1
  bus          = 1
  vm_pu        = 1.02
  s_sc_max_mva = 1000
  rx_max       = 0.1
}

switch {
  id      = 1
  bus     = 1
  element = 1
  et      = "t"
  closed  = false
}
`

	// --- Act ---
	net, err := LoadBytes(context.Background(), "feeder.hcl", []byte(src))
	require.NoError(t, err)

	// --- Assert ---
	assert.Equal(t, "mv-feeder", net.Name)
	assert.Equal(t, 50.0, net.BaseMVA)
	assert.Equal(t, 60.0, net.FHz)

	require.Len(t, net.Buses, 2)
	assert.True(t, net.Buses[0].InService, "in_service defaults to true")
	assert.False(t, net.Buses[1].InService)

	require.Len(t, net.Trafos, 1)
	tr := net.Trafos[0]
	assert.Equal(t, "YNyn", tr.VectorGroup)
	assert.Equal(t, 10.0, tr.Vk0Pct, "zero-sequence leakage defaults to the positive-sequence value")
	assert.Equal(t, 0.5, tr.Vkr0Pct)
	assert.Equal(t, 10.0, tr.Mag0Pct)
	assert.Equal(t, 0.5, tr.Si0HVPartial)
	assert.Equal(t, "hv", tr.TapSide)
	assert.Equal(t, 1.0, tr.Parallel)

	require.Len(t, net.ExtGrids, 1)
	eg := net.ExtGrids[0]
	require.NotNil(t, eg.SScMaxMVA)
	assert.Equal(t, 1000.0, *eg.SScMaxMVA)
	assert.Nil(t, eg.SScMinMVA, "unset optional parameters stay nil")
	assert.Equal(t, 1.0, eg.X0XMax)
	assert.Equal(t, 0.1, eg.R0X0Max)

	require.Len(t, net.Switches, 1)
	assert.Equal(t, network.SwitchTrafo, net.Switches[0].ElementType)
	assert.False(t, net.Switches[0].Closed)
}

func TestLoadBytes_DefaultVectorGroup(t *testing.T) {
	t.Parallel()

	src := `
network "n" {
  base_mva = 100
}

bus {
  id    = 1
  vn_kv = 110
}

bus {
  id    = 2
  vn_kv = 20
}

transformer {
  id          = 1
  hv_bus      = 1
  lv_bus      = 2
  sn_mva      = 25
  vn_hv_kv    = 110
  vn_lv_kv    = 20
  vk_percent  = 12
  vkr_percent = 0.4
}
`
	net, err := LoadBytes(context.Background(), "n.hcl", []byte(src))
	require.NoError(t, err)

	require.Len(t, net.Trafos, 1)
	assert.Equal(t, "Dyn", net.Trafos[0].VectorGroup)
}

func TestLoadBytes_MissingNetworkBlock(t *testing.T) {
	t.Parallel()

	src := `
bus {
  id    = 1
  vn_kv = 110
}
`
	_, err := LoadBytes(context.Background(), "bare.hcl", []byte(src))
	require.ErrorContains(t, err, "network block is required")
}

func TestLoadBytes_UnknownSwitchElementType(t *testing.T) {
	t.Parallel()

	src := `
network "n" {
  base_mva = 100
}

bus {
  id    = 1
  vn_kv = 110
}

switch {
  id      = 1
  bus     = 1
  element = 2
  et      = "x"
}
`
	_, err := LoadBytes(context.Background(), "sw.hcl", []byte(src))
	require.ErrorContains(t, err, "unknown element type")
}

func TestLoadBytes_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := LoadBytes(context.Background(), "broken.hcl", []byte(`bus {`))
	require.ErrorContains(t, err, "failed to parse")
}
