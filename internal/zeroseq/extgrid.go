package zeroseq

import (
	"math"

	"github.com/vk/powergridgo/internal/assemble"
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// AddExtGridAdmittance places the zero-sequence grounding admittance of
// every in-service external grid on its bus. The short-circuit apparent
// power and R/X ratio of the selected case are mandatory inputs; a missing
// value is a configuration error, not a default.
func AddExtGridAdmittance(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) error {
	scCase := net.Options.SCCase
	if net.Options.Mode != network.ModeSC {
		scCase = network.SCMax
	}

	acc := newShuntAcc()
	for _, eg := range net.ExtGrids {
		row, ok := lt.Bus.Resolve(eg.Bus)
		if !eg.InService || !ok || !assemble.BusLive(ppc, row) {
			continue
		}

		var c float64
		switch {
		case net.Options.Mode == network.ModeSC && scCase == network.SCMax:
			c = ppc.Bus.At(row, mcase.CMax)
		case net.Options.Mode == network.ModeSC:
			c = ppc.Bus.At(row, mcase.CMin)
		default:
			// Unbalanced power flow uses the maximum-case factor throughout.
			c = 1.1
		}

		sSC, rx, x0x, r0x0, err := scParams(eg, scCase)
		if err != nil {
			return err
		}

		zGrid := c / sSC
		if net.Options.Mode == network.ModePF3Ph {
			// Three-phase power divided to get single-phase power.
			zGrid = c / (sSC / 3)
		}
		xGrid := zGrid / math.Sqrt(rx*rx+1)

		x0 := x0x * xGrid
		r0 := r0x0 * x0
		y0 := 1 / complex(r0, x0)
		acc.add(row, y0)
	}

	acc.applySet(ppc)
	return nil
}

// scParams extracts the case-dependent short-circuit parameters of an
// external grid, erroring on anything unspecified.
func scParams(eg network.ExtGrid, scCase network.SCCase) (sSC, rx, x0x, r0x0 float64, err error) {
	switch scCase {
	case network.SCMin:
		if eg.SScMinMVA == nil {
			return 0, 0, 0, 0, &network.ConfigError{Element: "ext_grid", ID: eg.ID, Field: "s_sc_min_mva"}
		}
		if eg.RXMin == nil {
			return 0, 0, 0, 0, &network.ConfigError{Element: "ext_grid", ID: eg.ID, Field: "rx_min"}
		}
		return *eg.SScMinMVA, *eg.RXMin, eg.X0XMin, eg.R0X0Min, nil
	default:
		if eg.SScMaxMVA == nil {
			return 0, 0, 0, 0, &network.ConfigError{Element: "ext_grid", ID: eg.ID, Field: "s_sc_max_mva"}
		}
		if eg.RXMax == nil {
			return 0, 0, 0, 0, &network.ConfigError{Element: "ext_grid", ID: eg.ID, Field: "rx_max"}
		}
		return *eg.SScMaxMVA, *eg.RXMax, eg.X0XMax, eg.R0X0Max, nil
	}
}
