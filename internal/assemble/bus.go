package assemble

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

const (
	defaultVMax = 1.1
	defaultVMin = 0.9
)

// BuildBuses fills the bus table of the external case and the bus lookup.
// Buses joined by closed bus-bus switches are fused onto the row of the
// first member encountered; the fused row is in service if any member is.
// Short-circuit and unbalanced modes get the extended table with voltage
// correction factor columns.
func BuildBuses(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) error {
	if len(net.Buses) == 0 {
		return fmt.Errorf("network %q has no buses", net.Name)
	}

	rep := fuseBuses(net)

	maxID := net.MaxBusID()
	lt.Bus = lookup.NewTable(maxID)

	cols := mcase.BusCols
	if net.Options.Mode == network.ModeSC || net.Options.Mode == network.ModePF3Ph {
		cols = mcase.BusColsSC
	}

	// First pass: assign one row per fusion-class representative, in network
	// table order.
	rowOf := make(map[int]int)
	rows := 0
	for _, b := range net.Buses {
		r := rep(b.ID)
		if _, ok := rowOf[r]; !ok {
			rowOf[r] = rows
			rows++
		}
	}

	bus := mat.NewDense(rows, cols, nil)
	seen := make(map[int]bool)
	for _, b := range net.Buses {
		r := rowOf[rep(b.ID)]
		lt.Bus.Set(b.ID, r)

		if !seen[r] {
			seen[r] = true
			row := bus.RawRowView(r)
			row[mcase.BusI] = float64(r)
			row[mcase.BusType] = mcase.TypePQ
			if !b.InService {
				row[mcase.BusType] = mcase.TypeNone
			}
			row[mcase.Vm] = 1
			row[mcase.BaseKV] = b.VnKV
			row[mcase.Zone] = float64(b.Zone)
			row[mcase.VMax] = orDefault(b.MaxVmPU, defaultVMax)
			row[mcase.VMin] = orDefault(b.MinVmPU, defaultVMin)
			if cols == mcase.BusColsSC {
				cmax, cmin := voltageFactors(b.VnKV)
				row[mcase.CMax] = cmax
				row[mcase.CMin] = cmin
			}
			continue
		}
		// Later members of a fusion class only contribute their status: a
		// closed coupler to a live bus keeps the whole class live.
		if b.InService {
			bus.Set(r, mcase.BusType, mcase.TypePQ)
		}
	}

	ppc.Bus = bus
	return nil
}

// fuseBuses returns a representative function over bus ids under the
// closed bus-bus switches, via union-find.
func fuseBuses(net *network.Net) func(int) int {
	parent := make(map[int]int)
	var find func(int) int
	find = func(id int) int {
		p, ok := parent[id]
		if !ok || p == id {
			return id
		}
		root := find(p)
		parent[id] = root
		return root
	}
	for _, sw := range net.Switches {
		if sw.ElementType != network.SwitchBus || !sw.Closed {
			continue
		}
		a, b := find(sw.Bus), find(sw.Element)
		if a != b {
			parent[b] = a
		}
	}
	return find
}

// voltageFactors returns the IEC 60909 voltage correction factors for a
// voltage level: low-voltage grids below 1 kV use tighter factors.
func voltageFactors(vnKV float64) (cmax, cmin float64) {
	if vnKV <= 1 {
		return 1.05, 0.95
	}
	return 1.1, 1.0
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// AuxBus appends one out-of-service auxiliary bus copying the voltage level
// of the given row and returns the new row index. Auxiliary buses carry no
// network identifier and never appear in the bus lookup.
func AuxBus(ppc *mcase.Case, fromRow int) int {
	r := ppc.AppendBusRows(1)
	_, cols := ppc.Bus.Dims()
	row := ppc.Bus.RawRowView(r)
	row[mcase.BusI] = float64(r)
	row[mcase.BusType] = mcase.TypeNone
	row[mcase.Vm] = 1
	row[mcase.BaseKV] = ppc.Bus.At(fromRow, mcase.BaseKV)
	row[mcase.VMax] = ppc.Bus.At(fromRow, mcase.VMax)
	row[mcase.VMin] = ppc.Bus.At(fromRow, mcase.VMin)
	if cols >= mcase.BusColsSC {
		row[mcase.CMax] = ppc.Bus.At(fromRow, mcase.CMax)
		row[mcase.CMin] = ppc.Bus.At(fromRow, mcase.CMin)
	}
	return r
}

// BusLive reports whether the bus row is part of the live network.
func BusLive(ppc *mcase.Case, row int) bool {
	return ppc.Bus.At(row, mcase.BusType) != mcase.TypeNone
}
