package assemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// unlimited is the rating used when a generator carries no explicit limit.
const unlimited = 1e9

// BuildGens fills the generator table with one row per in-service
// generator-like element, in the strict block order ext grid, generator,
// controllable static generator, controllable load, controllable storage.
// Reference and voltage-controlled bus types are tagged on the bus table as
// a side effect.
func BuildGens(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) {
	opf := net.Options.Mode == network.ModeOPF
	var rows [][]float64

	addRow := func() []float64 {
		row := make([]float64, mcase.GenCols)
		rows = append(rows, row)
		return row
	}

	var egIDs []int
	for _, eg := range net.ExtGrids {
		busRow, ok := lt.Bus.Resolve(eg.Bus)
		if !eg.InService || !ok || !BusLive(ppc, busRow) {
			continue
		}
		egIDs = append(egIDs, eg.ID)
		row := addRow()
		row[mcase.GenBus] = float64(busRow)
		row[mcase.QMax] = unlimited
		row[mcase.QMin] = -unlimited
		row[mcase.Vg] = eg.VmPU
		row[mcase.MBase] = ppc.BaseMVA
		row[mcase.GenStatus] = 1
		row[mcase.PMax] = unlimited
		row[mcase.PMin] = -unlimited

		ppc.Bus.Set(busRow, mcase.BusType, mcase.TypeRef)
		ppc.Bus.Set(busRow, mcase.Vm, eg.VmPU)
		ppc.Bus.Set(busRow, mcase.Va, eg.VaDegree)
	}
	lt.SetGenOrder(lookup.KindExtGrid, egIDs)

	var genIDs []int
	for _, g := range net.Gens {
		busRow, ok := lt.Bus.Resolve(g.Bus)
		if !g.InService || !ok || !BusLive(ppc, busRow) {
			continue
		}
		genIDs = append(genIDs, g.ID)
		row := addRow()
		row[mcase.GenBus] = float64(busRow)
		row[mcase.Pg] = g.PMW * orDefault(g.Scaling, 1)
		row[mcase.QMax] = orDefault(g.MaxQMVar, unlimited)
		row[mcase.QMin] = orDefaultNeg(g.MinQMVar, -unlimited)
		row[mcase.Vg] = g.VmPU
		row[mcase.MBase] = orDefault(g.SnMVA, ppc.BaseMVA)
		row[mcase.GenStatus] = 1
		row[mcase.PMax] = orDefault(g.MaxPMW, unlimited)
		row[mcase.PMin] = orDefaultNeg(g.MinPMW, -unlimited)

		// A reference bus keeps its type even when a generator also lands on it.
		if ppc.Bus.At(busRow, mcase.BusType) != mcase.TypeRef {
			ppc.Bus.Set(busRow, mcase.BusType, mcase.TypePV)
			ppc.Bus.Set(busRow, mcase.Vm, g.VmPU)
		}
	}
	lt.SetGenOrder(lookup.KindGen, genIDs)

	// Controllable injections join the generator table only for OPF; in the
	// other modes they stay plain P/Q injections on their bus.
	var sgenIDs, loadIDs, storageIDs []int
	if opf {
		for _, s := range net.Sgens {
			busRow, ok := lt.Bus.Resolve(s.Bus)
			if !s.Controllable || !s.InService || !ok || !BusLive(ppc, busRow) {
				continue
			}
			sgenIDs = append(sgenIDs, s.ID)
			row := addRow()
			scale := orDefault(s.Scaling, 1)
			row[mcase.GenBus] = float64(busRow)
			row[mcase.Pg] = s.PMW * scale
			row[mcase.Qg] = s.QMVar * scale
			row[mcase.QMax] = unlimited
			row[mcase.QMin] = -unlimited
			row[mcase.MBase] = orDefault(s.SnMVA, ppc.BaseMVA)
			row[mcase.GenStatus] = 1
			row[mcase.PMax] = unlimited
		}
		for _, l := range net.Loads {
			busRow, ok := lt.Bus.Resolve(l.Bus)
			if !l.Controllable || !l.InService || !ok || !BusLive(ppc, busRow) {
				continue
			}
			loadIDs = append(loadIDs, l.ID)
			row := addRow()
			scale := orDefault(l.Scaling, 1)
			row[mcase.GenBus] = float64(busRow)
			row[mcase.Pg] = -l.PMW * scale
			row[mcase.Qg] = -l.QMVar * scale
			row[mcase.QMax] = unlimited
			row[mcase.QMin] = -unlimited
			row[mcase.MBase] = ppc.BaseMVA
			row[mcase.GenStatus] = 1
			row[mcase.PMin] = -unlimited
		}
		for _, s := range net.Storages {
			busRow, ok := lt.Bus.Resolve(s.Bus)
			if !s.Controllable || !s.InService || !ok || !BusLive(ppc, busRow) {
				continue
			}
			storageIDs = append(storageIDs, s.ID)
			row := addRow()
			scale := orDefault(s.Scaling, 1)
			row[mcase.GenBus] = float64(busRow)
			row[mcase.Pg] = -s.PMW * scale
			row[mcase.Qg] = -s.QMVar * scale
			row[mcase.QMax] = unlimited
			row[mcase.QMin] = -unlimited
			row[mcase.MBase] = ppc.BaseMVA
			row[mcase.GenStatus] = 1
			row[mcase.PMax] = unlimited
			row[mcase.PMin] = -unlimited
		}
	}
	lt.SetGenOrder(lookup.KindSgen, sgenIDs)
	lt.SetGenOrder(lookup.KindLoad, loadIDs)
	lt.SetGenOrder(lookup.KindStorage, storageIDs)

	if len(rows) == 0 {
		return
	}
	gen := mat.NewDense(len(rows), mcase.GenCols, nil)
	for i, row := range rows {
		gen.SetRow(i, row)
	}
	ppc.Gen = gen

	// Initial id->row tables, before the renumbering engine sorts the rows.
	offset := 0
	for _, kind := range lookup.GenKindOrder {
		ids := lt.GenOrder(kind)
		if len(ids) == 0 {
			continue
		}
		tbl := lookup.NewTable(maxOf(ids))
		for i, id := range ids {
			tbl.Set(id, offset+i)
		}
		lt.Gen[kind] = tbl
		offset += len(ids)
	}
}

func maxOf(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max
}

func orDefaultNeg(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
