package assemble

import (
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// RefreshGens rewrites the operating-point values of existing generator rows
// from the network tables without touching topology. The generator lookups
// already point at the post-sort row layout, so this works on a case that
// went through ext->int conversion.
func RefreshGens(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) {
	if ppc.Gen == nil {
		return
	}

	if tbl, ok := lt.Gen[lookup.KindExtGrid]; ok {
		for _, eg := range net.ExtGrids {
			row, ok := tbl.Resolve(eg.ID)
			if !ok {
				continue
			}
			ppc.Gen.Set(row, mcase.Vg, eg.VmPU)
			busRow := int(ppc.Gen.At(row, mcase.GenBus))
			ppc.Bus.Set(busRow, mcase.Vm, eg.VmPU)
			ppc.Bus.Set(busRow, mcase.Va, eg.VaDegree)
		}
	}
	if tbl, ok := lt.Gen[lookup.KindGen]; ok {
		for _, g := range net.Gens {
			row, ok := tbl.Resolve(g.ID)
			if !ok {
				continue
			}
			ppc.Gen.Set(row, mcase.Pg, g.PMW*orDefault(g.Scaling, 1))
			ppc.Gen.Set(row, mcase.Vg, g.VmPU)
			busRow := int(ppc.Gen.At(row, mcase.GenBus))
			if ppc.Bus.At(busRow, mcase.BusType) == mcase.TypePV {
				ppc.Bus.Set(busRow, mcase.Vm, g.VmPU)
			}
		}
	}
	if tbl, ok := lt.Gen[lookup.KindSgen]; ok {
		for _, s := range net.Sgens {
			row, ok := tbl.Resolve(s.ID)
			if !ok {
				continue
			}
			scale := orDefault(s.Scaling, 1)
			ppc.Gen.Set(row, mcase.Pg, s.PMW*scale)
			ppc.Gen.Set(row, mcase.Qg, s.QMVar*scale)
		}
	}
	if tbl, ok := lt.Gen[lookup.KindLoad]; ok {
		for _, l := range net.Loads {
			row, ok := tbl.Resolve(l.ID)
			if !ok {
				continue
			}
			scale := orDefault(l.Scaling, 1)
			ppc.Gen.Set(row, mcase.Pg, -l.PMW*scale)
			ppc.Gen.Set(row, mcase.Qg, -l.QMVar*scale)
		}
	}
	if tbl, ok := lt.Gen[lookup.KindStorage]; ok {
		for _, s := range net.Storages {
			row, ok := tbl.Resolve(s.ID)
			if !ok {
				continue
			}
			scale := orDefault(s.Scaling, 1)
			ppc.Gen.Set(row, mcase.Pg, -s.PMW*scale)
			ppc.Gen.Set(row, mcase.Qg, -s.QMVar*scale)
		}
	}
}

// RefreshTrafoBranches recomputes the transformer-derived branch values of a
// retained case in place. Endpoint references are left alone: topology did
// not change, only parameters may have.
func RefreshTrafoBranches(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) {
	rng, ok := lt.Branch["trafo"]
	if !ok || rng.Len() == 0 {
		return
	}
	for i, t := range net.Trafos {
		r := rng.Start + i
		lvRow, ok := lt.Bus.Resolve(t.LVBus)
		if !ok {
			continue
		}
		hvRow, hOK := lt.Bus.Resolve(t.HVBus)
		if !hOK {
			continue
		}
		if t.SnMVA <= 0 {
			continue
		}

		vnHV, vnLV, shift := TapVoltages(t)
		vnLVBus := ppc.Bus.At(lvRow, mcase.BaseKV)
		vnHVBus := ppc.Bus.At(hvRow, mcase.BaseKV)
		ratio := NominalRatio(vnHV, vnLV, vnHVBus, vnLVBus)
		parallel := orDefault(t.Parallel, 1)
		tapLV := (vnLV / vnLVBus) * (vnLV / vnLVBus)

		zk := t.VkPct / 100 / t.SnMVA * tapLV * ppc.BaseMVA
		rk := t.VkrPct / 100 / t.SnMVA * tapLV * ppc.BaseMVA
		xk := copysignSqrt(zk, rk)

		ppc.Branch.Set(r, mcase.BrR, complex(rk/parallel, 0))
		ppc.Branch.Set(r, mcase.BrX, complex(xk/parallel, 0))
		ppc.Branch.Set(r, mcase.Tap, complex(ratio, 0))
		ppc.Branch.Set(r, mcase.Shift, complex(shift, 0))
	}
}
