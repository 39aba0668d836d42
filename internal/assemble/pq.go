package assemble

import (
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// AddPQInjections writes the summed P/Q demand of loads, static generators
// and storage units onto their bus rows. Every element touches its bus, but
// only in-service elements contribute: a bus whose last element dropped out
// of service is re-assigned a fresh zero sum, so the function is safe to
// re-run on a retained case.
//
// Under OPF, controllable elements are represented as generator rows instead
// and contribute nothing here.
func AddPQInjections(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) {
	opf := net.Options.Mode == network.ModeOPF
	type pq struct{ p, q float64 }
	sums := make(map[int]pq)

	add := func(busID int, active bool, p, q float64) {
		row, ok := lt.Bus.Resolve(busID)
		if !ok || !BusLive(ppc, row) {
			return
		}
		s := sums[row]
		if active {
			s.p += p
			s.q += q
		}
		sums[row] = s
	}

	for _, l := range net.Loads {
		scale := orDefault(l.Scaling, 1)
		add(l.Bus, l.InService && !(opf && l.Controllable), l.PMW*scale, l.QMVar*scale)
	}
	for _, s := range net.Sgens {
		scale := orDefault(s.Scaling, 1)
		add(s.Bus, s.InService && !(opf && s.Controllable), -s.PMW*scale, -s.QMVar*scale)
	}
	for _, s := range net.Storages {
		scale := orDefault(s.Scaling, 1)
		add(s.Bus, s.InService && !(opf && s.Controllable), s.PMW*scale, s.QMVar*scale)
	}

	for row, s := range sums {
		ppc.Bus.Set(row, mcase.Pd, s.p)
		ppc.Bus.Set(row, mcase.Qd, s.q)
	}
}

// AddShunts writes the summed shunt admittance of shunt elements onto their
// bus rows, with the same touch-every-bus semantics as AddPQInjections: an
// out-of-service shunt still resets its bus to the remaining sum.
func AddShunts(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) {
	type gb struct{ g, b float64 }
	sums := make(map[int]gb)

	for _, sh := range net.Shunts {
		row, ok := lt.Bus.Resolve(sh.Bus)
		if !ok || !BusLive(ppc, row) {
			continue
		}
		s := sums[row]
		if sh.InService {
			step := float64(sh.Step)
			if sh.Step == 0 {
				step = 1
			}
			s.g += sh.PMW * step
			s.b -= sh.QMVar * step
		}
		sums[row] = s
	}

	for row, s := range sums {
		ppc.Bus.Set(row, mcase.Gs, s.g)
		ppc.Bus.Set(row, mcase.Bs, s.b)
	}
}
