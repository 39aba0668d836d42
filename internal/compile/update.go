package compile

import (
	"context"
	"fmt"

	"github.com/vk/powergridgo/internal/assemble"
	"github.com/vk/powergridgo/internal/ctxlog"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// Update is the fast path for repeated solves where only operating-point
// quantities changed: it refreshes P/Q injections, shunt totals and
// generator values on the retained external case, then re-slices the
// internal case using the masks stored by the previous full compile. Bus
// renumbering is never re-run here; topology changes require Compile.
func Update(ctx context.Context, net *network.Net, prev *Result) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	ppc, lt := prev.External, prev.Lookups
	if ppc.Internal.BranchIs == nil || ppc.Internal.GenIs == nil {
		return nil, fmt.Errorf("update requires the masks of a previous full compile")
	}

	assemble.AddPQInjections(net, ppc, lt)
	assemble.AddShunts(net, ppc, lt)
	assemble.RefreshGens(net, ppc, lt)

	if !net.Options.Recycle.YBus {
		// Admittance structure is being rebuilt anyway, so transformer
		// parameter changes may flow into the branch rows.
		assemble.RefreshTrafoBranches(net, ppc, lt)
	}

	nLive := 0
	for i := 0; i < ppc.NumBus(); i++ {
		if ppc.Bus.At(i, mcase.BusType) != mcase.TypeNone {
			nLive++
		}
	}

	ppci := mcase.New(ppc.BaseMVA, ppc.Sequence)
	ppci.Bus = mcase.HeadRows(ppc.Bus, nLive)
	ppci.Branch = mcase.FilterCRows(ppc.Branch, ppc.Internal.BranchIs)
	ppci.Gen = mcase.FilterRows(ppc.Gen, ppc.Internal.GenIs)
	ppci.GenCost = ppc.GenCost
	ppci.Internal.BranchIs = append([]bool(nil), ppc.Internal.BranchIs...)
	ppci.Internal.GenIs = append([]bool(nil), ppc.Internal.GenIs...)
	if ppc.DCLine != nil {
		ppci.DCLine = mcase.CloneDense(ppc.DCLine)
	}

	logger.Debug("Incremental update complete.", "buses_int", ppci.NumBus())
	return &Result{External: ppc, Internal: ppci, Lookups: lt}, nil
}
