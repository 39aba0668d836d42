package zeroseq

import (
	"context"

	"github.com/vk/powergridgo/internal/assemble"
	"github.com/vk/powergridgo/internal/ctxlog"
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// BuildBranches fills the branch table of a zero-sequence case: line rows
// first, then transformer rows. Three-winding transformers have no
// zero-sequence model and are rejected outright.
func BuildBranches(ctx context.Context, net *network.Net, ppc *mcase.Case, lt *lookup.Tables) (*assemble.BranchIndex, error) {
	logger := ctxlog.FromContext(ctx)

	if len(net.Trafos3W) > 0 {
		return nil, ErrThreeWinding
	}

	nl, nt := len(net.Lines), len(net.Trafos)
	ppc.Branch = assemble.NewBranchTable(nl + nt)
	lt.Branch["line"] = lookup.Range{Start: 0, End: nl}
	lt.Branch["trafo"] = lookup.Range{Start: nl, End: nl + nt}

	idx := &assemble.BranchIndex{Line: make(map[int]int), Trafo: make(map[int]int)}
	for i, line := range net.Lines {
		idx.Line[line.ID] = i
	}
	for i, t := range net.Trafos {
		idx.Trafo[t.ID] = nl + i
	}

	addLineImpedances(net, ppc, lt, idx)
	if err := addTrafoImpedances(net, ppc, lt, idx); err != nil {
		return nil, err
	}

	logger.Debug("Zero-sequence branch table synthesized.", "lines", nl, "trafos", nt)
	return idx, nil
}
