package compile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/vk/powergridgo/internal/assemble"
	"github.com/vk/powergridgo/internal/ctxlog"
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
	"github.com/vk/powergridgo/internal/topo"
	"github.com/vk/powergridgo/internal/zeroseq"
)

// Hook is a post-conversion callback invoked with the freshly compiled
// internal case. Its return value, possibly a mutated or replaced case,
// becomes the new internal case. The OPF objective assembler registers
// itself this way.
type Hook func(ppci *mcase.Case, lt *lookup.Tables) (*mcase.Case, error)

// Result is one compiled case pair plus the lookup tables that translate
// solver output back to network-element identifiers.
type Result struct {
	External *mcase.Case
	Internal *mcase.Case
	Lookups  *lookup.Tables
}

// Compile runs the full network-to-solver-matrix pass: element assembly,
// zero-sequence synthesis when the options ask for sequence zero,
// connectivity handling, and ext->int conversion. A failed compile returns
// no partial result; any previously compiled case is untouched.
func Compile(ctx context.Context, net *network.Net, hooks ...Hook) (*Result, error) {
	ctx = ctxlog.With(ctx, "compile_id", uuid.NewString(), "network", net.Name)
	logger := ctxlog.FromContext(ctx)

	opts := net.Options
	sequence := mcase.PositiveSeq
	if opts.Sequence == mcase.ZeroSeq {
		sequence = mcase.ZeroSeq
	}

	ppc := mcase.New(net.BaseMVA, sequence)
	lt := lookup.NewTables()

	if err := assemble.BuildBuses(net, ppc, lt); err != nil {
		return nil, fmt.Errorf("bus assembly: %w", err)
	}
	assemble.BuildGens(net, ppc, lt)

	var idx *assemble.BranchIndex
	var err error
	if sequence == mcase.ZeroSeq {
		if err = zeroseq.AddExtGridAdmittance(net, ppc, lt); err != nil {
			return nil, fmt.Errorf("external grid zero-sequence admittance: %w", err)
		}
		idx, err = zeroseq.BuildBranches(ctx, net, ppc, lt)
	} else {
		idx, err = assemble.BuildBranches(net, ppc, lt)
	}
	if err != nil {
		return nil, fmt.Errorf("branch assembly: %w", err)
	}

	// Short circuit works on impedances only; the other modes carry the
	// operating point.
	if opts.Mode != network.ModeSC {
		assemble.AddPQInjections(net, ppc, lt)
		assemble.AddShunts(net, ppc, lt)
	}

	assemble.ApplySwitches(net, ppc, lt, idx)
	assemble.RedirectOOSBusBranches(net, ppc, idx)

	if opts.CheckConnectivity {
		isolated := topo.IsolateUnreachable(ppc)
		if len(isolated) > 0 {
			logger.Debug("Connectivity check isolated buses.", "count", len(isolated))
		}
	} else {
		topo.IsolateDisconnected(ppc)
	}

	ppci := ExtToInt(ppc, lt)

	// Optimal power flow gets an empty cost table for the objective hook to
	// fill.
	if opts.Mode == network.ModeOPF && ppci.GenCost == nil && ppci.NumGen() > 0 {
		ppci.GenCost = mat.NewDense(ppci.NumGen(), mcase.GenCostCols, nil)
	}

	for _, hook := range hooks {
		ppci, err = hook(ppci, lt)
		if err != nil {
			return nil, fmt.Errorf("post-conversion hook: %w", err)
		}
	}

	logger.Info("Compile complete.",
		"buses_ext", ppc.NumBus(), "buses_int", ppci.NumBus(),
		"branches_int", ppci.NumBranch(), "gens_int", ppci.NumGen())

	return &Result{External: ppc, Internal: ppci, Lookups: lt}, nil
}
