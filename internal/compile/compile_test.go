package compile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// radialNet is a three-bus feeder: ext grid on bus 1, a line to bus 2 with a
// load, and bus 3 connected only when withTail is set.
func radialNet(withTail bool) *network.Net {
	net := network.New("radial", 100)
	net.Buses = []network.Bus{
		{ID: 1, VnKV: 110, InService: true},
		{ID: 2, VnKV: 110, InService: true},
		{ID: 3, VnKV: 110, InService: true},
	}
	net.Lines = []network.Line{{
		ID: 1, FromBus: 1, ToBus: 2, LengthKm: 5,
		ROhmPerKm: 0.1, XOhmPerKm: 0.4, Parallel: 1, InService: true,
	}}
	if withTail {
		net.Lines = append(net.Lines, network.Line{
			ID: 2, FromBus: 2, ToBus: 3, LengthKm: 5,
			ROhmPerKm: 0.1, XOhmPerKm: 0.4, Parallel: 1, InService: true,
		})
	}
	net.ExtGrids = []network.ExtGrid{{ID: 1, Bus: 1, VmPU: 1.02, InService: true}}
	net.Loads = []network.Load{{ID: 1, Bus: 2, PMW: 5, QMVar: 1, Scaling: 1, InService: true}}
	return net
}

func TestCompile_ConnectedNetwork(t *testing.T) {
	t.Parallel()

	net := radialNet(true)

	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	assert.Equal(t, 3, result.External.NumBus())
	assert.Equal(t, 3, result.Internal.NumBus())
	assert.Equal(t, 2, result.Internal.NumBranch())
	assert.Equal(t, 1, result.Internal.NumGen())
	assert.Equal(t, mcase.PositiveSeq, result.Internal.Sequence)
	assert.Equal(t, 100.0, result.Internal.BaseMVA)
}

func TestCompile_IsolatedBusIsDropped(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Bus 3 has no branch path to the reference bus.
	net := radialNet(false)
	net.Options.CheckConnectivity = true

	// --- Act ---
	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	// --- Assert ---
	assert.Equal(t, 3, result.External.NumBus(), "the external case keeps every row")
	assert.Equal(t, 2, result.Internal.NumBus())

	_, ok := result.Lookups.Bus.Resolve(3)
	assert.False(t, ok, "the isolated bus must no longer resolve")

	row1, ok := result.Lookups.Bus.Resolve(1)
	require.True(t, ok)
	row2, ok := result.Lookups.Bus.Resolve(2)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1}, []int{row1, row2}, "surviving buses form a dense range")
}

func TestCompile_GenOnIsolatedBusIsMaskedOut(t *testing.T) {
	t.Parallel()

	net := radialNet(false)
	net.Options.CheckConnectivity = true
	net.Gens = []network.Gen{{ID: 1, Bus: 3, PMW: 10, VmPU: 1, Scaling: 1, InService: true}}

	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	// The generator row exists externally but its host bus was isolated.
	require.Equal(t, 2, result.External.NumGen())
	assert.Equal(t, 1, result.Internal.NumGen())

	found := false
	for _, is := range result.External.Internal.GenIs {
		if !is {
			found = true
		}
	}
	assert.True(t, found, "exactly the dead-bus generator row is masked out")
}

func TestCompile_FailedCompileReturnsNoResult(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	net.Trafos3W = []network.Trafo3W{{ID: 1}}

	result, err := Compile(context.Background(), net)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestCompile_RunsHooks(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	hookRan := false
	hook := func(ppci *mcase.Case, lt *lookup.Tables) (*mcase.Case, error) {
		hookRan = true
		require.NotNil(t, lt)
		return ppci, nil
	}

	_, err := Compile(context.Background(), net, hook)

	require.NoError(t, err)
	assert.True(t, hookRan)

	failing := func(ppci *mcase.Case, lt *lookup.Tables) (*mcase.Case, error) {
		return nil, errors.New("objective assembly failed")
	}
	_, err = Compile(context.Background(), net, failing)
	require.ErrorContains(t, err, "objective assembly failed")
}

func TestCompile_ZeroSequence(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A Dyn transformer blocks zero-sequence flow across itself and grounds
	// the low-voltage bus; the ext grid grounds the high-voltage bus.
	sMax, rxMax := 1000.0, 0.1
	net := network.New("zseq", 100)
	net.Options.Sequence = mcase.ZeroSeq
	net.Buses = []network.Bus{
		{ID: 1, VnKV: 110, InService: true},
		{ID: 2, VnKV: 20, InService: true},
	}
	net.Trafos = []network.Trafo{{
		ID: 1, HVBus: 1, LVBus: 2, SnMVA: 40,
		VnHVKV: 110, VnLVKV: 20, VkPct: 10, VkrPct: 0.5,
		Vk0Pct: 10, Vkr0Pct: 0.5, Mag0Pct: 10, Mag0RX: 0,
		Si0HVPartial: 0.5, VectorGroup: "Dyn",
		TapSide: "hv", Parallel: 1, InService: true,
	}}
	net.ExtGrids = []network.ExtGrid{{
		ID: 1, Bus: 1, VmPU: 1, InService: true,
		SScMaxMVA: &sMax, RXMax: &rxMax, X0XMax: 1, R0X0Max: 0.1,
	}}

	// --- Act ---
	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	// --- Assert ---
	assert.Equal(t, mcase.ZeroSeq, result.Internal.Sequence)

	ext := result.External
	row1, _ := result.Lookups.Bus.Resolve(1)
	assert.NotZero(t, ext.Bus.At(row1, mcase.Gs), "ext grid grounding admittance on its bus")
	assert.NotZero(t, ext.Bus.At(row1, mcase.Bs))

	// The blocked-through transformer leaves no in-service branch, so the
	// low-voltage bus drops out of the internal case.
	assert.Equal(t, 0, result.Internal.NumBranch())
	assert.Equal(t, 1, result.Internal.NumBus())
	_, ok := result.Lookups.Bus.Resolve(2)
	assert.False(t, ok)
}

func TestCompile_OPFAttachesGenCostTable(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	net.Options.Mode = network.ModeOPF
	net.Sgens = []network.Sgen{
		{ID: 1, Bus: 2, PMW: 2, Scaling: 1, Controllable: true, InService: true},
	}

	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	require.NotNil(t, result.Internal.GenCost)
	r, c := result.Internal.GenCost.Dims()
	assert.Equal(t, result.Internal.NumGen(), r, "one cost row per generator row")
	assert.Equal(t, mcase.GenCostCols, c)
	assert.Equal(t, 2, result.Internal.NumGen(), "the controllable injection became a generator row")
}

func TestExtToInt_RenumbersDenseAndRemapsReferences(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Middle bus out of service: its row must move to the tail and every
	// branch/gen bus reference must follow the renumbering.
	net := radialNet(true)
	net.Buses[1].InService = false

	// --- Act ---
	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	// --- Assert ---
	ext := result.External
	for i := 0; i < ext.NumBus(); i++ {
		assert.Equal(t, float64(i), ext.Bus.At(i, mcase.BusI), "bus identifiers are dense row indices")
	}
	// Live rows first, the dead row at the tail.
	assert.NotEqual(t, float64(mcase.TypeNone), ext.Bus.At(0, mcase.BusType))
	assert.NotEqual(t, float64(mcase.TypeNone), ext.Bus.At(1, mcase.BusType))
	assert.Equal(t, float64(mcase.TypeNone), ext.Bus.At(2, mcase.BusType))

	// Every branch endpoint reference stays inside the bus table.
	for i := 0; i < ext.NumBranch(); i++ {
		f := int(real(ext.Branch.At(i, mcase.FBus)))
		tb := int(real(ext.Branch.At(i, mcase.TBus)))
		assert.Less(t, f, ext.NumBus())
		assert.Less(t, tb, ext.NumBus())
	}
	for i := 0; i < ext.NumGen(); i++ {
		assert.Less(t, int(ext.Gen.At(i, mcase.GenBus)), ext.NumBus())
	}
}

func TestExtToInt_SortsGensByHostBus(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The ext grid sits on the second bus row, the generator on the first:
	// assembly order and host-bus order disagree.
	net := network.New("sorted", 100)
	net.Buses = []network.Bus{
		{ID: 1, VnKV: 110, InService: true},
		{ID: 2, VnKV: 110, InService: true},
	}
	net.Lines = []network.Line{{
		ID: 1, FromBus: 1, ToBus: 2, LengthKm: 5,
		ROhmPerKm: 0.1, XOhmPerKm: 0.4, Parallel: 1, InService: true,
	}}
	net.ExtGrids = []network.ExtGrid{{ID: 1, Bus: 2, VmPU: 1, InService: true}}
	net.Gens = []network.Gen{{ID: 1, Bus: 1, PMW: 10, VmPU: 1, Scaling: 1, InService: true}}

	// --- Act ---
	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	// --- Assert ---
	gen := result.External.Gen
	require.Equal(t, 2, result.External.NumGen())
	assert.LessOrEqual(t, gen.At(0, mcase.GenBus), gen.At(1, mcase.GenBus), "rows ascend by host bus")

	genRow, ok := result.Lookups.Gen[lookup.KindGen].Resolve(1)
	require.True(t, ok)
	egRow, ok := result.Lookups.Gen[lookup.KindExtGrid].Resolve(1)
	require.True(t, ok)
	assert.Equal(t, 0, genRow, "the generator lookup follows the sort")
	assert.Equal(t, 1, egRow)
}

func TestExtToInt_BranchMasksMatchInternalRows(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	net.Lines[1].InService = false

	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	branchIs := result.External.Internal.BranchIs
	require.Len(t, branchIs, 2)
	kept := 0
	for _, is := range branchIs {
		if is {
			kept++
		}
	}
	assert.Equal(t, kept, result.Internal.NumBranch(), "the mask and the internal table agree")
}

func TestExtToInt_BranchInclusionTable(t *testing.T) {
	t.Parallel()

	// A branch survives iff its status is positive and both endpoints are
	// live; every combination of status sign and endpoint liveness says so.
	busType := func(live bool) float64 {
		if live {
			return mcase.TypePQ
		}
		return mcase.TypeNone
	}

	for _, status := range []float64{1, 0, -1} {
		for _, fromLive := range []bool{true, false} {
			for _, toLive := range []bool{true, false} {
				status, fromLive, toLive := status, fromLive, toLive
				name := fmt.Sprintf("status=%g/from=%t/to=%t", status, fromLive, toLive)
				t.Run(name, func(t *testing.T) {
					t.Parallel()

					// --- Arrange ---
					ppc := mcase.New(100, mcase.PositiveSeq)
					ppc.Bus = mat.NewDense(2, mcase.BusCols, nil)
					ppc.Bus.Set(0, mcase.BusI, 0)
					ppc.Bus.Set(0, mcase.BusType, busType(fromLive))
					ppc.Bus.Set(1, mcase.BusI, 1)
					ppc.Bus.Set(1, mcase.BusType, busType(toLive))
					ppc.Branch = mat.NewCDense(1, mcase.BranchCols, nil)
					ppc.Branch.Set(0, mcase.FBus, 0)
					ppc.Branch.Set(0, mcase.TBus, 1)
					ppc.Branch.Set(0, mcase.BrStatus, complex(status, 0))
					lt := lookup.NewTables()
					lt.Bus = lookup.NewTable(1)
					lt.Bus.Set(0, 0)
					lt.Bus.Set(1, 1)

					// --- Act ---
					ppci := ExtToInt(ppc, lt)

					// --- Assert ---
					want := status > 0 && fromLive && toLive
					require.Len(t, ppc.Internal.BranchIs, 1)
					assert.Equal(t, want, ppc.Internal.BranchIs[0])
					wantRows := 0
					if want {
						wantRows = 1
					}
					assert.Equal(t, wantRows, ppci.NumBranch())
				})
			}
		}
	}
}

func TestCompile_OpenLineSwitchDropsBranch(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	net.Switches = []network.Switch{
		{ID: 1, Bus: 3, Element: 2, ElementType: network.SwitchLine, Closed: false},
	}

	result, err := Compile(context.Background(), net)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Internal.NumBranch(), "the switched-off line leaves the internal case")
	assert.Equal(t, 2, result.External.NumBranch(), "its external row survives for result mapping")
}

func TestUpdate_RefreshesInjectionsWithoutRenumbering(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	net := radialNet(true)
	first, err := Compile(context.Background(), net)
	require.NoError(t, err)
	row2, ok := first.Lookups.Bus.Resolve(2)
	require.True(t, ok)

	// Operating point change only.
	net.Loads[0].PMW = 8

	// --- Act ---
	second, err := Update(context.Background(), net, first)
	require.NoError(t, err)

	// --- Assert ---
	assert.InEpsilon(t, 8.0, second.External.Bus.At(row2, mcase.Pd), 1e-12)
	assert.InEpsilon(t, 8.0, second.Internal.Bus.At(row2, mcase.Pd), 1e-12)
	assert.Equal(t, first.Internal.NumBus(), second.Internal.NumBus())
	assert.Equal(t, first.Internal.NumBranch(), second.Internal.NumBranch())
	assert.Same(t, first.Lookups, second.Lookups, "lookups carry over unchanged")
}

func TestUpdate_DroppedLoadClearsItsBusInjection(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	net := radialNet(true)
	first, err := Compile(context.Background(), net)
	require.NoError(t, err)
	row2, ok := first.Lookups.Bus.Resolve(2)
	require.True(t, ok)
	require.InEpsilon(t, 5.0, first.External.Bus.At(row2, mcase.Pd), 1e-12)

	// The only load on bus 2 drops out of service.
	net.Loads[0].InService = false

	// --- Act ---
	second, err := Update(context.Background(), net, first)
	require.NoError(t, err)

	// --- Assert ---
	assert.Zero(t, second.External.Bus.At(row2, mcase.Pd), "the stale demand must not survive the refresh")
	assert.Zero(t, second.External.Bus.At(row2, mcase.Qd))
	assert.Zero(t, second.Internal.Bus.At(row2, mcase.Pd))
}

func TestUpdate_RefreshesGenSetpoints(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	net.Gens = []network.Gen{{ID: 1, Bus: 2, PMW: 10, VmPU: 1.0, Scaling: 1, InService: true}}
	first, err := Compile(context.Background(), net)
	require.NoError(t, err)

	net.Gens[0].PMW = 15
	net.Gens[0].VmPU = 1.03

	second, err := Update(context.Background(), net, first)
	require.NoError(t, err)

	row, ok := second.Lookups.Gen[lookup.KindGen].Resolve(1)
	require.True(t, ok)
	assert.InEpsilon(t, 15.0, second.External.Gen.At(row, mcase.Pg), 1e-12)
	assert.InEpsilon(t, 1.03, second.External.Gen.At(row, mcase.Vg), 1e-12)
}

func TestUpdate_RequiresPreviousMasks(t *testing.T) {
	t.Parallel()

	net := radialNet(true)
	prev := &Result{External: mcase.New(100, mcase.PositiveSeq), Lookups: lookup.NewTables()}

	_, err := Update(context.Background(), net, prev)

	require.ErrorContains(t, err, "previous full compile")
}
