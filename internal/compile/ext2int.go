package compile

import (
	"fmt"
	"sort"

	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
)

// ExtToInt compiles the internal case from the external one. The external
// case is reordered in place: in-service buses first, renumbered to dense
// consecutive indices, generators sorted by host bus; every lookup table is
// remapped to stay consistent at each step. The internal case receives only
// in-service buses, branches and generators, built into fresh storage.
func ExtToInt(ppc *mcase.Case, lt *lookup.Tables) *mcase.Case {
	nBus := ppc.NumBus()

	// Partition: live buses keep their relative order up front, isolated
	// buses move to the tail.
	var live, dead []int
	for i := 0; i < nBus; i++ {
		if ppc.Bus.At(i, mcase.BusType) == mcase.TypeNone {
			dead = append(dead, i)
		} else {
			live = append(live, i)
		}
	}
	perm := append(append([]int{}, live...), dead...)
	ppc.Bus = mcase.PermuteRows(ppc.Bus, perm)

	// Old identifier -> new dense row, covering every identifier by
	// construction. A reference outside this range is a defect.
	e2i := make([]int, nBus)
	for newRow := 0; newRow < nBus; newRow++ {
		former := int(ppc.Bus.At(newRow, mcase.BusI))
		e2i[former] = newRow
	}
	for i := 0; i < nBus; i++ {
		ppc.Bus.Set(i, mcase.BusI, float64(i))
	}

	// Propagate the renumbering through every bus-referencing field in one
	// index-remap pass per column.
	remapGenBuses(ppc, e2i)
	remapBranchBuses(ppc, e2i)
	remapAreaBuses(ppc, e2i)

	lt.Bus.Remap(e2i)
	// Identifiers that landed in the dropped tail no longer resolve.
	nLive := len(live)
	for id, row := range lt.Bus {
		if row >= nLive {
			lt.Bus[id] = lookup.NotPresent
		}
	}

	if ppc.Areas != nil {
		if r, _ := ppc.Areas.Dims(); r == 0 {
			ppc.Areas = nil
		}
	}

	// Generators in ascending host-bus order. The sort is stable so equal
	// buses keep their subtype block order.
	nGen := ppc.NumGen()
	sortGens := make([]int, nGen)
	for i := range sortGens {
		sortGens[i] = i
	}
	sort.SliceStable(sortGens, func(a, b int) bool {
		return ppc.Gen.At(sortGens[a], mcase.GenBus) < ppc.Gen.At(sortGens[b], mcase.GenBus)
	})
	newPos := make([]int, nGen)
	for newRow, old := range sortGens {
		newPos[old] = newRow
	}
	ppc.Gen = mcase.PermuteRows(ppc.Gen, sortGens)
	if ppc.GenCost != nil {
		if r, _ := ppc.GenCost.Dims(); r == nGen {
			ppc.GenCost = mcase.PermuteRows(ppc.GenCost, sortGens)
		}
	}
	lt.RebuildGenTables(newPos)

	// Inclusion masks: a row survives iff its own status is positive and
	// every renumbered bus reference points at a live bus.
	busLive := make([]bool, nBus)
	for i := 0; i < nBus; i++ {
		busLive[i] = ppc.Bus.At(i, mcase.BusType) != mcase.TypeNone
	}
	genIs := make([]bool, nGen)
	for i := 0; i < nGen; i++ {
		genIs[i] = ppc.Gen.At(i, mcase.GenStatus) > 0 && busLive[busRef(int(ppc.Gen.At(i, mcase.GenBus)), nBus)]
	}
	nBr := ppc.NumBranch()
	branchIs := make([]bool, nBr)
	for i := 0; i < nBr; i++ {
		f := busRef(int(real(ppc.Branch.At(i, mcase.FBus))), nBus)
		t := busRef(int(real(ppc.Branch.At(i, mcase.TBus))), nBus)
		branchIs[i] = real(ppc.Branch.At(i, mcase.BrStatus)) > 0 && busLive[f] && busLive[t]
	}
	ppc.Internal.BranchIs = branchIs
	ppc.Internal.GenIs = genIs

	ppci := mcase.New(ppc.BaseMVA, ppc.Sequence)
	ppci.Bus = mcase.HeadRows(ppc.Bus, nLive)
	ppci.Branch = mcase.FilterCRows(ppc.Branch, branchIs)
	ppci.Gen = mcase.FilterRows(ppc.Gen, genIs)
	ppci.GenCost = ppc.GenCost
	ppci.Internal.BranchIs = append([]bool(nil), branchIs...)
	ppci.Internal.GenIs = append([]bool(nil), genIs...)

	if ppc.Areas != nil {
		nAreas, _ := ppc.Areas.Dims()
		keep := make([]bool, nAreas)
		for i := 0; i < nAreas; i++ {
			keep[i] = busLive[busRef(int(ppc.Areas.At(i, areaRefBusCol)), nBus)]
		}
		ppci.Areas = mcase.FilterRows(ppc.Areas, keep)
	}
	if ppc.DCLine != nil {
		ppci.DCLine = mcase.CloneDense(ppc.DCLine)
	}
	return ppci
}

// areaRefBusCol is the reference-bus column of the legacy areas table.
const areaRefBusCol = 1

func remapGenBuses(ppc *mcase.Case, e2i []int) {
	for i := 0; i < ppc.NumGen(); i++ {
		old := busRef(int(ppc.Gen.At(i, mcase.GenBus)), len(e2i))
		ppc.Gen.Set(i, mcase.GenBus, float64(e2i[old]))
	}
}

func remapBranchBuses(ppc *mcase.Case, e2i []int) {
	for i := 0; i < ppc.NumBranch(); i++ {
		f := busRef(int(real(ppc.Branch.At(i, mcase.FBus))), len(e2i))
		t := busRef(int(real(ppc.Branch.At(i, mcase.TBus))), len(e2i))
		ppc.Branch.Set(i, mcase.FBus, complex(float64(e2i[f]), 0))
		ppc.Branch.Set(i, mcase.TBus, complex(float64(e2i[t]), 0))
	}
}

func remapAreaBuses(ppc *mcase.Case, e2i []int) {
	if ppc.Areas == nil {
		return
	}
	r, _ := ppc.Areas.Dims()
	for i := 0; i < r; i++ {
		old := busRef(int(ppc.Areas.At(i, areaRefBusCol)), len(e2i))
		ppc.Areas.Set(i, areaRefBusCol, float64(e2i[old]))
	}
}

// busRef validates a bus reference against the identifier range the
// renumbering map covers. Failing this is a programming-contract violation:
// every reference was produced through the bus lookup.
func busRef(id, n int) int {
	if id < 0 || id >= n {
		panic(fmt.Sprintf("compile: bus reference %d outside renumbering map of size %d", id, n))
	}
	return id
}
