package assemble

import (
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// ApplySwitches detaches branch ends behind open line and transformer
// switches: the affected endpoint is redirected onto a fresh auxiliary
// out-of-service bus, which the in-service masks then use to drop the
// branch while the original bus keeps its row for result mapping.
func ApplySwitches(net *network.Net, ppc *mcase.Case, lt *lookup.Tables, idx *BranchIndex) {
	for _, sw := range net.Switches {
		if sw.Closed {
			continue
		}

		var row int
		var ok bool
		switch sw.ElementType {
		case network.SwitchLine:
			row, ok = idx.Line[sw.Element]
		case network.SwitchTrafo:
			row, ok = idx.Trafo[sw.Element]
		default:
			continue
		}
		if !ok {
			continue
		}

		busRow := MustBusRow(lt, sw.Bus, "switch", sw.ID)
		aux := AuxBus(ppc, busRow)
		if int(real(ppc.Branch.At(row, mcase.FBus))) == busRow {
			ppc.Branch.Set(row, mcase.FBus, complex(float64(aux), 0))
		} else if int(real(ppc.Branch.At(row, mcase.TBus))) == busRow {
			ppc.Branch.Set(row, mcase.TBus, complex(float64(aux), 0))
		}
	}
}

// RedirectOOSBusBranches handles in-service lines touching out-of-service
// buses: with both ends dead the branch is switched out, with one end dead
// that end moves to an auxiliary bus so the original row can later report
// results for the live side.
func RedirectOOSBusBranches(net *network.Net, ppc *mcase.Case, idx *BranchIndex) {
	for _, line := range net.Lines {
		if !line.InService {
			continue
		}
		row := idx.Line[line.ID]
		f := int(real(ppc.Branch.At(row, mcase.FBus)))
		t := int(real(ppc.Branch.At(row, mcase.TBus)))
		fDead := !BusLive(ppc, f)
		tDead := !BusLive(ppc, t)
		switch {
		case fDead && tDead:
			ppc.Branch.Set(row, mcase.BrStatus, 0)
		case fDead:
			ppc.Branch.Set(row, mcase.FBus, complex(float64(AuxBus(ppc, f)), 0))
		case tDead:
			ppc.Branch.Set(row, mcase.TBus, complex(float64(AuxBus(ppc, t)), 0))
		}
	}
}
