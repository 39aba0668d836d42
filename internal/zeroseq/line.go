package zeroseq

import (
	"math"

	"github.com/vk/powergridgo/internal/assemble"
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// addLineImpedances writes the ground-return series impedance and
// zero-sequence charging susceptance of every line onto its branch row.
// Lines carry no topology branching: the computation is uniform.
func addLineImpedances(net *network.Net, ppc *mcase.Case, lt *lookup.Tables, idx *assemble.BranchIndex) {
	threePhase := net.Options.Mode == network.ModePF3Ph

	for _, line := range net.Lines {
		r := idx.Line[line.ID]
		fRow := assemble.MustBusRow(lt, line.FromBus, "line", line.ID)
		tRow := assemble.MustBusRow(lt, line.ToBus, "line", line.ID)

		vn := ppc.Bus.At(fRow, mcase.BaseKV)
		if threePhase {
			vn /= math.Sqrt(3)
		}
		baseR := vn * vn / ppc.BaseMVA
		length := line.LengthKm
		parallel := line.Parallel
		if parallel == 0 {
			parallel = 1
		}

		br := ppc.Branch
		br.Set(r, mcase.FBus, complex(float64(fRow), 0))
		br.Set(r, mcase.TBus, complex(float64(tRow), 0))
		br.Set(r, mcase.BrR, complex(line.R0OhmPerKm*length/baseR/parallel, 0))
		br.Set(r, mcase.BrX, complex(line.X0OhmPerKm*length/baseR/parallel, 0))
		br.Set(r, mcase.BrB, complex(2*math.Pi*net.FHz*line.C0NfPerKm*1e-9*baseR*length*parallel, 0))
		status := complex128(0)
		if line.InService {
			status = 1
		}
		br.Set(r, mcase.BrStatus, status)
	}
}
