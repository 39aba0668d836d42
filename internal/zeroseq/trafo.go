package zeroseq

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/vk/powergridgo/internal/assemble"
	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// partitionTol is the relative tolerance deciding whether the two asymmetric
// YNyn equivalent branches are equal. The original formulation compares
// floating-point values exactly; an explicit tolerance is a deliberate
// deviation.
const partitionTol = 1e-9

// trafoTerms holds the per-transformer impedance terms shared by every
// vector-group variant.
type trafoTerms struct {
	hvRow, lvRow int
	z0k          complex128 // leakage impedance, tap and correction adjusted
	z0mag        complex128 // magnetizing branch impedance
	zHV, zLV     complex128 // leakage split by the high-voltage partition fraction
	inService    float64
}

// addTrafoImpedances synthesizes the zero-sequence branch and shunt
// contributions of every two-winding transformer, grouped by vector group.
// Groups are independent of one another; each is processed as one batch.
func addTrafoImpedances(net *network.Net, ppc *mcase.Case, lt *lookup.Tables, idx *assemble.BranchIndex) error {
	groups := make(map[string][]network.Trafo)
	for _, t := range net.Trafos {
		groups[t.VectorGroup] = append(groups[t.VectorGroup], t)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	acc := newShuntAcc()
	for _, name := range names {
		spec, err := lookupGroup(name)
		if err != nil {
			return err
		}

		// Every row starts switched out; only YNyn carries through current
		// and re-enables its rows.
		for _, t := range groups[name] {
			ppc.Branch.Set(idx.Trafo[t.ID], mcase.BrStatus, 0)
		}
		if spec.blocked {
			continue
		}

		for _, t := range groups[name] {
			terms, err := computeTerms(net, ppc, lt, t)
			if err != nil {
				return err
			}
			row := idx.Trafo[t.ID]
			writeBranchEnds(ppc, t, terms, row)
			applyGroup(ppc, spec, terms, row, acc)
		}
	}

	acc.applyAdd(ppc)
	return nil
}

// computeTerms derives the leakage and magnetizing impedance of one
// transformer from its percent parameters, adjusted for the tap position and,
// under short circuit, the per-bus voltage correction factor.
func computeTerms(net *network.Net, ppc *mcase.Case, lt *lookup.Tables, t network.Trafo) (trafoTerms, error) {
	if t.SnMVA <= 0 {
		return trafoTerms{}, &network.ConfigError{Element: "trafo", ID: t.ID, Field: "sn_mva", Detail: "must be positive"}
	}

	hvRow := assemble.MustBusRow(lt, t.HVBus, "trafo", t.ID)
	lvRow := assemble.MustBusRow(lt, t.LVBus, "trafo", t.ID)

	_, vnLV, _ := assemble.TapVoltages(t)
	vnLVBus := ppc.Bus.At(lvRow, mcase.BaseKV)
	parallel := t.Parallel
	if parallel == 0 {
		parallel = 1
	}

	// Adjust for the low-voltage side voltage level.
	tapLV := (vnLV / vnLVBus) * (vnLV / vnLVBus)
	if net.Options.Mode == network.ModePF3Ph {
		phase := vnLVBus / math.Sqrt(3)
		tapLV = (vnLV / phase) * (vnLV / phase)
	}

	zSC := t.Vk0Pct / 100 / t.SnMVA * tapLV * ppc.BaseMVA
	rSC := t.Vkr0Pct / 100 / t.SnMVA * tapLV * ppc.BaseMVA
	xSC := math.Copysign(math.Sqrt(zSC*zSC-rSC*rSC), zSC)
	z0k := complex(rSC, xSC) / complex(parallel, 0)

	if net.Options.Mode == network.ModeSC {
		cmax := ppc.Bus.At(lvRow, mcase.CMax)
		kt := assemble.TrafoCorrectionFactor(t.VkPct, t.VkrPct, cmax)
		z0k *= complex(kt, 0)
	}

	// Zero-sequence magnetizing branch from its ratio to the leakage
	// impedance and its R/X ratio.
	zM := zSC * t.Mag0Pct
	xM := zM / math.Sqrt(t.Mag0RX*t.Mag0RX+1)
	rM := xM * t.Mag0RX
	z0mag := complex(rM/parallel, xM/parallel)

	inSvc := 0.0
	if t.InService {
		inSvc = 1
	}

	si0 := t.Si0HVPartial
	if si0 == 0 {
		si0 = 0.5
	}

	return trafoTerms{
		hvRow:     hvRow,
		lvRow:     lvRow,
		z0k:       z0k,
		z0mag:     z0mag,
		zHV:       complex(si0, 0) * z0k,
		zLV:       complex(1-si0, 0) * z0k,
		inService: inSvc,
	}, nil
}

// writeBranchEnds fills the endpoint, ratio and shift cells of a
// transformer's branch row.
func writeBranchEnds(ppc *mcase.Case, t network.Trafo, terms trafoTerms, row int) {
	vnHV, vnLV, shift := assemble.TapVoltages(t)
	ratio := assemble.NominalRatio(vnHV, vnLV,
		ppc.Bus.At(terms.hvRow, mcase.BaseKV), ppc.Bus.At(terms.lvRow, mcase.BaseKV))

	br := ppc.Branch
	br.Set(row, mcase.FBus, complex(float64(terms.hvRow), 0))
	br.Set(row, mcase.TBus, complex(float64(terms.lvRow), 0))
	br.Set(row, mcase.Tap, complex(ratio, 0))
	br.Set(row, mcase.Shift, complex(shift, 0))
}

// applyGroup dispatches one transformer to its vector-group variant.
func applyGroup(ppc *mcase.Case, spec groupSpec, terms trafoTerms, row int, acc *shuntAcc) {
	scale := complex(terms.inService*ppc.BaseMVA, 0)

	if spec.tEquivalent {
		applyYNyn(ppc, terms, row, acc, scale)
		return
	}

	side := terms.lvRow
	if spec.side == sideHV {
		side = terms.hvRow
	}
	if spec.magInSeries {
		acc.add(side, scale/(terms.z0mag+terms.z0k))
		return
	}
	acc.add(side, scale/terms.z0k)
}

// applyYNyn converts the grounded-both-sides T-equivalent into a Pi model on
// the branch row. The leakage impedance is split by the high-voltage-side
// partition fraction already folded into terms; the asymmetry between the
// two shunt branches of the Pi, when present, lands as an extra shunt
// admittance on the side with the larger equivalent impedance.
func applyYNyn(ppc *mcase.Case, terms trafoTerms, row int, acc *shuntAcc, scale complex128) {
	ppc.Branch.Set(row, mcase.BrStatus, complex(terms.inService, 0))

	z1 := terms.zHV
	z2 := terms.zLV
	z3 := terms.z0mag

	zSum := z1*z2 + z2*z3 + z1*z3
	za := zSum / z2
	zb := zSum / z1
	zc := zSum / z3

	ppc.Branch.Set(row, mcase.BrR, complex(real(zc), 0))
	ppc.Branch.Set(row, mcase.BrX, complex(imag(zc), 0))

	absA, absB := cmplx.Abs(za), cmplx.Abs(zb)
	maxAbs := math.Max(absA, absB)

	switch {
	case cmplx.Abs(za-zb) <= partitionTol*maxAbs || maxAbs == 0:
		ppc.Branch.Set(row, mcase.BrB, -1i/za)
	case absA > absB:
		ppc.Branch.Set(row, mcase.BrB, -1i/za)
		zs := (za * zb) / (za - zb)
		acc.add(terms.hvRow, scale/zs)
	default:
		ppc.Branch.Set(row, mcase.BrB, -1i/zb)
		zs := (za * zb) / (zb - za)
		acc.add(terms.lvRow, scale/zs)
	}
}
