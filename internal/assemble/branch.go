package assemble

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vk/powergridgo/internal/lookup"
	"github.com/vk/powergridgo/internal/mcase"
	"github.com/vk/powergridgo/internal/network"
)

// BranchIndex maps line and transformer element ids to their branch-matrix
// rows for the compile that produced them.
type BranchIndex struct {
	Line  map[int]int
	Trafo map[int]int
}

// defaultBranchRow is the initial value of every branch row before an
// element writes its parameters.
var defaultBranchRow = []complex128{0, 0, 0, 0, 0, 250, 250, 250, 1, 0, 1, -360, 360}

// NewBranchTable allocates a branch matrix of n default-initialized rows.
func NewBranchTable(n int) *mat.CDense {
	if n == 0 {
		return nil
	}
	br := mat.NewCDense(n, mcase.BranchCols, nil)
	for i := 0; i < n; i++ {
		for j, v := range defaultBranchRow {
			br.Set(i, j, v)
		}
	}
	return br
}

// BuildBranches fills the positive-sequence branch table: line rows first,
// then two-winding transformer rows. Out-of-service elements keep their row
// with the status flag cleared.
func BuildBranches(net *network.Net, ppc *mcase.Case, lt *lookup.Tables) (*BranchIndex, error) {
	if len(net.Trafos3W) > 0 {
		return nil, &network.ConfigError{
			Element: "trafo3w", ID: net.Trafos3W[0].ID,
			Field: "element", Detail: "is not supported by this compiler",
		}
	}

	nl, nt := len(net.Lines), len(net.Trafos)
	ppc.Branch = NewBranchTable(nl + nt)
	lt.Branch["line"] = lookup.Range{Start: 0, End: nl}
	lt.Branch["trafo"] = lookup.Range{Start: nl, End: nl + nt}

	idx := &BranchIndex{Line: make(map[int]int), Trafo: make(map[int]int)}

	for i, line := range net.Lines {
		r := i
		idx.Line[line.ID] = r
		if err := lineRow(net, ppc, lt, line, r); err != nil {
			return nil, err
		}
	}
	for i, t := range net.Trafos {
		r := nl + i
		idx.Trafo[t.ID] = r
		if err := trafoRow(net, ppc, lt, t, r); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func lineRow(net *network.Net, ppc *mcase.Case, lt *lookup.Tables, line network.Line, r int) error {
	fRow := MustBusRow(lt, line.FromBus, "line", line.ID)
	tRow := MustBusRow(lt, line.ToBus, "line", line.ID)

	vn := ppc.Bus.At(fRow, mcase.BaseKV)
	baseR := vn * vn / ppc.BaseMVA
	length := line.LengthKm
	parallel := orDefault(line.Parallel, 1)

	br := ppc.Branch
	br.Set(r, mcase.FBus, complex(float64(fRow), 0))
	br.Set(r, mcase.TBus, complex(float64(tRow), 0))
	br.Set(r, mcase.BrR, complex(line.ROhmPerKm*length/baseR/parallel, 0))
	br.Set(r, mcase.BrX, complex(line.XOhmPerKm*length/baseR/parallel, 0))
	br.Set(r, mcase.BrB, complex(2*math.Pi*net.FHz*line.CNfPerKm*1e-9*baseR*length*parallel, 0))
	if line.MaxIKA > 0 {
		rate := math.Sqrt(3) * vn * line.MaxIKA
		br.Set(r, mcase.RateA, complex(rate, 0))
	}
	br.Set(r, mcase.BrStatus, boolToC(line.InService))
	return nil
}

func trafoRow(net *network.Net, ppc *mcase.Case, lt *lookup.Tables, t network.Trafo, r int) error {
	hvRow := MustBusRow(lt, t.HVBus, "trafo", t.ID)
	lvRow := MustBusRow(lt, t.LVBus, "trafo", t.ID)

	if t.SnMVA <= 0 {
		return &network.ConfigError{Element: "trafo", ID: t.ID, Field: "sn_mva", Detail: "must be positive"}
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

	br := ppc.Branch
	br.Set(r, mcase.FBus, complex(float64(hvRow), 0))
	br.Set(r, mcase.TBus, complex(float64(lvRow), 0))
	br.Set(r, mcase.BrR, complex(rk/parallel, 0))
	br.Set(r, mcase.BrX, complex(xk/parallel, 0))
	br.Set(r, mcase.Tap, complex(ratio, 0))
	br.Set(r, mcase.Shift, complex(shift, 0))
	br.Set(r, mcase.RateA, complex(t.SnMVA*parallel, 0))
	br.Set(r, mcase.BrStatus, boolToC(t.InService))
	return nil
}

// TapVoltages returns the tap-adjusted rated winding voltages and the phase
// shift of a transformer.
func TapVoltages(t network.Trafo) (vnHV, vnLV, shift float64) {
	vnHV, vnLV = t.VnHVKV, t.VnLVKV
	step := float64(t.TapPos-t.TapNeutral) * t.TapStepPct / 100
	switch t.TapSide {
	case "lv":
		vnLV *= 1 + step
	default:
		vnHV *= 1 + step
	}
	return vnHV, vnLV, t.ShiftDegree
}

// NominalRatio is the off-nominal tap ratio of a transformer relative to the
// voltage levels of its terminal buses.
func NominalRatio(vnHV, vnLV, vnHVBus, vnLVBus float64) float64 {
	return (vnHV / vnLV) / (vnHVBus / vnLVBus)
}

// TrafoCorrectionFactor is the IEC 60909 short-circuit impedance correction
// factor for a two-winding transformer.
func TrafoCorrectionFactor(vkPct, vkrPct, cmax float64) float64 {
	zt := vkPct / 100
	rt := vkrPct / 100
	xt := math.Sqrt(zt*zt - rt*rt)
	return 0.95 * cmax / (1 + 0.6*xt)
}

// copysignSqrt returns the reactive part of an impedance whose magnitude is
// z and resistive part r, keeping the sign of z.
func copysignSqrt(z, r float64) float64 {
	return math.Copysign(math.Sqrt(z*z-r*r), z)
}

// MustBusRow resolves a bus reference or panics: by construction the bus
// lookup covers every identifier an element row may carry, so a miss is a
// programming error, not user input.
func MustBusRow(lt *lookup.Tables, busID int, element string, id int) int {
	row, ok := lt.Bus.Resolve(busID)
	if !ok {
		panic(fmt.Sprintf("assemble: %s %d references unknown bus %d", element, id, busID))
	}
	return row
}

func boolToC(b bool) complex128 {
	if b {
		return 1
	}
	return 0
}
