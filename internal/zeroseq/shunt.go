package zeroseq

import (
	"sort"

	"github.com/vk/powergridgo/internal/mcase"
)

// shuntAcc accumulates per-bus shunt admittance contributions. Multiple
// transformers landing on the same bus are summed before the bus row is
// touched once.
type shuntAcc struct {
	g map[int]float64
	b map[int]float64
}

func newShuntAcc() *shuntAcc {
	return &shuntAcc{g: make(map[int]float64), b: make(map[int]float64)}
}

func (a *shuntAcc) add(busRow int, y complex128) {
	a.g[busRow] += real(y)
	a.b[busRow] += imag(y)
}

// applyAdd adds the accumulated sums onto the bus shunt columns.
func (a *shuntAcc) applyAdd(ppc *mcase.Case) {
	for _, row := range a.rows() {
		ppc.Bus.Set(row, mcase.Gs, ppc.Bus.At(row, mcase.Gs)+a.g[row])
		ppc.Bus.Set(row, mcase.Bs, ppc.Bus.At(row, mcase.Bs)+a.b[row])
	}
}

// applySet assigns the accumulated sums, overwriting prior values. Used by
// the external-grid grounding admittance, which owns its bus columns.
func (a *shuntAcc) applySet(ppc *mcase.Case) {
	for _, row := range a.rows() {
		ppc.Bus.Set(row, mcase.Gs, a.g[row])
		ppc.Bus.Set(row, mcase.Bs, a.b[row])
	}
}

func (a *shuntAcc) rows() []int {
	rows := make([]int, 0, len(a.g))
	for row := range a.g {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}
