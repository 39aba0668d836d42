package mcase

import (
	"gonum.org/v1/gonum/mat"
)

// CaseVersion tags the matrix layout generation. Downstream solvers check it
// before touching column offsets.
const CaseVersion = 2

// PositiveSeq and ZeroSeq select which sequence network a case describes.
const (
	ZeroSeq     = 0
	PositiveSeq = 1
)

// Internal is the per-case cache the solver and the incremental updater
// share. The admittance slots are populated by the solver, not by the
// compiler, but they must exist and be addressable before the solver runs.
type Internal struct {
	YBus *mat.CDense
	Yf   *mat.CDense
	Yt   *mat.CDense

	// In-service masks computed during ext->int conversion, reused verbatim
	// by the incremental update path.
	BranchIs []bool
	GenIs    []bool
}

// Case is one flat matrix representation of a network, either external
// (every row retained) or internal (solver ready). Tables may be nil when
// empty; use the row-count accessors rather than touching matrices directly.
type Case struct {
	BaseMVA  float64
	Version  int
	Sequence int

	Bus    *mat.Dense
	Branch *mat.CDense
	Gen    *mat.Dense

	// GenCost is attached only for optimal-power-flow compiles. Filling it is
	// the objective assembler's job; the compiler only provides the slot.
	GenCost *mat.Dense

	// Areas is optional legacy data. A zero-row table is removed entirely
	// during ext->int conversion.
	Areas *mat.Dense

	// DCLine rows are copied unfiltered into the internal case when present.
	DCLine *mat.Dense

	Internal Internal
}

// New returns an empty case for the given system base power.
func New(baseMVA float64, sequence int) *Case {
	return &Case{
		BaseMVA:  baseMVA,
		Version:  CaseVersion,
		Sequence: sequence,
	}
}

// NumBus returns the number of bus rows.
func (c *Case) NumBus() int { return denseRows(c.Bus) }

// NumBranch returns the number of branch rows.
func (c *Case) NumBranch() int { return cdenseRows(c.Branch) }

// NumGen returns the number of generator rows.
func (c *Case) NumGen() int { return denseRows(c.Gen) }

// Clone deep-copies the case tables. The internal cache admittance slots are
// not copied: they belong to a single solver invocation.
func (c *Case) Clone() *Case {
	out := &Case{
		BaseMVA:  c.BaseMVA,
		Version:  c.Version,
		Sequence: c.Sequence,
	}
	out.Bus = CloneDense(c.Bus)
	out.Gen = CloneDense(c.Gen)
	out.GenCost = CloneDense(c.GenCost)
	out.Areas = CloneDense(c.Areas)
	out.DCLine = CloneDense(c.DCLine)
	out.Branch = CloneCDense(c.Branch)
	if c.Internal.BranchIs != nil {
		out.Internal.BranchIs = append([]bool(nil), c.Internal.BranchIs...)
	}
	if c.Internal.GenIs != nil {
		out.Internal.GenIs = append([]bool(nil), c.Internal.GenIs...)
	}
	return out
}

// AppendBusRows grows the bus table by n zeroed rows and returns the row
// index of the first new row.
func (c *Case) AppendBusRows(n int) int {
	if n <= 0 {
		return c.NumBus()
	}
	if c.Bus == nil {
		_, cols := 0, BusCols
		c.Bus = mat.NewDense(n, cols, nil)
		return 0
	}
	first, _ := c.Bus.Dims()
	c.Bus = c.Bus.Grow(n, 0).(*mat.Dense)
	return first
}

func denseRows(m *mat.Dense) int {
	if m == nil {
		return 0
	}
	r, _ := m.Dims()
	return r
}

func cdenseRows(m *mat.CDense) int {
	if m == nil {
		return 0
	}
	r, _ := m.Dims()
	return r
}

// CloneDense deep-copies a real matrix, mapping nil to nil.
func CloneDense(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	var out mat.Dense
	out.CloneFrom(m)
	return &out
}

// CloneCDense deep-copies a complex matrix, mapping nil to nil.
func CloneCDense(m *mat.CDense) *mat.CDense {
	if m == nil {
		return nil
	}
	r, cols := m.Dims()
	out := mat.NewCDense(r, cols, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}
