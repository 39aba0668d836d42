package mcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCase_RowCountsOnEmptyCase(t *testing.T) {
	t.Parallel()

	c := New(100, PositiveSeq)

	assert.Equal(t, 0, c.NumBus())
	assert.Equal(t, 0, c.NumBranch())
	assert.Equal(t, 0, c.NumGen())
	assert.Equal(t, CaseVersion, c.Version)
}

func TestCase_AppendBusRows(t *testing.T) {
	t.Parallel()

	c := New(100, PositiveSeq)

	first := c.AppendBusRows(2)
	assert.Equal(t, 0, first, "first append starts at row 0")
	assert.Equal(t, 2, c.NumBus())

	c.Bus.Set(1, BaseKV, 110)

	first = c.AppendBusRows(1)
	assert.Equal(t, 2, first, "growth appends behind existing rows")
	assert.Equal(t, 3, c.NumBus())
	assert.Equal(t, 110.0, c.Bus.At(1, BaseKV), "existing rows survive growth")
	assert.Equal(t, 0.0, c.Bus.At(2, BaseKV), "new rows start zeroed")
}

func TestCase_CloneIsDeep(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := New(50, ZeroSeq)
	c.Bus = mat.NewDense(1, BusCols, nil)
	c.Bus.Set(0, BaseKV, 20)
	c.Branch = mat.NewCDense(1, BranchCols, nil)
	c.Branch.Set(0, BrX, 0.5i)
	c.Internal.GenIs = []bool{true}

	// --- Act ---
	clone := c.Clone()
	clone.Bus.Set(0, BaseKV, 110)
	clone.Branch.Set(0, BrX, 1i)
	clone.Internal.GenIs[0] = false

	// --- Assert ---
	assert.Equal(t, 20.0, c.Bus.At(0, BaseKV))
	assert.Equal(t, 0.5i, c.Branch.At(0, BrX))
	assert.True(t, c.Internal.GenIs[0])
	assert.Equal(t, ZeroSeq, clone.Sequence)
	assert.Equal(t, 50.0, clone.BaseMVA)
}

func TestFilterRows(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	out := FilterRows(m, []bool{true, false, true})
	require.NotNil(t, out)
	r, _ := out.Dims()
	require.Equal(t, 2, r)
	assert.Equal(t, 1.0, out.At(0, 0))
	assert.Equal(t, 5.0, out.At(1, 0))

	assert.Nil(t, FilterRows(m, []bool{false, false, false}), "empty selection yields nil")
	assert.Nil(t, FilterRows(nil, nil))
}

func TestFilterCRows(t *testing.T) {
	t.Parallel()

	m := mat.NewCDense(2, 1, []complex128{1 + 1i, 2 + 2i})

	out := FilterCRows(m, []bool{false, true})
	require.NotNil(t, out)
	assert.Equal(t, 2+2i, out.At(0, 0))
}

func TestPermuteRows(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 1, []float64{10, 20, 30})

	out := PermuteRows(m, []int{2, 0, 1})
	assert.Equal(t, 30.0, out.At(0, 0))
	assert.Equal(t, 10.0, out.At(1, 0))
	assert.Equal(t, 20.0, out.At(2, 0))
}

func TestHeadRows(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 1, []float64{10, 20, 30})

	out := HeadRows(m, 2)
	require.NotNil(t, out)
	r, _ := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 20.0, out.At(1, 0))

	assert.Nil(t, HeadRows(m, 0))
}
