package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ResolveUnknown(t *testing.T) {
	t.Parallel()

	tbl := NewTable(4)

	_, ok := tbl.Resolve(2)
	assert.False(t, ok, "an unset entry must not resolve")

	_, ok = tbl.Resolve(-1)
	assert.False(t, ok, "a negative id must not resolve")

	_, ok = tbl.Resolve(99)
	assert.False(t, ok, "an id outside the table must not resolve")
}

func TestTable_SetAndResolve(t *testing.T) {
	t.Parallel()

	tbl := NewTable(10)
	tbl.Set(3, 0)
	tbl.Set(7, 1)

	row, ok := tbl.Resolve(3)
	require.True(t, ok)
	assert.Equal(t, 0, row)

	row, ok = tbl.Resolve(7)
	require.True(t, ok)
	assert.Equal(t, 1, row)

	id, ok := tbl.IDOf(1)
	require.True(t, ok)
	assert.Equal(t, 7, id, "reverse lookup should recover the id")
}

func TestTable_Remap(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tbl := NewTable(3)
	tbl.Set(0, 2)
	tbl.Set(1, 0)
	tbl.Set(3, 1)
	// Row permutation: old row r moves to oldToNew[r].
	oldToNew := []int{1, 2, 0}

	// --- Act ---
	tbl.Remap(oldToNew)

	// --- Assert ---
	row, _ := tbl.Resolve(0)
	assert.Equal(t, 0, row)
	row, _ = tbl.Resolve(1)
	assert.Equal(t, 1, row)
	row, _ = tbl.Resolve(3)
	assert.Equal(t, 2, row)

	_, ok := tbl.Resolve(2)
	assert.False(t, ok, "holes must survive a remap untouched")
}

func TestTables_RebuildGenTables(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Two ext grids then two generators were assembled as rows 0..3; the
	// sort afterwards moved row 1 behind row 2.
	lt := NewTables()
	lt.SetGenOrder(KindExtGrid, []int{10, 11})
	lt.SetGenOrder(KindGen, []int{5, 6})
	newPos := []int{0, 2, 1, 3}

	// --- Act ---
	lt.RebuildGenTables(newPos)

	// --- Assert ---
	eg := lt.Gen[KindExtGrid]
	row, _ := eg.Resolve(10)
	assert.Equal(t, 0, row)
	row, _ = eg.Resolve(11)
	assert.Equal(t, 2, row)

	gen := lt.Gen[KindGen]
	row, _ = gen.Resolve(5)
	assert.Equal(t, 1, row)
	row, _ = gen.Resolve(6)
	assert.Equal(t, 3, row)

	_, hasSgen := lt.Gen[KindSgen]
	assert.False(t, hasSgen, "kinds with no rows must not get a table")
}

func TestRange_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Range{}.Len())
	assert.Equal(t, 3, Range{Start: 2, End: 5}.Len())
}
