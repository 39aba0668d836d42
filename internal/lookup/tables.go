package lookup

// GenKind names the element tables whose rows land in the generator matrix.
// The declaration order below is the strict offset order of their row blocks.
type GenKind string

const (
	KindExtGrid GenKind = "ext_grid"
	KindGen     GenKind = "gen"
	KindSgen    GenKind = "sgen_controllable"
	KindLoad    GenKind = "load_controllable"
	KindStorage GenKind = "storage_controllable"
)

// GenKindOrder is the contiguous block order of generator-like rows.
var GenKindOrder = []GenKind{KindExtGrid, KindGen, KindSgen, KindLoad, KindStorage}

// Range is a half-open row interval [Start, End) in the branch matrix.
type Range struct {
	Start, End int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start }

// Tables bundles every per-category lookup for one compile run.
type Tables struct {
	// Bus maps network bus ids to bus-matrix rows. Buses fused by closed
	// bus-bus switches share one row.
	Bus Table

	// Branch maps an element table name ("line", "trafo") to its contiguous
	// block of branch-matrix rows.
	Branch map[string]Range

	// Gen maps each generator-like element table to an id->row table.
	Gen map[GenKind]Table

	// genOrder records, per kind, the in-service element ids in assembly row
	// order. The renumbering engine rebuilds the Gen tables from these after
	// sorting the generator matrix.
	genOrder map[GenKind][]int
}

// NewTables returns empty lookup tables for a fresh compile.
func NewTables() *Tables {
	return &Tables{
		Branch:   make(map[string]Range),
		Gen:      make(map[GenKind]Table),
		genOrder: make(map[GenKind][]int),
	}
}

// SetGenOrder records the in-service element ids of one generator kind in
// the order their rows were assembled.
func (t *Tables) SetGenOrder(kind GenKind, ids []int) {
	t.genOrder[kind] = ids
}

// GenOrder returns the recorded assembly order for a kind.
func (t *Tables) GenOrder(kind GenKind) []int {
	return t.genOrder[kind]
}

// RebuildGenTables recomputes every generator lookup after the generator
// matrix was reordered. newPos maps pre-sort row positions to post-sort
// positions. Kinds occupy contiguous blocks in GenKindOrder order, each sized
// by its own in-service count; empty blocks are skipped.
func (t *Tables) RebuildGenTables(newPos []int) {
	offset := 0
	for _, kind := range GenKindOrder {
		ids := t.genOrder[kind]
		if len(ids) == 0 {
			continue
		}
		maxID := 0
		for _, id := range ids {
			if id > maxID {
				maxID = id
			}
		}
		tbl := NewTable(maxID)
		for i, id := range ids {
			tbl.Set(id, newPos[offset+i])
		}
		t.Gen[kind] = tbl
		offset += len(ids)
	}
}
