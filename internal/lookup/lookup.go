package lookup

// NotPresent marks an identifier with no matrix row: the element is out of
// service, absent, or was never assigned.
const NotPresent = -1

// Table maps a dense integer identifier space onto matrix row positions.
// Index by element id; NotPresent entries are holes.
type Table []int

// NewTable returns a table covering ids 0..maxID with every entry set to
// NotPresent.
func NewTable(maxID int) Table {
	t := make(Table, maxID+1)
	for i := range t {
		t[i] = NotPresent
	}
	return t
}

// Set records the row position for id.
func (t Table) Set(id, row int) {
	t[id] = row
}

// Resolve returns the row position for id, or false when the id is unknown
// or has no row.
func (t Table) Resolve(id int) (int, bool) {
	if id < 0 || id >= len(t) || t[id] == NotPresent {
		return NotPresent, false
	}
	return t[id], true
}

// Remap replaces every valid entry r with oldToNew[r], leaving NotPresent
// sentinels untouched. Called once per renumbering phase; stale entries after
// a phase are a bug, not a tolerated inconsistency.
func (t Table) Remap(oldToNew []int) {
	for i, r := range t {
		if r != NotPresent {
			t[i] = oldToNew[r]
		}
	}
}

// IDOf performs the reverse lookup from a row position back to the first id
// mapped to it. Intended for result mapping and tests, not hot paths.
func (t Table) IDOf(row int) (int, bool) {
	for id, r := range t {
		if r == row {
			return id, true
		}
	}
	return NotPresent, false
}
