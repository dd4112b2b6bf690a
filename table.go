package table

import "github.com/TheBitDrifter/mask"

// TableFlags are derived once, at Data creation time, and never
// recomputed afterward (spec.md §3, §4.1).
type TableFlags uint8

const (
	// HasBuiltins is set if any id in the table's Type is <= LastBuiltin.
	HasBuiltins TableFlags = 1 << iota
	// IsPrefab is set if Prefab is in the table's Type.
	IsPrefab
)

// Table owns type identity, a committed Data, its flags, and the set
// of queries subscribed to its empty/non-empty transitions (spec.md
// §3). A Table's Type never changes after construction; moving an
// entity between component sets means moving it to a different Table
// (Merge, in merge.go).
type Table struct {
	typ     Type
	data    *Data
	flags   TableFlags
	queries []Query
	compMsk mask.Mask
	events  TableEvents
}

// Ensure Table satisfies the same mask.Maskable contract the teacher's
// query engine type-asserts against (query.go:
// `archetype.Table().(mask.Maskable).Mask()`).
var _ mask.Maskable = (*Table)(nil)

// Type returns the table's immutable component-id list.
func (t *Table) Type() Type { return t.typ }

// Flags returns the table's derived flags.
func (t *Table) Flags() TableFlags { return t.flags }

// Mask returns the component-membership bitmask derived from the
// owning Schema's row indices at construction time, letting a host
// query engine test AND/OR/NOT membership in O(1) the way the
// teacher's storage.go/query.go do against archetype masks.
func (t *Table) Mask() mask.Mask { return t.compMsk }

// Contains reports whether id is a member of this table's Type.
func (t *Table) Contains(id EntityID) bool { return t.typ.Contains(id) }

// Length is table_count: the current row count of the committed Data.
func (t *Table) Length() int {
	if t.data == nil {
		return 0
	}
	return t.data.Len()
}

// Queries returns the queries currently subscribed to this table.
func (t *Table) Queries() []Query { return t.queries }

// EntityAt returns the entity id stored at row of the committed Data,
// for hosts (ecs.Cursor) that walk rows directly instead of going
// through an EntryIndex lookup.
func (t *Table) EntityAt(row int) (EntityID, bool) {
	if t.data == nil || row < 0 || row >= t.data.Len() {
		return 0, false
	}
	return t.data.Entities[row], true
}

// columnIndex returns the position of id within t.typ, or -1.
func (t *Table) columnIndex(id EntityID) int {
	for i, existing := range t.typ {
		if existing == id {
			return i
		}
	}
	return -1
}

// Column returns the committed-data Column backing id, or (nil, false)
// if id is not in this table's Type or carries no storage (tag or
// relation id).
func (t *Table) Column(id EntityID) (*Column, bool) {
	idx := t.columnIndex(id)
	if idx < 0 || t.data == nil {
		return nil, false
	}
	col := t.data.Columns[idx]
	if !col.IsData() {
		return nil, false
	}
	return col, true
}

// deriveFlags ORs in HasBuiltins/IsPrefab from typ. Called exactly
// once, from NewData when a table is supplied (spec.md §4.1).
func (t *Table) deriveFlags(typ Type) {
	for _, id := range typ {
		if id <= LastBuiltin {
			t.flags |= HasBuiltins
		}
		if id == Prefab {
			t.flags |= IsPrefab
		}
	}
}
