package table

// Data is the column set of one table plus the parallel entity-id
// column: a value-typed body that can be swapped wholesale (spec.md
// §3). Columns is always parallel to the owning Table's Type — one
// entry per component id, in the same order, whether or not that
// entry actually carries a buffer.
type Data struct {
	Entities []EntityID
	Columns  []*Column
}

// Len is the row count N: the length of the entity-id column, which
// is authoritative for every data-bearing column's length too
// (spec.md §5 ordering guarantees).
func (d *Data) Len() int {
	return len(d.Entities)
}

// NewData allocates a Data with one Column per position in typ,
// consulting the ComponentProvider for each id (spec.md §4.1):
//
//   - a positive-size descriptor yields a data-bearing column;
//   - a zero-size descriptor (tag) or an absent descriptor (relation
//     id) yields a column with no buffer.
//
// If tbl is non-nil, its flags are derived from typ once, here, and
// never again (spec.md §3 Table flags, §4.1).
func NewData(w *World, stage *Stage, tbl *Table, typ Type) *Data {
	provider := w.componentProvider("new_data")
	columns := make([]*Column, len(typ))
	for i, id := range typ {
		size := 0
		if !id.IsRelation() {
			if desc, kind := provider.GetComponent(w, stage, id); kind == KindData {
				size = desc.Size
			}
		}
		columns[i] = NewColumn(size)
	}
	if tbl != nil {
		tbl.deriveFlags(typ)
	}
	return &Data{Columns: columns}
}
