package table

// Swap is table_swap (spec.md §4.6): exchanges rows r1 and r2 — their
// entity ids, every data-bearing column's slot, and both entities'
// index records. A no-op if r1 == r2. rec1/rec2 let a caller that
// already holds both records skip the entity-index lookup; either may
// be nil, in which case it is resolved via the index.
func Swap(w *World, stage *Stage, tbl *Table, data *Data, r1, r2 int, rec1, rec2 *Record) {
	if r1 == r2 {
		return
	}
	e1, e2 := data.Entities[r1], data.Entities[r2]
	data.Entities[r1], data.Entities[r2] = e2, e1
	for _, col := range data.Columns {
		col.swapRows(r1, r2)
	}

	indexer := entityIndexerFor(w, stage, "table_swap")
	setRow(indexer, tbl, e1, rec1, r2+1)
	setRow(indexer, tbl, e2, rec2, r1+1)
}

func setRow(indexer EntityIndexer, tbl *Table, entity EntityID, rec *Record, row int) {
	if rec != nil {
		rec.Row = row
		indexer.Set(entity, *rec)
		return
	}
	found, ok := indexer.Get(entity)
	if !ok {
		found = Record{Type: tbl.typ}
	}
	found.Row = row
	indexer.Set(entity, found)
}

// MoveBackAndSwap is move_back_and_swap (spec.md §4.7): rotates the
// window [row, row+count) left by one. The element that was at row-1
// is saved, every row in the window shifts down by one slot, and the
// saved element lands at the window's new last slot (row+count-1).
// Every moved entity's index record is updated to its new 1-based row.
func MoveBackAndSwap(w *World, stage *Stage, tbl *Table, data *Data, row, count int) {
	if count <= 0 {
		return
	}
	saved := data.Entities[row-1]
	for i := row; i < row+count; i++ {
		data.Entities[i-1] = data.Entities[i]
	}
	data.Entities[row+count-1] = saved

	for _, col := range data.Columns {
		col.rotateLeft(row, count)
	}

	indexer := entityIndexerFor(w, stage, "move_back_and_swap")
	for i := row - 1; i < row+count; i++ {
		rec, ok := indexer.Get(data.Entities[i])
		if !ok {
			rec = Record{Type: tbl.typ}
		}
		rec.Row = i + 1
		indexer.Set(data.Entities[i], rec)
	}
}
