package table

// Delete is table_delete, the swap-remove deletion of spec.md §4.5.
// It asserts index is in range and the table is non-empty, overwrites
// the removed row with the tail row (unless the removed row already
// was the tail), and truncates by one. If the row that had to move
// existed, the entity index is updated for its new 1-based row. If the
// table transitions to empty and the world isn't in-progress,
// Deactivate fires.
func Delete(w *World, stage *Stage, tbl *Table, data *Data, index int) error {
	n := data.Len()
	if n == 0 {
		fail("table_delete", "delete from an empty table")
	}
	if index < 0 || index >= n {
		fail("table_delete", "row index out of range")
	}

	last := n - 1
	if index != last {
		movedEntity := data.Entities[last]
		data.Entities[index] = movedEntity
		for _, col := range data.Columns {
			col.overwriteWithTail(index)
		}
		data.Entities = data.Entities[:last]

		indexer := entityIndexerFor(w, stage, "table_delete")
		if rec, ok := indexer.Get(movedEntity); ok {
			rec.Row = index + 1
			indexer.Set(movedEntity, rec)
		} else {
			indexer.Set(movedEntity, Record{Type: tbl.typ, Row: index + 1})
		}
	} else {
		data.Entities = data.Entities[:last]
		for _, col := range data.Columns {
			col.popTail()
		}
	}

	if !w.InProgress && data.Len() == 0 && data == tbl.data {
		Deactivate(w, tbl, nil)
	}
	return nil
}
