package table

// Clear is table_clear (spec.md §4.8): frees every column buffer and,
// if the table had rows, deactivates. It does not invoke OnRemove — it
// is for rollback, where the rows never really existed as far as any
// observer should be concerned.
func Clear(w *World, tbl *Table) {
	hadRows := tbl.data.Len() > 0
	tbl.data.Entities = nil
	for _, col := range tbl.data.Columns {
		col.free()
	}
	if hadRows && !w.InProgress {
		Deactivate(w, tbl, nil)
	}
}

// ReplaceColumns is table_replace_columns (spec.md §4.8, and the §9
// Open Question on ordering): remembers the previous row count, frees
// the *old* column buffers and Data envelope, and only then installs
// newData as the committed Data. That ordering — free, then install —
// is deliberate: the source's literal translation would free
// table->data's columns and then index the just-freed table->data
// before reassigning it, a use-after-free in a language without a GC.
// Freeing strictly before the assignment (rather than after) makes the
// intended "drop old, then install new" semantics explicit instead of
// relying on Go's GC to paper over the ordering bug.
func ReplaceColumns(w *World, tbl *Table, newData *Data) {
	prevLen := tbl.data.Len()
	for _, col := range tbl.data.Columns {
		col.free()
	}
	tbl.data = nil
	tbl.data = newData

	newLen := newData.Len()
	if w.InProgress {
		return
	}
	switch {
	case prevLen == 0 && newLen > 0:
		Activate(w, tbl, nil, true)
	case prevLen > 0 && newLen == 0:
		Deactivate(w, tbl, nil)
	}
}

// Deinit is table_deinit (spec.md §4.8): if the table has rows, emits
// an OnRemove notification across the full [0, N) range. Never called
// implicitly by Clear or Free.
func Deinit(w *World, tbl *Table) {
	n := tbl.data.Len()
	if n == 0 {
		return
	}
	if w.OnRemove != nil {
		w.OnRemove.Notify(w, tbl.typ, tbl, tbl.data, 0, n)
	}
}

// DeleteAll is table_delete_all: Deinit followed by Clear.
func DeleteAll(w *World, tbl *Table) {
	Deinit(w, tbl)
	Clear(w, tbl)
}

// Free is table_free (spec.md §4.8): releases column buffers, the
// Data envelope, and the query subscription list. No OnRemove, no
// activation — used during world teardown, when there is nothing left
// to observe the transition.
func Free(tbl *Table) {
	if tbl.data != nil {
		for _, col := range tbl.data.Columns {
			col.free()
		}
	}
	tbl.data = nil
	tbl.queries = nil
}

// RegisterQuery is table_register_query (spec.md §4.9): subscribes
// query to tbl. If tbl is already non-empty, immediately activates
// just that one query so it doesn't have to wait for the next
// empty-to-non-empty edge to start iterating rows that already exist.
func RegisterQuery(w *World, tbl *Table, query Query) {
	tbl.queries = append(tbl.queries, query)
	if tbl.Length() > 0 {
		Activate(w, tbl, query, true)
	}
}
