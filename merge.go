package table

// Merge is table_merge (spec.md §4.11): moves every row of old into
// new, appending. Preconditions (checked where cheap, otherwise left
// to fail loudly inside the column walk): old != new, old.Type() !=
// new.Type(), and new.Type() is a superset of old.Type() under the
// shared ascending id order.
//
// If newTable is nil, Merge degrades to DeleteAll(oldTable) — the "no
// destination archetype" case (e.g. removing an entity's last
// component down to an empty Type a host chooses not to keep a table
// for).
//
// Merge intentionally never calls Activate/Deactivate itself: spec.md
// §4.11 does not mention activation at all, unlike Delete, Clear, and
// ReplaceColumns, which call it out explicitly. A host driving a merge
// during commit is expected to pair it with whatever ReplaceColumns or
// Clear call actually performs the corresponding empty/non-empty
// transition.
func Merge(w *World, stage *Stage, newTable, oldTable *Table) error {
	if newTable == nil {
		DeleteAll(w, oldTable)
		return nil
	}
	if oldTable == newTable {
		fail("table_merge", "old_table and new_table are the same table")
	}
	if oldTable.typ.Equal(newTable.typ) {
		fail("table_merge", "old_table and new_table have equal types")
	}

	newData := GetData(w, stage, newTable)
	oldData := GetData(w, stage, oldTable)

	oldCount := oldData.Len()
	newCountBefore := newData.Len()

	// Step 1 (spec.md §4.11, §9 Open Question): the entity index is
	// written with a 0-based row here, the one place in this package
	// that does so — every other write uses a 1-based row. This is
	// preserved exactly as the spec describes it, not "corrected";
	// see merge_test.go for the test pinning this behavior and
	// SPEC_FULL.md §5 for what a host must do about it.
	indexer := entityIndexerFor(w, stage, "table_merge")
	for i := 0; i < oldCount; i++ {
		indexer.Set(oldData.Entities[i], Record{
			Type: newTable.typ,
			Row:  i + newCountBefore,
		})
	}

	if oldCount == 0 {
		return nil
	}

	// Step 3: walk both Types in parallel, merging aligned
	// data-bearing columns. (The C source's "start the walk at
	// column 1, entity column at 0" bookkeeping doesn't apply here:
	// Go's Data keeps the entity column in Entities, separate from
	// Columns, so the walk below only ever concerns component
	// columns.) Both Types are sorted ascending, so this is a
	// standard subset-check-and-merge: advance past any new-only ids
	// smaller than the current old id, then the old id must line up
	// exactly with the new id or new isn't a superset after all.
	merged := make([]bool, len(newTable.typ))
	iNew, iOld := 0, 0
	for iOld < len(oldTable.typ) {
		oldID := oldTable.typ[iOld]
		if oldID.IsRelation() {
			break
		}
		for iNew < len(newTable.typ) && newTable.typ[iNew] < oldID {
			iNew++
		}
		if iNew >= len(newTable.typ) || newTable.typ[iNew] != oldID {
			fail("table_merge", "new_type is not a superset of old_type")
		}
		mergeVector(newData.Columns[iNew], oldData.Columns[iOld])
		merged[iNew] = true
		iNew++
		iOld++
	}

	// Step 3b: any new-type column old_table never carried (a superset
	// extension, spec.md §8 scenario 5's "B column") wasn't touched by
	// the walk above and so never grew to the post-merge row count.
	// Grow it by oldCount the same way Grow extends a column, leaving
	// the appended rows uninitialized (spec.md §4.3).
	for i, col := range newData.Columns {
		if !merged[i] && col.IsData() {
			col.grow(oldCount)
		}
	}

	// Step 4: append the entity-id column wholesale.
	newData.Entities = append(newData.Entities, oldData.Entities...)
	oldData.Entities = nil

	return nil
}

// mergeVector is merge_vector (spec.md §4.12): if dst is empty, the
// destination's own (possibly nil) buffer is dropped and src's buffer
// is transplanted in directly — zero copies, the common case when
// promoting a previously-unique entity between archetypes. Otherwise
// dst is grown and src's bytes are appended to the tail.
func mergeVector(dst, src *Column) {
	if !dst.IsData() && !src.IsData() {
		return
	}
	if dst.Len() == 0 {
		dst.free()
		dst.buf = src.buf
		src.buf = nil
		return
	}
	dst.buf = append(dst.buf, src.buf...)
	src.free()
}
