package table

import "testing"

// TestMergeUsesZeroBasedEntityIndexRow pins the §9 Open Question: the
// entity index write inside Merge uses a 0-based row (i + newCountBefore),
// not the 1-based row every other mutation op writes. This is
// deliberate, not a bug — see the Step 1 comment inside merge.go's Merge.
func TestMergeUsesZeroBasedEntityIndexRow(t *testing.T) {
	provider := newFakeProvider().withData(posID, 8).withData(velID, 8)
	w, idx, _, _ := newTestWorld(provider)

	oldTbl := buildTable(t, w, posID)
	newTbl := buildTable(t, w, posID, velID)

	e1 := idx.NewEntry()
	row, _ := Insert(w, oldTbl, oldTbl.data, e1.ID())
	idx.SetTable(e1.ID(), Record{Type: oldTbl.typ, Row: row + 1}, oldTbl)

	if err := Merge(w, nil, newTbl, oldTbl); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	rec, ok := idx.Get(e1.ID())
	if !ok {
		t.Fatalf("entity index lost the record for e1")
	}
	// Only one row moved into an empty newTbl: newCountBefore was 0, so
	// the written row is 0+0 = 0 — one less than the 1-based row (1)
	// every other op would have written for the same physical position.
	if rec.Row != 0 {
		t.Fatalf("Merge must write the literal 0-based row; got %d, want 0", rec.Row)
	}
	if rec.Row != newTbl.data.Len()-1 {
		t.Fatalf("0-based row %d should equal the physical row index %d", rec.Row, newTbl.data.Len()-1)
	}
}

func TestMergeTransplantsColumnsIntoEmptyDestination(t *testing.T) {
	provider := newFakeProvider().withData(posID, 8).withData(velID, 8)
	w, idx, _, _ := newTestWorld(provider)

	oldTbl := buildTable(t, w, posID)
	newTbl := buildTable(t, w, posID, velID)

	e1 := idx.NewEntry()
	row, _ := Insert(w, oldTbl, oldTbl.data, e1.ID())
	oldTbl.data.Columns[0].buf[0] = 'Z'
	idx.SetTable(e1.ID(), Record{Type: oldTbl.typ, Row: row + 1}, oldTbl)

	posBuf := oldTbl.data.Columns[0].buf

	if err := Merge(w, nil, newTbl, oldTbl); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if newTbl.data.Len() != 1 {
		t.Fatalf("newTbl.Len() = %d, want 1", newTbl.data.Len())
	}
	newPosIdx := newTbl.columnIndex(posID)
	if &newTbl.data.Columns[newPosIdx].buf[0] != &posBuf[0] {
		t.Fatalf("transplant into an empty destination column should reuse old's backing array, not copy")
	}
	if oldTbl.data.Len() != 0 {
		t.Fatalf("old table must be left empty after a merge")
	}
	if oldTbl.data.Columns[0].buf != nil {
		t.Fatalf("old table's transplanted column must be nulled out, not just emptied logically")
	}
}

func TestMergeAppendsIntoNonEmptyDestination(t *testing.T) {
	provider := newFakeProvider().withData(posID, 1).withData(velID, 1)
	w, idx, _, _ := newTestWorld(provider)

	oldTbl := buildTable(t, w, posID)
	newTbl := buildTable(t, w, posID, velID)

	existing := idx.NewEntry()
	r, _ := Insert(w, newTbl, newTbl.data, existing.ID())
	newTbl.data.Columns[0].buf[r] = 'A'

	moving := idx.NewEntry()
	r2, _ := Insert(w, oldTbl, oldTbl.data, moving.ID())
	oldTbl.data.Columns[0].buf[r2] = 'B'

	if err := Merge(w, nil, newTbl, oldTbl); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if newTbl.data.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", newTbl.data.Len())
	}
	if string(newTbl.data.Columns[0].buf) != "AB" {
		t.Fatalf("merged column bytes = %q, want %q", newTbl.data.Columns[0].buf, "AB")
	}
	if newTbl.data.Entities[1] != moving.ID() {
		t.Fatalf("moved entity must land at the appended tail row")
	}
}

func TestMergeWithNilNewTableDeletesAll(t *testing.T) {
	provider := newFakeProvider().withData(posID, 1)
	w, idx, _, rem := newTestWorld(provider)
	oldTbl := buildTable(t, w, posID)
	e := idx.NewEntry()
	Insert(w, oldTbl, oldTbl.data, e.ID())

	if err := Merge(w, nil, nil, oldTbl); err != nil {
		t.Fatalf("Merge with nil newTable: %v", err)
	}
	if len(rem.calls) != 1 {
		t.Fatalf("Merge(nil, old) must behave as DeleteAll and notify OnRemove once")
	}
	if oldTbl.data.Len() != 0 {
		t.Fatalf("old table must end up empty")
	}
}

// TestMergeGrowsSupersetOnlyColumn pins spec.md §8 scenario 5: new_table
// carries a column (B) old_table never had at all. That column is
// never visited by the old/new Type walk, so it must still be grown to
// the post-merge row count by hand, the same way Grow extends a
// column — otherwise it silently stays short, desyncing every later
// row access against the entity column.
func TestMergeGrowsSupersetOnlyColumn(t *testing.T) {
	provider := newFakeProvider().withData(posID, 1).withData(velID, 1)
	w, idx, _, _ := newTestWorld(provider)

	oldTbl := buildTable(t, w, posID) // A only
	newTbl := buildTable(t, w, posID, velID) // A, B (superset extension: B)

	existing := idx.NewEntry()
	r, _ := Insert(w, newTbl, newTbl.data, existing.ID())
	newTbl.data.Columns[1].buf[r] = 'X'

	for i := 0; i < 3; i++ {
		e := idx.NewEntry()
		Insert(w, oldTbl, oldTbl.data, e.ID())
	}

	if err := Merge(w, nil, newTbl, oldTbl); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if got := newTbl.data.Len(); got != 4 {
		t.Fatalf("newTbl.Len() = %d, want 4", got)
	}
	velIdx := newTbl.columnIndex(velID)
	if got := newTbl.data.Columns[velIdx].Len(); got != 4 {
		t.Fatalf("superset-only column B length = %d, want 4", got)
	}
	if newTbl.data.Columns[velIdx].buf[r] != 'X' {
		t.Fatalf("existing B row must survive the merge untouched")
	}
}

func TestMergeRejectsNonSupersetDestination(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("merging into a non-superset type must fail loudly")
		}
	}()
	provider := newFakeProvider().withData(posID, 1).withData(velID, 1)
	w, idx, _, _ := newTestWorld(provider)
	oldTbl := buildTable(t, w, posID, velID)
	newTbl := buildTable(t, w, velID) // missing posID: not a superset
	e := idx.NewEntry()
	Insert(w, oldTbl, oldTbl.data, e.ID())

	Merge(w, nil, newTbl, oldTbl)
}
