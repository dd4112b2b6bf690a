package table

// Insert is table_insert (spec.md §4.3): appends one row holding
// entity to data, growing every data-bearing column by one
// uninitialized element. The caller owns writing component values into
// the new row and updating the entity index with the returned row
// (1-based: row+1).
func Insert(w *World, tbl *Table, data *Data, entity EntityID) (row int, err error) {
	data.Entities = append(data.Entities, entity)
	row = data.Len() - 1

	reallocated := false
	for _, col := range data.Columns {
		if col.grow(1) {
			reallocated = true
		}
	}

	if !w.InProgress && row == 0 {
		Activate(w, tbl, nil, true)
	}
	if reallocated && data == tbl.data {
		w.ShouldResolve = true
	}
	return row, nil
}

// Grow is table_grow (spec.md §4.4): allocates count contiguous rows
// whose entity ids run from firstEntity upward, returning the first
// new row. All data-bearing columns get count uninitialized slots.
func Grow(w *World, tbl *Table, data *Data, count int, firstEntity EntityID) (firstRow int, err error) {
	if count <= 0 {
		return data.Len(), nil
	}
	before := data.Len()
	firstRow = before

	for i := 0; i < count; i++ {
		data.Entities = append(data.Entities, firstEntity+EntityID(i))
	}

	reallocated := false
	for _, col := range data.Columns {
		if col.grow(count) {
			reallocated = true
		}
	}

	if !w.InProgress && before == 0 {
		Activate(w, tbl, nil, true)
	}
	if reallocated && data == tbl.data {
		w.ShouldResolve = true
	}
	return firstRow, nil
}

// SetSize is table_set_size: reconciles data to hold exactly n rows,
// growing or truncating every data-bearing column and the entity
// column to match. Named in spec.md §6's operation list but not walked
// through in §4; implemented by sharing Grow's realloc-detection and
// Delete's truncation, since growing to n is Grow(n-N) (with entity
// ids starting at 0) and shrinking to n is N-n consecutive tail
// deletes without the interior swap-remove; outside in-progress,
// shrinking a non-empty table to 0 rows deactivates it.
func SetSize(w *World, tbl *Table, data *Data, n int) error {
	cur := data.Len()
	switch {
	case n > cur:
		_, err := Grow(w, tbl, data, n-cur, 0)
		return err
	case n < cur:
		wasNonEmpty := cur > 0
		data.Entities = data.Entities[:n]
		reallocated := false
		for _, col := range data.Columns {
			if col.setLen(n) {
				reallocated = true
			}
		}
		if reallocated && data == tbl.data {
			w.ShouldResolve = true
		}
		if !w.InProgress && wasNonEmpty && n == 0 {
			Activate(w, tbl, nil, false)
		}
	}
	return nil
}
