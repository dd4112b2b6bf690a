package table

// Activate is activate_table (spec.md §4.10): a pure signal, never a
// state the table itself tracks. If query is non-nil, only that query
// is notified (the RegisterQuery path); otherwise every query
// currently subscribed to tbl is notified. The table's own TableEvents
// hook, if set, fires once per call, after the query notifications.
func Activate(w *World, tbl *Table, query Query, active bool) {
	if query != nil {
		notifyOne(w, tbl, query, active)
	} else {
		for _, q := range tbl.queries {
			notifyOne(w, tbl, q, active)
		}
	}
	if active && tbl.events.OnActivate != nil {
		tbl.events.OnActivate(tbl)
	}
	if !active && tbl.events.OnDeactivate != nil {
		tbl.events.OnDeactivate(tbl)
	}
}

// Deactivate is Activate(w, tbl, query, false), split out for call-site
// clarity at the empty-transition points (Delete, Clear,
// ReplaceColumns).
func Deactivate(w *World, tbl *Table, query Query) {
	Activate(w, tbl, query, false)
}

func notifyOne(w *World, tbl *Table, query Query, active bool) {
	if w.Queries == nil {
		return
	}
	w.Queries.ActivateTable(w, query, tbl, active)
}
