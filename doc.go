/*
Package table implements the archetype table storage core of an
Entity-Component-System: the column-major, row-dense store backing one
archetype, with swap-remove deletion, bulk growth, row rotation,
superset merge between archetypes, edge-triggered activation signals
for queries, and a per-stage shadow mechanism that isolates in-progress
mutations from whatever is iterating the committed store.

A Table owns an immutable Type (its ordered, duplicate-free component
id list) and a mutable, committed Data: one packed Column per
data-bearing component plus a parallel entity-id column, all indexed by
a dense row number. Tag components and relation ids contribute to a
Table's identity but never to its column storage.

Package table does not know about entities beyond their bare id, does
not parse queries, and does not schedule systems. Those concerns live
in the host layer that embeds a World and supplies the collaborator
interfaces declared in collaborators.go: a component size lookup, an
entity index, a query activation sink, and an OnRemove notifier. See
the ecs subpackage for a concrete host built on top of this core.

Basic usage:

	w := table.NewWorld(componentProvider, entityIndex, queryActivator, removeNotifier)
	tbl, err := table.NewTableBuilder().
		WithElementTypes(posType, velType).
		Build(w)
	data := table.GetData(w, nil, tbl)
	row, err := table.Insert(w, tbl, data, entityID)
*/
package table
