package table

// ComponentDescriptor is what a ComponentProvider returns for a
// data-bearing component: its fixed per-row byte size. Tags and
// relation ids never reach this type — see ComponentProvider.
type ComponentDescriptor struct {
	Size int
}

// ComponentProvider is the §6 "component descriptor lookup"
// collaborator. For a given component id it reports one of three
// states (spec.md §4.1):
//
//   - a data-bearing component: (desc, KindData)
//   - a tag (zero-byte payload): (_, KindTag)
//   - absent — a relation id or unknown id: (_, KindAbsent)
type ComponentProvider interface {
	GetComponent(w *World, stage *Stage, id EntityID) (desc ComponentDescriptor, kind ComponentKind)
}

// ComponentKind classifies the result of a ComponentProvider lookup.
type ComponentKind int

const (
	// KindAbsent means no descriptor exists for the id: a relation id
	// or an id the host never registered. Contributes no column.
	KindAbsent ComponentKind = iota
	// KindTag means the descriptor exists with size 0. Contributes no
	// column but does count toward table membership.
	KindTag
	// KindData means the descriptor carries a positive byte size.
	// Contributes exactly one Column to every Data of this Type.
	KindData
)

// Record is the (table, row) pair the entity index maps an entity id
// to. Row is 1-based everywhere except the interior of Merge
// (spec.md §4.11, §9 Open Question): 0 means "not in any table".
type Record struct {
	Type Type
	Row  int
}

// EntityIndexer is the §6 entity index collaborator: map_get/map_set
// over entity id. The core never iterates the index; it only reads
// and writes individual records by id as rows move.
type EntityIndexer interface {
	Get(id EntityID) (Record, bool)
	Set(id EntityID, rec Record)
}

// QueryActivator is the §6 query activation callback. The core treats
// activation as a pure, stateless signal: it never asks whether a
// query is already active, it just reports the edge.
type QueryActivator interface {
	ActivateTable(w *World, query Query, tbl *Table, active bool)
}

// Query is an opaque handle to whatever the host's query engine uses
// to identify one registered query. The core only ever threads it
// through to QueryActivator.ActivateTable and table.queries; it never
// inspects it.
type Query interface{}

// RemoveNotifier is the §6 OnRemove dispatcher, invoked only by
// Deinit and DeleteAll (spec.md §4.8) — never by Clear or Free.
type RemoveNotifier interface {
	Notify(w *World, typ Type, tbl *Table, data *Data, startRow, count int)
}
