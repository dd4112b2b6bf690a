package table

import "github.com/TheBitDrifter/mask"

// TableEvents are optional host hooks invoked alongside activation
// (activation.go), the same shape the teacher threads through
// table.NewTableBuilder()...WithEvents(Config.tableEvents) — see
// config.go for the package-level default.
type TableEvents struct {
	OnActivate   func(tbl *Table)
	OnDeactivate func(tbl *Table)
}

// TableBuilder constructs a Table with its Type fixed, per spec.md §3:
// "A Table is created externally with its Type fixed; table_init
// allocates the committed Data." The fluent With* surface mirrors the
// teacher's archetype.go construction chain exactly so that a host
// built the way ecs/archetype.go is ports without changing call sites.
type TableBuilder struct {
	schema       *Schema
	elementTypes []ElementType
	events       TableEvents
}

// NewTableBuilder returns an empty TableBuilder whose events default to
// Config.TableEvents until WithEvents overrides them.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{events: Config.TableEvents}
}

// WithSchema sets the schema used to derive the table's component mask.
func (b *TableBuilder) WithSchema(s *Schema) *TableBuilder {
	b.schema = s
	return b
}

// WithElementTypes sets the table's component set. Build sorts and
// deduplicates them into the table's Type, establishing the total
// order every Table and Merge relies on (spec.md §3).
func (b *TableBuilder) WithElementTypes(ets ...ElementType) *TableBuilder {
	b.elementTypes = ets
	return b
}

// WithEvents attaches the table-local activation hooks.
func (b *TableBuilder) WithEvents(events TableEvents) *TableBuilder {
	b.events = events
	return b
}

// Build allocates the Table and its committed Data (table_init).
func (b *TableBuilder) Build(w *World) (*Table, error) {
	typ := dedupSortedType(b.elementTypes)

	tbl := &Table{typ: typ, events: b.events}
	if b.schema != nil {
		var m mask.Mask
		for _, id := range typ {
			m.Mark(b.schema.RowIndexForID(id))
		}
		tbl.compMsk = m
	}
	tbl.data = NewData(w, nil, tbl, typ)
	return tbl, nil
}

// dedupSortedType builds a sorted, duplicate-free Type from ets.
func dedupSortedType(ets []ElementType) Type {
	seen := make(map[EntityID]bool, len(ets))
	typ := make(Type, 0, len(ets))
	for _, et := range ets {
		id := et.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		typ = append(typ, id)
	}
	sortType(typ)
	return typ
}

// sortType sorts ids ascending in place (insertion sort — Types are
// short), establishing the total order every Table.Type and Merge
// depends on.
func sortType(typ Type) {
	for i := 1; i < len(typ); i++ {
		for j := i; j > 0 && typ[j-1] > typ[j]; j-- {
			typ[j-1], typ[j] = typ[j], typ[j-1]
		}
	}
}
