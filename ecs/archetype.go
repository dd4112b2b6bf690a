package ecs

import "github.com/TheBitDrifter/table"

type archetypeID uint32

// archetype pairs an identity with its backing table.
type archetype struct {
	id    archetypeID
	table *table.Table
}

// ArchetypeImpl is the concrete shape behind the Archetype interface,
// exposed so storage.go and cursor.go can hold slices of it directly
// instead of boxing every archetype behind the interface.
type ArchetypeImpl = archetype

// Archetype is a collection of entities sharing the same component set.
type Archetype interface {
	ID() uint32
	Table() *table.Table
}

func newArchetype(w *table.World, schema *table.Schema, id archetypeID, components ...Component) (archetype, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build(w)
	if err != nil {
		return archetype{}, err
	}
	return archetype{
		table: tbl,
		id:    id,
	}, nil
}

func (a archetype) ID() uint32 {
	return uint32(a.id)
}

func (a archetype) Table() *table.Table {
	return a.table
}
