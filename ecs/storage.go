package ecs

import (
	"errors"
	"fmt"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// Ensure storage implements Storage interface
var _ Storage = &storage{}

var (
	globalEntryIndex = table.Factory.NewEntryIndex()
	globalEntities   = make([]entity, 0)
)

// Storage defines the interface for entity storage and manipulation
type Storage interface {
	Entity(id int) (Entity, error)
	NewEntities(int, ...Component) ([]Entity, error)
	NewOrExistingArchetype(components ...Component) (Archetype, error)
	EnqueueNewEntities(int, ...Component) error
	DestroyEntities(...Entity) error
	EnqueueDestroyEntities(...Entity) error
	RowIndexFor(Component) uint32
	Locked() bool
	AddLock(bit uint32)
	RemoveLock(bit uint32)
	Register(...Component)
	tableFor(...Component) (*table.Table, error)

	TransferEntities(target Storage, entities ...Entity) error
	Enqueue(EntityOperation)
	Archetypes() []ArchetypeImpl
	ActiveArchetypes() []ArchetypeImpl
}

// storage implements the Storage interface
type storage struct {
	locks          mask.Mask256
	schema         *table.Schema
	world          *table.World
	archetypes     *archetypes
	operationQueue EntityOperationsQueue
	active         map[*table.Table]bool
}

// archetypes manages archetype collections and identification
type archetypes struct {
	nextID           archetypeID
	asSlice          []ArchetypeImpl
	idsGroupedByMask map[mask.Mask]archetypeID
}

// newStorage creates a new Storage implementation with the given schema
func newStorage(schema *table.Schema) Storage {
	sto := &storage{
		archetypes: &archetypes{
			nextID:           1,
			idsGroupedByMask: make(map[mask.Mask]archetypeID),
		},
		schema:         schema,
		operationQueue: &entityOperationsQueue{},
		active:         make(map[*table.Table]bool),
	}
	sto.world = table.NewWorld(schema, globalEntryIndex, sto, nil)
	return sto
}

// ActivateTable implements table.QueryActivator: every archetype this
// storage owns registers sto itself as its sole subscribed query (see
// NewOrExistingArchetype), so this is how storage learns which of its
// own tables currently hold rows without re-scanning all of them.
func (sto *storage) ActivateTable(w *table.World, query table.Query, tbl *table.Table, active bool) {
	if active {
		sto.active[tbl] = true
		return
	}
	delete(sto.active, tbl)
}

// Entity retrieves an entity by ID
func (sto *storage) Entity(id int) (Entity, error) {
	return &globalEntities[id-1], nil
}

// NewOrExistingArchetype gets an existing archetype matching the component signature or creates a new one
func (sto *storage) NewOrExistingArchetype(components ...Component) (Archetype, error) {
	var entityMask mask.Mask
	for _, component := range components {
		sto.schema.Register(component)
		bit := sto.schema.RowIndexFor(component)
		entityMask.Mark(bit)
	}
	if id, ok := sto.archetypes.idsGroupedByMask[entityMask]; ok {
		return sto.archetypes.asSlice[id-1], nil
	}

	created, err := newArchetype(sto.world, sto.schema, sto.archetypes.nextID, components...)
	if err != nil {
		return nil, err
	}
	sto.archetypes.asSlice = append(sto.archetypes.asSlice, created)
	sto.archetypes.idsGroupedByMask[entityMask] = created.id
	sto.archetypes.nextID++
	table.RegisterQuery(sto.world, created.table, sto)
	return created, nil
}

// NewEntities creates n new entities with the specified components
func (sto *storage) NewEntities(n int, components ...Component) ([]Entity, error) {
	if sto.Locked() {
		return nil, errors.New("storage is locked")
	}
	if len(components) == 0 {
		return nil, errors.New("must provide at least one component")
	}
	entityArchetype, err := sto.NewOrExistingArchetype(components...)
	if err != nil {
		return nil, err
	}
	tbl := entityArchetype.Table()

	currentLen := len(globalEntities)
	neededCap := currentLen + n
	if cap(globalEntities) < neededCap {
		newCap := max(neededCap, 2*cap(globalEntities))
		newEntities := make([]entity, currentLen, newCap)
		copy(newEntities, globalEntities)
		globalEntities = newEntities
	}
	globalEntities = globalEntities[:neededCap]

	entities := make([]Entity, n)
	data := table.GetData(sto.world, nil, tbl)
	for i := 0; i < n; i++ {
		entry := globalEntryIndex.NewEntry()
		row, err := table.Insert(sto.world, tbl, data, entry.ID())
		if err != nil {
			return nil, err
		}
		globalEntryIndex.SetTable(entry.ID(), table.Record{Type: tbl.Type(), Row: row + 1}, tbl)

		en := &entity{
			Entry:      entry,
			id:         entry.ID(),
			sto:        sto,
			components: components,
		}
		entities[i] = en
		globalEntities[en.id-1] = *en
	}

	return entities, nil
}

// RowIndexFor returns the bit index for a component in the schema
func (sto *storage) RowIndexFor(c Component) uint32 {
	return sto.schema.RowIndexFor(c)
}

// Locked checks if the storage is currently locked
func (sto *storage) Locked() bool {
	return !sto.locks.IsEmpty()
}

func (sto *storage) AddLock(bit uint32) {
	sto.locks.Mark(bit)
}

// RemoveLock releases a specific bit lock and processes queued operations if fully unlocked
func (sto *storage) RemoveLock(bit uint32) {
	sto.locks.Unmark(bit)

	if sto.locks.IsEmpty() {
		if err := sto.operationQueue.ProcessAll(sto); err != nil {
			panic(bark.AddTrace(fmt.Errorf("error processing queued operations: %w", err)))
		}
	}
}

// EnqueueNewEntities either creates entities immediately or queues creation if storage is locked
func (sto *storage) EnqueueNewEntities(count int, components ...Component) error {
	if !sto.Locked() {
		_, err := sto.NewEntities(count, components...)
		if err != nil {
			return fmt.Errorf("failed to create entities directly: %w", err)
		}
		return nil
	}
	sto.operationQueue.Enqueue(
		NewEntityOperation{
			count:      count,
			components: components,
		},
	)
	return nil
}

// DestroyEntities removes entities from storage
func (sto *storage) DestroyEntities(entities ...Entity) error {
	if sto.Locked() {
		return errors.New("storage is locked")
	}
	for _, en := range entities {
		if en == nil {
			continue
		}
		tbl := en.Table()
		data := table.GetData(sto.world, nil, tbl)
		if err := table.Delete(sto.world, nil, tbl, data, en.Index()); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		globalEntryIndex.Free(en.ID())
		index := en.ID() - 1
		if int(index) < len(globalEntities) {
			globalEntities[index] = entity{}
		}
	}
	return nil
}

// EnqueueDestroyEntities either destroys entities immediately or queues destruction if storage is locked
func (sto *storage) EnqueueDestroyEntities(entities ...Entity) error {
	if !sto.Locked() {
		return sto.DestroyEntities(entities...)
	}
	for _, en := range entities {
		sto.operationQueue.Enqueue(
			DestroyEntityOperation{
				entity:   en,
				recycled: en.Recycled(),
			})
	}
	return nil
}

// TransferEntities moves entities from this storage to the target storage
func (sto *storage) TransferEntities(target Storage, entities ...Entity) error {
	if sto.Locked() {
		return errors.New("storage is locked")
	}
	targetSto, ok := target.(*storage)
	if !ok {
		return fmt.Errorf("unsupported target storage implementation: %T", target)
	}
	for _, en := range entities {
		comps := en.Components()
		target.Register(comps...)
		targetArchetype, err := target.NewOrExistingArchetype(comps...)
		if err != nil {
			return err
		}
		if err := transferRow(sto.world, targetSto.world, en.Table(), targetArchetype.Table(), en.ID(), en.Index()); err != nil {
			return err
		}
		en.SetStorage(target)
	}
	return nil
}

// transferTo moves en from its current table to destArchetype's table
// within this same storage (AddComponent/RemoveComponent's path).
func (sto *storage) transferTo(en *entity, destArchetype Archetype) error {
	return transferRow(sto.world, sto.world, en.Table(), destArchetype.Table(), en.ID(), en.Index())
}

// Register adds components to the storage schema
func (sto *storage) Register(comps ...Component) {
	ets := make([]table.ElementType, len(comps))
	for i, c := range comps {
		ets[i] = c
	}
	sto.schema.Register(ets...)
}

// Enqueue adds an operation to the queue
func (sto *storage) Enqueue(op EntityOperation) {
	sto.operationQueue.Enqueue(op)
}

// Archetypes returns all archetypes in this storage
func (sto *storage) Archetypes() []ArchetypeImpl {
	return sto.archetypes.asSlice
}

// ActiveArchetypes returns only the archetypes whose table currently
// holds at least one row, letting a Cursor skip evaluating its query
// against archetypes it already knows are empty.
func (sto *storage) ActiveArchetypes() []ArchetypeImpl {
	out := make([]ArchetypeImpl, 0, len(sto.active))
	for _, arch := range sto.archetypes.asSlice {
		if sto.active[arch.table] {
			out = append(out, arch)
		}
	}
	return out
}

// tableFor gets or creates a table for the given component set
func (sto *storage) tableFor(comps ...Component) (*table.Table, error) {
	arch, err := sto.NewOrExistingArchetype(comps...)
	if err != nil {
		return nil, err
	}
	return arch.Table(), nil
}
