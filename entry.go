package table

// EntryID is the externally visible entity handle, the same numeric
// space as EntityID — every entity id is itself a component-id-shaped
// value that can appear in relation pairs.
type EntryID = EntityID

// Entry is one live (or freed-and-recycled) slot in an EntryIndex: the
// concrete default shape of the §6 "entity index" collaborator,
// addressed by dense integer slot rather than by map lookup, with a
// generation counter so a host can detect a stale handle after reuse
// (the same Recycled() contract the teacher's entity.go checks before
// trusting a cached parent reference).
type Entry interface {
	ID() EntryID
	Index() int
	Recycled() int
	Table() *Table
}

type entrySlot struct {
	id       EntryID
	recycled int
	rec      Record
	tbl      *Table
}

func (s *entrySlot) ID() EntryID    { return s.id }
func (s *entrySlot) Index() int     { return s.rec.Row - 1 }
func (s *entrySlot) Recycled() int  { return s.recycled }
func (s *entrySlot) Table() *Table  { return s.tbl }

// EntryIndex is a dense pool of entrySlots, the concrete allocator the
// teacher's entity.go addresses as `globalEntryIndex`. It also
// implements EntityIndexer, so it can be handed directly to NewWorld
// as the entity index collaborator: Get/Set operate on the slot
// indexed by id-1 (ids are 1-based handles; 0 is never issued).
type EntryIndex struct {
	slots []*entrySlot
	free  []int
}

// NewEntryIndex returns an empty EntryIndex.
func NewEntryIndex() *EntryIndex {
	return &EntryIndex{}
}

// NewEntry allocates a fresh Entry, reusing a freed slot (and bumping
// its generation) when one is available.
func (ei *EntryIndex) NewEntry() Entry {
	if n := len(ei.free); n > 0 {
		idx := ei.free[n-1]
		ei.free = ei.free[:n-1]
		slot := ei.slots[idx]
		slot.recycled++
		slot.rec = Record{}
		slot.tbl = nil
		return slot
	}
	slot := &entrySlot{id: EntryID(len(ei.slots) + 1)}
	ei.slots = append(ei.slots, slot)
	return slot
}

// Free returns the slot for id to the pool. Its next allocation bumps
// Recycled(), invalidating any handle still referencing the old id.
func (ei *EntryIndex) Free(id EntryID) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(ei.slots) {
		return
	}
	ei.slots[idx].rec = Record{}
	ei.slots[idx].tbl = nil
	ei.free = append(ei.free, idx)
}

// Entry returns the slot at the given dense index (id-1).
func (ei *EntryIndex) Entry(idx int) (Entry, error) {
	if idx < 0 || idx >= len(ei.slots) {
		return nil, InternalError{Op: "EntryIndex.Entry", Reason: "index out of range"}
	}
	return ei.slots[idx], nil
}

// Get implements EntityIndexer.
func (ei *EntryIndex) Get(id EntityID) (Record, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(ei.slots) || ei.slots[idx].tbl == nil {
		return Record{}, false
	}
	return ei.slots[idx].rec, true
}

// Set implements EntityIndexer. It replaces only the slot's Record;
// the *Table stored by the last SetTable call is kept as it was, so a
// slot SetTable never filled still reads as absent through Get.
func (ei *EntryIndex) Set(id EntityID, rec Record) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(ei.slots) {
		return
	}
	ei.slots[idx].rec = rec
}

// SetTable additionally records which *Table backs id, for Entry()'s
// Table() accessor. The plain EntityIndexer.Set contract (spec.md §6)
// only carries a Type, not a live table pointer, so hosts that need
// Entry.Table() to resolve call this instead of, or in addition to,
// Set.
func (ei *EntryIndex) SetTable(id EntityID, rec Record, tbl *Table) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(ei.slots) {
		return
	}
	ei.slots[idx].rec = rec
	ei.slots[idx].tbl = tbl
}

var _ EntityIndexer = (*EntryIndex)(nil)
