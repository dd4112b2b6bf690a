package ecs

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/table"
)

// Ensure Cursor implements iCursor interface
var _ iCursor = &Cursor{}

// iCursor defines the interface for iterating over entities in storage
type iCursor interface {
	Entities() iter.Seq2[int, *table.Table]
	Next() iter.Seq[int]
}

// Cursor provides iteration over filtered entities in storage
type Cursor struct {
	query            QueryNode
	storage          Storage
	currentArchetype ArchetypeImpl
	storageIndex     int
	entityIndex      int
	remaining        int
	lockBit          uint32

	initialized     bool
	matchedStorages []ArchetypeImpl
}

// nextCursorLockBit hands out storage lock bits to Cursors in turn,
// cycling through the 256 bits of the lock mask, so that several
// cursors can hold a lock on the same storage at once without
// releasing each other's lock early; the 257th cursor reuses bit 0.
var nextCursorLockBit uint32

func allocCursorLockBit() uint32 {
	bit := nextCursorLockBit % 256
	nextCursorLockBit++
	return bit
}

// newCursor creates a new cursor for the given query and storage
func newCursor(query QueryNode, storage Storage) *Cursor {
	return &Cursor{
		query:   query,
		storage: storage,
		lockBit: allocCursorLockBit(),
	}
}

// Next returns an iterator over every remaining entity index matching
// the cursor's query, driving the same archetype-by-archetype walk as
// Entities but yielding only the cursor's 1-based position within the
// current archetype (EntityIndex, one past the row) — callers read the current
// entity/components through CurrentEntity and the AccessibleComponent
// Get*FromCursor methods.
func (c *Cursor) Next() iter.Seq[int] {
	return func(yield func(int) bool) {
		if !c.initialized {
			c.Initialize()
		}

		for c.storageIndex < len(c.matchedStorages) {
			c.currentArchetype = c.matchedStorages[c.storageIndex]
			c.remaining = c.currentArchetype.table.Length()

			for c.entityIndex < c.remaining {
				c.entityIndex++
				if !yield(c.entityIndex) {
					c.Reset()
					return
				}
			}

			c.entityIndex = 0
			c.storageIndex++
		}

		c.Reset()
	}
}

// Entities returns an iterator sequence over entities matching the query
func (c *Cursor) Entities() iter.Seq2[int, *table.Table] {
	return func(yield func(int, *table.Table) bool) {
		c.Initialize()

		for c.storageIndex < len(c.matchedStorages) {
			c.currentArchetype = c.matchedStorages[c.storageIndex]
			c.remaining = c.currentArchetype.table.Length()

			for c.entityIndex < c.remaining {
				if !yield(c.entityIndex, c.currentArchetype.table) {
					c.Reset()
					return
				}
				c.entityIndex++
			}

			c.entityIndex = 0
			c.storageIndex++
		}

		c.Reset()
	}
}

// Initialize sets up the cursor by finding matching archetypes
func (c *Cursor) Initialize() {
	if c.initialized {
		return
	}

	c.storage.AddLock(c.lockBit)
	c.matchedStorages = make([]ArchetypeImpl, 0)

	// Only archetypes the storage has observed a non-empty edge for are
	// candidates at all, sparing a query evaluation against archetypes
	// known to hold nothing.
	for _, arch := range c.storage.ActiveArchetypes() {
		if c.query.Evaluate(arch, c.storage) {
			c.matchedStorages = append(c.matchedStorages, arch)
		}
	}

	if len(c.matchedStorages) > 0 {
		c.storageIndex = 0
		c.currentArchetype = c.matchedStorages[0]
		c.remaining = c.currentArchetype.table.Length()
	}

	c.initialized = true
}

// Reset clears cursor state and releases the storage lock
func (c *Cursor) Reset() {
	c.storageIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.matchedStorages = nil
	c.initialized = false
	c.storage.RemoveLock(c.lockBit)
}

// CurrentEntity returns the entity at the current cursor position
func (c *Cursor) CurrentEntity() (Entity, error) {
	id, ok := c.currentArchetype.table.EntityAt(c.entityIndex - 1)
	if !ok {
		return nil, fmt.Errorf("no entity at current cursor position")
	}
	return c.storage.Entity(int(id))
}

// EntityAtOffset returns an entity at the specified offset from current position
func (c *Cursor) EntityAtOffset(offset int) (Entity, error) {
	id, ok := c.currentArchetype.table.EntityAt(c.entityIndex - 1 + offset)
	if !ok {
		return nil, fmt.Errorf("no entity at offset %d from current cursor position", offset)
	}
	return c.storage.Entity(int(id))
}

// EntityIndex returns the current entity index within the current archetype
func (c *Cursor) EntityIndex() int {
	return c.entityIndex
}

// RemainingInArchetype returns the number of entities left in the current archetype
func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

// TotalMatched returns the total number of entities matching the query
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.Initialize()
	}

	total := 0
	for _, arch := range c.matchedStorages {
		total += arch.table.Length()
	}

	c.Reset()
	return total
}
