package table

import "reflect"

// Schema is the host's component type registry: it assigns every
// component id a stable bit index (consumed by Table.Mask and the
// ecs query engine's archetype masks, mirroring the teacher's
// storage.go/query.go use of mask.Mask) and doubles as the simplest
// possible ComponentProvider, deriving each component's byte size from
// its registered reflect.Type.
//
// Schema is an out-of-spec convenience, not part of spec.md's core:
// the core only requires *some* ComponentProvider and *some* id-to-bit
// mapping for the host's masks, and Schema is the concrete shape the
// teacher's call sites (schema.Register, schema.RowIndexFor) expect.
type Schema struct {
	indices map[EntityID]uint32
	sizes   map[EntityID]int
	tags    map[EntityID]bool
	next    uint32
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		indices: make(map[EntityID]uint32),
		sizes:   make(map[EntityID]int),
		tags:    make(map[EntityID]bool),
	}
}

// Register assigns a bit index and a byte size to every id in ets not
// already registered. Re-registering an id is a no-op, the same
// idempotence the teacher's storage.go relies on when it calls
// Register on every NewEntities/TransferEntities call.
func (s *Schema) Register(ets ...ElementType) {
	for _, et := range ets {
		id := et.ID()
		if _, ok := s.indices[id]; ok {
			continue
		}
		s.indices[id] = s.next
		s.next++
		if t := et.Type(); t != nil && t.Size() > 0 {
			s.sizes[id] = int(t.Size())
		} else {
			s.tags[id] = true
		}
	}
}

// RowIndexFor returns the bit index assigned to et's id. Panics via
// fail if et was never registered — the same programmer-error
// contract as every other collaborator lookup in this package.
func (s *Schema) RowIndexFor(et ElementType) uint32 {
	return s.RowIndexForID(et.ID())
}

// RowIndexForID is RowIndexFor without requiring a full ElementType,
// for callers (TableBuilder.Build) that only have a bare EntityID.
func (s *Schema) RowIndexForID(id EntityID) uint32 {
	idx, ok := s.indices[id]
	if !ok {
		fail("schema.RowIndexFor", "component not registered")
	}
	return idx
}

// GetComponent implements ComponentProvider: a positive size for a
// data-bearing component, KindTag for a registered zero-size type, and
// KindAbsent for anything never registered (which, per spec.md §4.1,
// the core then treats as a relation id).
func (s *Schema) GetComponent(w *World, stage *Stage, id EntityID) (ComponentDescriptor, ComponentKind) {
	if size, ok := s.sizes[id]; ok {
		return ComponentDescriptor{Size: size}, KindData
	}
	if s.tags[id] {
		return ComponentDescriptor{}, KindTag
	}
	return ComponentDescriptor{}, KindAbsent
}

var _ ComponentProvider = (*Schema)(nil)

// ElementType is the §6 identity of one component: a stable id plus
// its Go type, used to derive a byte size and a schema bit index.
// Component (the ecs-layer public type) embeds this.
type ElementType interface {
	ID() EntityID
	Type() reflect.Type
}

var nextElementID EntityID = LastBuiltin + 1

// elementType is the concrete ElementType every FactoryNewElementType
// call produces: a freshly allocated id plus the reified T.
type elementType[T any] struct {
	id EntityID
}

func (e elementType[T]) ID() EntityID { return e.id }

func (e elementType[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// FactoryNewElementType allocates a new component id for T and
// returns its ElementType identity. Ids are handed out past
// LastBuiltin, so every user-defined component is excluded from a
// Table's HasBuiltins flag.
func FactoryNewElementType[T any]() ElementType {
	id := nextElementID
	nextElementID++
	return elementType[T]{id: id}
}
