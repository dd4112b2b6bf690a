package ecs

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/table"
)

// Verify entity implements Entity interface
var _ Entity = &entity{}

// Entity represents a game object with components and hierarchical relationships
type Entity interface {
	table.Entry

	SetParent(parent Entity, callback EntityDestroyCallback) error
	Parent() Entity

	SetDestroyCallback(EntityDestroyCallback) error

	AddComponent(Component) error
	AddComponentWithValue(Component, any) error
	RemoveComponent(Component) error

	EnqueueAddComponent(Component) error
	EnqueueAddComponentWithValue(Component, any) error
	EnqueueRemoveComponent(Component) error

	Components() []Component
	ComponentsAsString() string

	Valid() bool
	Storage() Storage
	SetStorage(Storage)
}

// EntityDestroyCallback is called when an entity is destroyed
type EntityDestroyCallback func(Entity)

// entity implements the Entity interface
type entity struct {
	table.Entry
	id            table.EntryID
	sto           Storage
	relationships relationships
	components    []Component
}

// relationships tracks parent-child relationships and destroy callbacks
type relationships struct {
	recycled  int
	parent    Entity
	onDestroy EntityDestroyCallback
}

// ID returns the entity's unique identifier
func (e *entity) ID() table.EntryID {
	return e.id
}

// Index returns the entity's index in its table
func (e *entity) Index() int {
	return e.entry().Index()
}

// Recycled returns the entity's recycled count
func (e *entity) Recycled() int {
	return e.entry().Recycled()
}

// Table returns the table this entity belongs to
func (e *entity) Table() *table.Table {
	return e.entry().Table()
}

// Storage returns the storage this entity belongs to
func (e *entity) Storage() Storage {
	return e.sto
}

// SetParent establishes a parent-child relationship with another entity
func (e *entity) SetParent(parent Entity, callback EntityDestroyCallback) error {
	if e.relationships.parent != nil {
		return EntityRelationError{child: e, parent: parent}
	}
	e.relationships.parent = parent
	e.relationships.recycled = parent.Recycled()
	return parent.SetDestroyCallback(callback)
}

// Parent returns the parent entity if it exists and hasn't been recycled
func (e *entity) Parent() Entity {
	if e.relationships.parent != nil {
		if e.relationships.parent.Recycled() != e.relationships.recycled {
			return nil
		}
		return e.relationships.parent
	}
	return nil
}

// SetDestroyCallback sets the callback to be invoked when this entity is destroyed
func (e *entity) SetDestroyCallback(callback EntityDestroyCallback) error {
	e.relationships.onDestroy = callback
	return nil
}

// AddComponent adds a component to the entity, moving it to a new archetype if needed
func (e *entity) AddComponent(c Component) error {
	if e.sto.Locked() {
		return errors.New("storage is locked")
	}

	originTable := e.Table()
	if originTable.Contains(c.ID()) {
		return nil
	}
	for _, comp := range e.components {
		if comp.ID() == c.ID() {
			return nil
		}
	}

	newComps := append(append([]Component{}, e.components...), c)
	destArchetype, err := e.sto.NewOrExistingArchetype(newComps...)
	if err != nil {
		return err
	}
	sto, ok := e.sto.(*storage)
	if !ok {
		return fmt.Errorf("unsupported storage implementation: %T", e.sto)
	}
	if err := sto.transferTo(e, destArchetype); err != nil {
		return err
	}
	e.components = newComps
	return nil
}

// AddComponentWithValue adds a component with an initial value. The
// transfer itself goes through AddComponent; once the entity is on its
// new archetype's table, the value is written in directly via
// table.SetRawValue rather than walking reflect-typed column slices.
func (e *entity) AddComponentWithValue(c Component, value any) error {
	originTable := e.Table()
	alreadyHasComponent := originTable.Contains(c.ID())
	if err := e.AddComponent(c); err != nil {
		return err
	}
	if alreadyHasComponent {
		return nil
	}
	return table.SetRawValue(e.Table(), c.ID(), e.Index(), value)
}

// RemoveComponent removes a component from the entity, moving it to a new archetype
func (e *entity) RemoveComponent(c Component) error {
	if e.sto.Locked() {
		return errors.New("storage is locked")
	}
	originTable := e.Table()
	if !originTable.Contains(c.ID()) {
		return nil
	}
	newComps := make([]Component, 0, len(e.components))
	for _, comp := range e.components {
		if comp.ID() != c.ID() {
			newComps = append(newComps, comp)
		}
	}
	destArchetype, err := e.sto.NewOrExistingArchetype(newComps...)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}
	sto, ok := e.sto.(*storage)
	if !ok {
		return fmt.Errorf("unsupported storage implementation: %T", e.sto)
	}
	if err := sto.transferTo(e, destArchetype); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	e.components = newComps
	return nil
}

// EnqueueAddComponent queues a component addition or executes immediately if storage isn't locked
func (e *entity) EnqueueAddComponent(c Component) error {
	if !e.sto.Locked() {
		return e.AddComponent(c)
	}
	e.sto.Enqueue(AddComponentOperation{
		entity:    e,
		recycled:  e.Recycled(),
		component: c,
		storage:   e.sto,
	})
	return nil
}

// EnqueueAddComponentWithValue queues a component addition with value or executes immediately
func (e *entity) EnqueueAddComponentWithValue(c Component, val any) error {
	if !e.sto.Locked() {
		return e.AddComponentWithValue(c, val)
	}
	e.sto.Enqueue(AddComponentOperation{
		entity:    e,
		recycled:  e.Recycled(),
		component: c,
		value:     val,
		storage:   e.sto,
	})
	return nil
}

// EnqueueRemoveComponent queues a component removal or executes immediately if storage isn't locked
func (e *entity) EnqueueRemoveComponent(c Component) error {
	if !e.sto.Locked() {
		return e.RemoveComponent(c)
	}
	e.sto.Enqueue(RemoveComponentOperation{
		entity:    e,
		recycled:  e.Recycled(),
		component: c,
		storage:   e.sto,
	})
	return nil
}

// entry returns the table entry for this entity
func (e *entity) entry() table.Entry {
	en, err := globalEntryIndex.Entry(int(e.id - 1))
	if err != nil {
		panic(bark.AddTrace(err))
	}
	return en
}

// Components returns all components attached to this entity
func (e *entity) Components() []Component {
	return e.components
}

// ComponentsAsString returns a sorted, formatted string of component names
func (e *entity) ComponentsAsString() string {
	if len(e.components) == 0 {
		return "[]"
	}

	var components []string
	for _, c := range e.components {
		typeName := reflect.TypeOf(c).String()
		typeName = strings.TrimPrefix(typeName, "*")
		parts := strings.Split(typeName, ".")
		name := parts[len(parts)-1]
		name = strings.TrimSuffix(name, "]")

		components = append(components, name)
	}

	sort.Strings(components)

	return "[" + strings.Join(components, ", ") + "]"
}

// Valid returns whether this entity has a valid ID
func (e entity) Valid() bool {
	return e.id != 0
}

// SetStorage sets the storage for this entity
func (e *entity) SetStorage(sto Storage) {
	e.sto = sto
}
