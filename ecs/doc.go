/*
Package ecs provides an Entity-Component-System (ECS) framework built
on top of the table package's archetype storage core.

It offers a performant approach to managing game entities through
component-based design, keeping entities with the same component types
together in one table for cache-friendly iteration.

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A data container that defines entity attributes.
  - Archetype: A collection of entities sharing the same component types.
  - Query: A way to find entities with specific component combinations.

Basic Usage:

	// Create storage with schema
	schema := table.Factory.NewSchema()
	storage := ecs.Factory.NewStorage(schema)

	// Define components
	position := ecs.FactoryNewComponent[Position]()
	velocity := ecs.FactoryNewComponent[Velocity]()

	// Create entities
	entities, _ := storage.NewEntities(100, position, velocity)

	// Query entities and process them
	query := ecs.Factory.NewQuery()
	queryNode := query.And(position, velocity)
	cursor := ecs.Factory.NewCursor(queryNode, storage)

	for range cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}
*/
package ecs
