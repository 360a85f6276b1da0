/*
Package depot provides a small entity/component data layer for games and simulations.

Entities are plain identifiers, components are plain values attached to them, and
rules scan every entity holding a given component type. Storage is sparse and
type-indexed: one storage per component type, created lazily the first time the
type is written, read or iterated.

Core Concepts:

  - ID: A unique, strictly increasing entity identifier.
  - Component: A typed handle for reading and writing one kind of value.
  - Each: Visits every entity holding a component, writing back the rule's result.
  - System: A named rule (or a world-independent trigger) for later execution.

Basic Usage:

	world := depot.Factory.NewWorld()

	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()

	id := world.NewID()
	position.Write(world, id, Position{})
	velocity.Write(world, id, Velocity{X: 1, Y: 2})

	position.Each(world, func(w *depot.World, id depot.ID, pos Position) Position {
		vel, ok, _ := velocity.Read(w, id)
		if ok {
			pos.X += vel.X
			pos.Y += vel.Y
		}
		return pos
	})

Rules may write, remove and iterate from inside their callback, including nested
iteration over the same component type. The set of entities visited by a pass is
fixed before the first callback runs.

A World is meant to be driven by a single goroutine.
*/
package depot
