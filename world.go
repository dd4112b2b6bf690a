package table

// World bundles the scalar flags and collaborator set every mutation
// op needs. spec.md §9 is explicit that in_progress, should_resolve,
// and the per-stage shadow maps must be passed explicitly rather than
// hidden in package globals; World is that explicit handle.
type World struct {
	// InProgress gates whether mutations target the committed Data
	// (false) or a per-stage shadow (true). See GetData in stage.go.
	InProgress bool

	// ShouldResolve is set by Insert/Grow whenever a column on the
	// committed Data reallocates, so that a host caching raw pointers
	// into column storage knows to refresh them (spec.md §5, §7.3).
	// It is purely informational; nothing in this package clears it
	// or treats it as an error.
	ShouldResolve bool

	Components ComponentProvider
	Entities   EntityIndexer
	Queries    QueryActivator
	OnRemove   RemoveNotifier
}

// NewWorld constructs a World from its four collaborators. Any of them
// may be nil if the corresponding operations are never exercised.
// Operations that need a missing component provider or entity index
// fail with InternalError rather than a nil-pointer panic, per spec.md
// §7.2; with a nil query activator or OnRemove notifier, activation
// and OnRemove notifications are skipped.
func NewWorld(components ComponentProvider, entities EntityIndexer, queries QueryActivator, onRemove RemoveNotifier) *World {
	return &World{
		Components: components,
		Entities:   entities,
		Queries:    queries,
		OnRemove:   onRemove,
	}
}

func (w *World) entityIndexer(op string) EntityIndexer {
	if w == nil || w.Entities == nil {
		fail(op, "nil entity index collaborator")
	}
	return w.Entities
}

func (w *World) componentProvider(op string) ComponentProvider {
	if w == nil || w.Components == nil {
		fail(op, "nil component provider collaborator")
	}
	return w.Components
}
