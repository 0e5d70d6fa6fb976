package ports

import (
	"context"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/aggregates"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/events"
)

// GraphRepository is the port for the editor session's graph store.
// The session owns exactly one graph, so the interface is load/save
// rather than keyed lookup. The production implementation is in-memory;
// the domain doesn't know or care.
type GraphRepository interface {
	// Load returns the session graph
	Load(ctx context.Context) (*aggregates.Graph, error)

	// Save persists the graph after a mutation
	Save(ctx context.Context, graph *aggregates.Graph) error
}

// EventPublisher delivers domain events to in-process subscribers
type EventPublisher interface {
	// Publish delivers a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch delivers events in order
	PublishBatch(ctx context.Context, batch []events.DomainEvent) error
}

// ChangeNotifier is the explicit "store changed" signal the rendering
// layer subscribes to. The core produces a new immutable snapshot per
// mutation; this is only the propagation mechanism.
type ChangeNotifier interface {
	// GraphChanged signals that the node or edge collections changed
	GraphChanged()

	// SelectionChanged signals that the active node changed
	SelectionChanged()
}
