package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/aggregates"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"go.uber.org/zap"
)

// activeNode resolves the current selection against the live graph.
// It returns false when nothing is selected or when the active id has
// gone stale (node deleted by the collaborator since it was selected);
// both read as "no selection" and callers no-op.
func activeNode(graph *aggregates.Graph, tracker *selection.Tracker) (*entities.Node, bool) {
	id, ok := tracker.Resolve(graph.HasNode)
	if !ok {
		return nil, false
	}
	return graph.NodeByID(id)
}

// commitGraph saves the mutated graph, publishes its pending events and
// signals the rendering layer. Event delivery failures are logged, not
// propagated: the mutation already happened and the snapshot must ship.
func commitGraph(
	ctx context.Context,
	graphRepo ports.GraphRepository,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
	graph *aggregates.Graph,
) error {
	if err := graphRepo.Save(ctx, graph); err != nil {
		return fmt.Errorf("failed to save graph: %w", err)
	}

	if pending := graph.GetUncommittedEvents(); len(pending) > 0 {
		if err := publisher.PublishBatch(ctx, pending); err != nil {
			logger.Warn("Failed to publish domain events", zap.Error(err))
		}
		graph.MarkEventsAsCommitted()
	}

	notifier.GraphChanged()
	return nil
}
