package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"go.uber.org/zap"
)

// RemoveFieldHandler deletes the field at the given index on the
// selected concept, preserving the relative order of the rest.
type RemoveFieldHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewRemoveFieldHandler creates a new handler instance
func NewRemoveFieldHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *RemoveFieldHandler {
	return &RemoveFieldHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the remove field command
func (h *RemoveFieldHandler) Handle(ctx context.Context, cmd commands.RemoveFieldCommand) error {
	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	node, ok := activeNode(graph, h.tracker)
	if !ok {
		return nil
	}

	fields := node.Fields()
	if cmd.Index < 0 || cmd.Index >= len(fields) {
		return nil
	}

	fields = append(fields[:cmd.Index], fields[cmd.Index+1:]...)
	graph.UpdateNodeData(node.ID(), entities.NodeDataPatch{Fields: &fields})

	return commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph)
}
