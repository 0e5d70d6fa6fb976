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

// RenameConceptHandler renames the currently selected concept.
// Without a live selection the edit is a silent no-op.
type RenameConceptHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewRenameConceptHandler creates a new handler instance
func NewRenameConceptHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *RenameConceptHandler {
	return &RenameConceptHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the rename command
func (h *RenameConceptHandler) Handle(ctx context.Context, cmd commands.RenameConceptCommand) error {
	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	node, ok := activeNode(graph, h.tracker)
	if !ok {
		return nil
	}

	label := cmd.Label
	graph.UpdateNodeData(node.ID(), entities.NodeDataPatch{Label: &label})

	return commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph)
}
