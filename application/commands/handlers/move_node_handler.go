package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"go.uber.org/zap"
)

// MoveNodeHandler stores collaborator-reported node geometry
type MoveNodeHandler struct {
	graphRepo ports.GraphRepository
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewMoveNodeHandler creates a new handler instance
func NewMoveNodeHandler(
	graphRepo ports.GraphRepository,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *MoveNodeHandler {
	return &MoveNodeHandler{
		graphRepo: graphRepo,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the move command
func (h *MoveNodeHandler) Handle(ctx context.Context, cmd commands.MoveNodeCommand) error {
	id, err := valueobjects.NewNodeIDFromString(cmd.NodeID)
	if err != nil {
		return fmt.Errorf("invalid node ID: %w", err)
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	graph.MoveNode(id, valueobjects.NewPosition(cmd.X, cmd.Y))

	return commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph)
}
