package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"go.uber.org/zap"
)

// ConnectNodesHandler appends a connection drawn by the collaborator
type ConnectNodesHandler struct {
	graphRepo ports.GraphRepository
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewConnectNodesHandler creates a new handler instance
func NewConnectNodesHandler(
	graphRepo ports.GraphRepository,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *ConnectNodesHandler {
	return &ConnectNodesHandler{
		graphRepo: graphRepo,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the connect command
func (h *ConnectNodesHandler) Handle(ctx context.Context, cmd commands.ConnectNodesCommand) error {
	source, err := valueobjects.NewNodeIDFromString(cmd.Source)
	if err != nil {
		return fmt.Errorf("invalid source ID: %w", err)
	}
	target, err := valueobjects.NewNodeIDFromString(cmd.Target)
	if err != nil {
		return fmt.Errorf("invalid target ID: %w", err)
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	edgeID := graph.Connect(source, target, cmd.EdgeID)

	if err := commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph); err != nil {
		return err
	}

	h.logger.Info("Connection added",
		zap.String("edgeID", edgeID),
		zap.String("source", cmd.Source),
		zap.String("target", cmd.Target),
	)
	return nil
}
