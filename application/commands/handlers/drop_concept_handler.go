package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/events"
	"go.uber.org/zap"
)

// DropConceptHandler creates a node from a palette drop and
// auto-selects it so the properties panel opens immediately.
type DropConceptHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewDropConceptHandler creates a new handler instance
func NewDropConceptHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *DropConceptHandler {
	return &DropConceptHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the drop command
func (h *DropConceptHandler) Handle(ctx context.Context, cmd commands.DropConceptCommand) error {
	kind := entities.SourceKind(cmd.Payload)
	if !entities.IsValidSourceKind(kind) {
		// Something other than a palette entry was dragged in; the
		// whole drop is ignored and no node is created.
		h.logger.Debug("Ignoring drop with unrecognized payload", zap.String("payload", cmd.Payload))
		return nil
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	id := graph.AddNode(
		valueobjects.NewPosition(cmd.X, cmd.Y),
		entities.KindConcerto,
		entities.NodeData{Label: entities.SeedLabel(kind)},
	)

	if err := commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph); err != nil {
		return err
	}

	// Explicit transition, not a consequence of a click: new nodes are
	// always selected on creation.
	h.tracker.Select(id)
	if err := h.publisher.Publish(ctx, events.NewSelectionChanged(graph.ID().String(), id.String(), time.Now())); err != nil {
		h.logger.Warn("Failed to publish selection event", zap.Error(err))
	}
	h.notifier.SelectionChanged()

	h.logger.Info("Concept dropped",
		zap.String("nodeID", id.String()),
		zap.String("payload", cmd.Payload),
	)
	return nil
}
