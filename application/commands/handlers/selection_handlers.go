package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/events"
	"go.uber.org/zap"
)

// NodeClickHandler re-targets the selection to the clicked node
type NodeClickHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewNodeClickHandler creates a new handler instance
func NewNodeClickHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *NodeClickHandler {
	return &NodeClickHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the node click
func (h *NodeClickHandler) Handle(ctx context.Context, cmd commands.NodeClickCommand) error {
	id, err := valueobjects.NewNodeIDFromString(cmd.NodeID)
	if err != nil {
		return fmt.Errorf("invalid node ID: %w", err)
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	// The collaborator only emits clicks for nodes it rendered, so the
	// id is stored as given; a node deleted in the meantime resolves to
	// no-selection at read time.
	h.tracker.Select(id)

	if err := h.publisher.Publish(ctx, events.NewSelectionChanged(graph.ID().String(), id.String(), time.Now())); err != nil {
		h.logger.Warn("Failed to publish selection event", zap.Error(err))
	}
	h.notifier.SelectionChanged()
	return nil
}

// PaneClickHandler clears the selection when the background is clicked
type PaneClickHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewPaneClickHandler creates a new handler instance
func NewPaneClickHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *PaneClickHandler {
	return &PaneClickHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the pane click
func (h *PaneClickHandler) Handle(ctx context.Context, cmd commands.PaneClickCommand) error {
	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	h.tracker.Clear()

	if err := h.publisher.Publish(ctx, events.NewSelectionChanged(graph.ID().String(), "", time.Now())); err != nil {
		h.logger.Warn("Failed to publish selection event", zap.Error(err))
	}
	h.notifier.SelectionChanged()
	return nil
}
