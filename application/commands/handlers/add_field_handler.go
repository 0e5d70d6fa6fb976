package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"go.uber.org/zap"
)

// AddFieldHandler appends the default field to the selected concept.
// Like every field edit it computes a whole new field sequence from the
// current one and applies it through UpdateNodeData, so the store sees
// one atomic data replacement.
type AddFieldHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewAddFieldHandler creates a new handler instance
func NewAddFieldHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *AddFieldHandler {
	return &AddFieldHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the add field command
func (h *AddFieldHandler) Handle(ctx context.Context, cmd commands.AddFieldCommand) error {
	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	node, ok := activeNode(graph, h.tracker)
	if !ok {
		return nil
	}

	fields := append(node.Fields(), valueobjects.NewDefaultField())
	graph.UpdateNodeData(node.ID(), entities.NodeDataPatch{Fields: &fields})

	return commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph)
}
