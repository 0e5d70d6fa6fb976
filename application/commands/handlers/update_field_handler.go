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

// UpdateFieldHandler replaces one attribute of one field on the
// selected concept. An index that has drifted out of bounds (the panel
// edited against a snapshot that a removal has since invalidated) is a
// silent no-op; in-bounds writes are last-writer-wins.
type UpdateFieldHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	publisher ports.EventPublisher
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewUpdateFieldHandler creates a new handler instance
func NewUpdateFieldHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *UpdateFieldHandler {
	return &UpdateFieldHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the update field command
func (h *UpdateFieldHandler) Handle(ctx context.Context, cmd commands.UpdateFieldCommand) error {
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
		h.logger.Debug("Ignoring field update with stale index",
			zap.Int("index", cmd.Index),
			zap.Int("fields", len(fields)),
		)
		return nil
	}

	switch cmd.Attribute {
	case commands.AttributeType:
		fields[cmd.Index] = fields[cmd.Index].WithType(valueobjects.FieldType(cmd.Value))
	case commands.AttributeName:
		fields[cmd.Index] = fields[cmd.Index].WithName(cmd.Value)
	default:
		return nil
	}

	graph.UpdateNodeData(node.ID(), entities.NodeDataPatch{Fields: &fields})

	return commitGraph(ctx, h.graphRepo, h.publisher, h.notifier, h.logger, graph)
}
