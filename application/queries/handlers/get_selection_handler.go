package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"go.uber.org/zap"
)

// GetSelectionHandler resolves the properties-panel target
type GetSelectionHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	logger    *zap.Logger
}

// NewGetSelectionHandler creates a new selection handler
func NewGetSelectionHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	logger *zap.Logger,
) *GetSelectionHandler {
	return &GetSelectionHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		logger:    logger,
	}
}

// Handle executes the selection query
func (h *GetSelectionHandler) Handle(ctx context.Context, query queries.GetSelectionQuery) (*queries.GetSelectionResult, error) {
	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	result := &queries.GetSelectionResult{}

	id, ok := h.tracker.Resolve(graph.HasNode)
	if !ok {
		return result, nil
	}

	node, ok := graph.NodeByID(id)
	if !ok {
		return result, nil
	}

	dto := toGraphNode(node)
	result.Node = &dto
	return result, nil
}
