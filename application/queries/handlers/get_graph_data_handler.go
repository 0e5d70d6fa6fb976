package handlers

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"go.uber.org/zap"
)

// GetGraphDataHandler builds the render snapshot
type GetGraphDataHandler struct {
	graphRepo ports.GraphRepository
	tracker   *selection.Tracker
	logger    *zap.Logger
}

// NewGetGraphDataHandler creates a new graph data handler
func NewGetGraphDataHandler(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	logger *zap.Logger,
) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		graphRepo: graphRepo,
		tracker:   tracker,
		logger:    logger,
	}
}

// Handle executes the graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	nodes := graph.Nodes()
	edges := graph.Edges()

	result := &queries.GetGraphDataResult{
		Nodes: make([]queries.GraphNode, 0, len(nodes)),
		Edges: make([]queries.GraphEdge, 0, len(edges)),
		Stats: queries.GraphStats{
			NodeCount: len(nodes),
			EdgeCount: len(edges),
		},
	}

	for _, node := range nodes {
		result.Nodes = append(result.Nodes, toGraphNode(node))
	}
	for _, edge := range edges {
		result.Edges = append(result.Edges, queries.GraphEdge{
			ID:     edge.ID,
			Source: edge.SourceID.String(),
			Target: edge.TargetID.String(),
		})
	}

	// Selection is resolved against the live collection: a stale id
	// renders as nothing selected.
	if id, ok := h.tracker.Resolve(graph.HasNode); ok {
		active := id.String()
		result.ActiveID = &active
	}

	return result, nil
}

// toGraphNode maps a node entity to its render DTO
func toGraphNode(node *entities.Node) queries.GraphNode {
	fields := node.Fields()
	dto := queries.GraphNode{
		ID:   node.ID().String(),
		Kind: node.Kind(),
		Position: queries.PositionDTO{
			X: node.Position().X(),
			Y: node.Position().Y(),
		},
		Data: queries.NodeDataDTO{
			Label:  node.Label(),
			Fields: make([]queries.FieldDTO, 0, len(fields)),
		},
	}
	for _, f := range fields {
		dto.Data.Fields = append(dto.Data.Fields, queries.FieldDTO{
			Type: string(f.Type()),
			Name: f.Name(),
		})
	}
	return dto
}
