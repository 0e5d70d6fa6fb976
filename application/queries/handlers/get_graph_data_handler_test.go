package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/aggregates"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/persistence/memory"
	"go.uber.org/zap"
)

func newQuerySession(t *testing.T) (*memory.InMemoryGraphRepository, *selection.Tracker, *aggregates.Graph) {
	t.Helper()
	graph := aggregates.NewSessionGraph(valueobjects.NewSessionGenerator())
	return memory.NewInMemoryGraphRepository(graph), selection.NewTracker(), graph
}

func TestGetGraphDataHandler_SeedSnapshot(t *testing.T) {
	repo, tracker, _ := newQuerySession(t)
	handler := NewGetGraphDataHandler(repo, tracker, zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetGraphDataQuery{})

	assert.NoError(t, err)
	assert.Len(t, result.Nodes, 1)
	assert.Empty(t, result.Edges)
	assert.Nil(t, result.ActiveID)
	assert.Equal(t, 1, result.Stats.NodeCount)

	node := result.Nodes[0]
	assert.Equal(t, "1", node.ID)
	assert.Equal(t, entities.KindConcerto, node.Kind)
	assert.Equal(t, "Person", node.Data.Label)
	assert.Len(t, node.Data.Fields, 3)
	assert.Equal(t, "DateTime", node.Data.Fields[2].Type)
	assert.Equal(t, float64(250), node.Position.X)
}

func TestGetGraphDataHandler_IncludesEdgesAndSelection(t *testing.T) {
	repo, tracker, graph := newQuerySession(t)
	added := graph.AddNode(valueobjects.NewPosition(50, 60), entities.KindConcerto, entities.NodeData{Label: "New Concept"})
	graph.Connect(valueobjects.SeedNodeID, added, "e1")
	tracker.Select(added)
	handler := NewGetGraphDataHandler(repo, tracker, zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetGraphDataQuery{})

	assert.NoError(t, err)
	assert.Len(t, result.Nodes, 2)
	assert.Len(t, result.Edges, 1)
	assert.Equal(t, "1", result.Edges[0].Source)
	assert.Equal(t, "2", result.Edges[0].Target)
	assert.NotNil(t, result.ActiveID)
	assert.Equal(t, "2", *result.ActiveID)
}

func TestGetGraphDataHandler_StaleSelectionRendersUnselected(t *testing.T) {
	repo, tracker, _ := newQuerySession(t)
	ghost, _ := valueobjects.NewNodeIDFromString("99")
	tracker.Select(ghost)
	handler := NewGetGraphDataHandler(repo, tracker, zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetGraphDataQuery{})

	assert.NoError(t, err)
	assert.Nil(t, result.ActiveID)
}

func TestGetSelectionHandler_NoSelection(t *testing.T) {
	repo, tracker, _ := newQuerySession(t)
	handler := NewGetSelectionHandler(repo, tracker, zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetSelectionQuery{})

	assert.NoError(t, err)
	assert.Nil(t, result.Node)
}

func TestGetSelectionHandler_ReturnsSelectedNode(t *testing.T) {
	repo, tracker, _ := newQuerySession(t)
	tracker.Select(valueobjects.SeedNodeID)
	handler := NewGetSelectionHandler(repo, tracker, zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetSelectionQuery{})

	assert.NoError(t, err)
	assert.NotNil(t, result.Node)
	assert.Equal(t, "1", result.Node.ID)
	assert.Equal(t, "Person", result.Node.Data.Label)
}
