package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
)

func TestNewSessionGraph_SeedsPersonNode(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())

	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	seed, ok := g.NodeByID(valueobjects.SeedNodeID)
	assert.True(t, ok)
	assert.Equal(t, "Person", seed.Label())
	assert.Equal(t, entities.KindConcerto, seed.Kind())
	assert.Equal(t, float64(250), seed.Position().X())
	assert.Equal(t, float64(5), seed.Position().Y())

	fields := seed.Fields()
	assert.Len(t, fields, 3)
	assert.Equal(t, "firstName", fields[0].Name())
	assert.Equal(t, valueobjects.FieldTypeString, fields[0].Type())
	assert.Equal(t, "lastName", fields[1].Name())
	assert.Equal(t, "dob", fields[2].Name())
	assert.Equal(t, valueobjects.FieldTypeDateTime, fields[2].Type())
}

func TestGraph_AddNode_SequentialIDs(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())

	first := g.AddNode(valueobjects.NewPosition(1, 1), entities.KindConcerto, entities.NodeData{Label: "New Concept"})
	second := g.AddNode(valueobjects.NewPosition(2, 2), entities.KindConcerto, entities.NodeData{Label: "New Asset"})

	assert.Equal(t, "2", first.String())
	assert.Equal(t, "3", second.String())
	assert.Equal(t, 3, g.NodeCount())
}

func TestGraph_Nodes_InsertionOrder(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	g.AddNode(valueobjects.NewPosition(1, 1), entities.KindConcerto, entities.NodeData{Label: "A"})
	g.AddNode(valueobjects.NewPosition(2, 2), entities.KindConcerto, entities.NodeData{Label: "B"})

	nodes := g.Nodes()

	assert.Equal(t, "1", nodes[0].ID().String())
	assert.Equal(t, "2", nodes[1].ID().String())
	assert.Equal(t, "3", nodes[2].ID().String())
}

func TestGraph_UpdateNodeData_UnknownIDIsNoOp(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	g.MarkEventsAsCommitted()
	ghost, _ := valueobjects.NewNodeIDFromString("99")
	label := "Ghost"

	g.UpdateNodeData(ghost, entities.NodeDataPatch{Label: &label})

	assert.Equal(t, 1, g.NodeCount())
	assert.Empty(t, g.GetUncommittedEvents())
	seed, _ := g.NodeByID(valueobjects.SeedNodeID)
	assert.Equal(t, "Person", seed.Label())
}

func TestGraph_UpdateNodeData_ReplacesOnlyTargetNode(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	added := g.AddNode(valueobjects.NewPosition(5, 5), entities.KindConcerto, entities.NodeData{Label: "New Concept"})

	seedBefore, _ := g.NodeByID(valueobjects.SeedNodeID)
	label := "Order"

	g.UpdateNodeData(added, entities.NodeDataPatch{Label: &label})

	seedAfter, _ := g.NodeByID(valueobjects.SeedNodeID)
	assert.Same(t, seedBefore, seedAfter, "untouched nodes keep pointer identity")

	updated, _ := g.NodeByID(added)
	assert.Equal(t, "Order", updated.Label())
}

func TestGraph_UpdateNodeData_SnapshotStaysConsistent(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	snapshot := g.Nodes()
	label := "Employee"

	g.UpdateNodeData(valueobjects.SeedNodeID, entities.NodeDataPatch{Label: &label})

	assert.Equal(t, "Person", snapshot[0].Label(), "prior snapshot is never edited in place")
	current, _ := g.NodeByID(valueobjects.SeedNodeID)
	assert.Equal(t, "Employee", current.Label())
}

func TestGraph_MoveNode(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())

	g.MoveNode(valueobjects.SeedNodeID, valueobjects.NewPosition(-12.5, 640))

	seed, _ := g.NodeByID(valueobjects.SeedNodeID)
	assert.Equal(t, -12.5, seed.Position().X())
	assert.Equal(t, float64(640), seed.Position().Y())
}

func TestGraph_MoveNode_UnknownIDIsNoOp(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	g.MarkEventsAsCommitted()
	ghost, _ := valueobjects.NewNodeIDFromString("99")

	g.MoveNode(ghost, valueobjects.NewPosition(1, 1))

	assert.Empty(t, g.GetUncommittedEvents())
}

func TestGraph_Connect_KeepsDuplicatesAndSelfLoops(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	a := g.AddNode(valueobjects.NewPosition(0, 0), entities.KindConcerto, entities.NodeData{Label: "A"})

	g.Connect(valueobjects.SeedNodeID, a, "e1")
	g.Connect(valueobjects.SeedNodeID, a, "e2")
	g.Connect(a, a, "e3")

	edges := g.Edges()
	assert.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, edges[2].SourceID, edges[2].TargetID)
}

func TestGraph_Connect_AssignsIDWhenMissing(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	a := g.AddNode(valueobjects.NewPosition(0, 0), entities.KindConcerto, entities.NodeData{Label: "A"})

	id := g.Connect(valueobjects.SeedNodeID, a, "")

	assert.NotEmpty(t, id)
	assert.Equal(t, id, g.Edges()[0].ID)
}

func TestGraph_Connect_UnknownEndpointsAccepted(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	ghost, _ := valueobjects.NewNodeIDFromString("99")

	g.Connect(ghost, valueobjects.SeedNodeID, "dangling")

	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_EventLifecycle(t *testing.T) {
	g := NewSessionGraph(valueobjects.NewSessionGenerator())
	assert.Len(t, g.GetUncommittedEvents(), 1, "seed node raises one event")

	g.AddNode(valueobjects.NewPosition(0, 0), entities.KindConcerto, entities.NodeData{Label: "New Concept"})
	assert.Len(t, g.GetUncommittedEvents(), 2)

	g.MarkEventsAsCommitted()
	assert.Empty(t, g.GetUncommittedEvents())
}
