package aggregates

import (
	"time"

	"github.com/google/uuid"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/entities"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/events"
)

// GraphID represents a unique graph identifier
type GraphID string

// NewGraphID creates a new random GraphID
func NewGraphID() GraphID {
	return GraphID(uuid.New().String())
}

// String returns the string representation
func (id GraphID) String() string {
	return string(id)
}

// Edge represents a directed connection between two nodes. Beyond
// "a link exists" it carries no semantics: the core never checks that
// source and target differ or that the pair is unique.
type Edge struct {
	ID        string
	SourceID  valueobjects.NodeID
	TargetID  valueobjects.NodeID
	CreatedAt time.Time
}

// Graph is the aggregate root for one editor session's canvas.
// It is the single consistency boundary for node and edge state.
//
// Node order is insertion order and is meaningful: the rendering
// collaborator displays the collection as given. Every mutation is
// total — an update against an id that is not present is a silent
// no-op, never an error. Mutations replace node values rather than
// editing them in place, so snapshots handed out before a mutation
// stay internally consistent.
type Graph struct {
	id        GraphID
	nodes     []*entities.Node
	edges     []*Edge
	generator *valueobjects.Generator
	createdAt time.Time
	updatedAt time.Time
	events    []events.DomainEvent
}

// NewGraph creates an empty graph that draws node ids from gen
func NewGraph(gen *valueobjects.Generator) *Graph {
	now := time.Now()
	return &Graph{
		id:        NewGraphID(),
		nodes:     []*entities.Node{},
		edges:     []*Edge{},
		generator: gen,
		createdAt: now,
		updatedAt: now,
		events:    []events.DomainEvent{},
	}
}

// NewSessionGraph creates the graph every fresh editor session starts
// with: one seed concept ("Person", id "1") carrying three example
// fields. The generator must be a session generator so subsequent
// drops continue from id "2".
func NewSessionGraph(gen *valueobjects.Generator) *Graph {
	g := NewGraph(gen)
	seed := entities.NewNode(
		valueobjects.SeedNodeID,
		entities.KindConcerto,
		valueobjects.NewPosition(250, 5),
		entities.NodeData{
			Label: "Person",
			Fields: []valueobjects.Field{
				valueobjects.NewField(valueobjects.FieldTypeString, "firstName"),
				valueobjects.NewField(valueobjects.FieldTypeString, "lastName"),
				valueobjects.NewField(valueobjects.FieldTypeDateTime, "dob"),
			},
		},
	)
	g.nodes = append(g.nodes, seed)
	g.addEvent(events.NewNodeAdded(g.id.String(), seed.ID(), seed.Kind(), seed.Label(), g.createdAt))
	return g
}

// ID returns the graph's unique identifier
func (g *Graph) ID() GraphID {
	return g.id
}

// AddNode allocates a fresh id, appends a node with the given position,
// kind and data, and returns the new id. No existing node is touched.
func (g *Graph) AddNode(position valueobjects.Position, kind string, data entities.NodeData) valueobjects.NodeID {
	id := g.generator.NextID()
	node := entities.NewNode(id, kind, position, data)
	g.nodes = append(g.nodes, node)
	g.touch()
	g.addEvent(events.NewNodeAdded(g.id.String(), id, kind, data.Label, g.updatedAt))
	return id
}

// UpdateNodeData shallow-merges the patch into the data of the node
// with the given id. Only that node is replaced; all other nodes keep
// their identity, which lets the rendering layer skip re-rendering
// them. An unknown id is a silent no-op.
func (g *Graph) UpdateNodeData(id valueobjects.NodeID, patch entities.NodeDataPatch) {
	i := g.indexOf(id)
	if i < 0 {
		return
	}
	g.nodes[i] = g.nodes[i].WithData(patch)
	g.touch()
	g.addEvent(events.NewNodeDataUpdated(g.id.String(), id, g.nodes[i].Label(), g.nodes[i].FieldCount(), g.updatedAt))
}

// MoveNode stores the position the collaborator reports after a drag.
// An unknown id is a silent no-op.
func (g *Graph) MoveNode(id valueobjects.NodeID, position valueobjects.Position) {
	i := g.indexOf(id)
	if i < 0 {
		return
	}
	g.nodes[i] = g.nodes[i].MovedTo(position)
	g.touch()
	g.addEvent(events.NewNodeMoved(g.id.String(), id, position, g.updatedAt))
}

// Connect appends a directed edge. It never rejects and never
// deduplicates: duplicate and self-referential connections are kept as
// given. The edge id comes from the rendering collaborator and is
// opaque here; when the collaborator supplies none, a random one is
// assigned so the edge can still be addressed in the snapshot.
func (g *Graph) Connect(source, target valueobjects.NodeID, edgeID string) string {
	if edgeID == "" {
		edgeID = uuid.New().String()
	}
	now := time.Now()
	g.edges = append(g.edges, &Edge{
		ID:        edgeID,
		SourceID:  source,
		TargetID:  target,
		CreatedAt: now,
	})
	g.updatedAt = now
	g.addEvent(events.NewEdgeConnected(g.id.String(), edgeID, source, target, now))
	return edgeID
}

// NodeByID returns the node with the given id, or false
func (g *Graph) NodeByID(id valueobjects.NodeID) (*entities.Node, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return g.nodes[i], true
}

// HasNode reports whether a node with the given id is present
func (g *Graph) HasNode(id valueobjects.NodeID) bool {
	return g.indexOf(id) >= 0
}

// Nodes returns the nodes in insertion order.
// The slice is a copy; the node pointers are shared, which is safe
// because nodes are never mutated in place.
func (g *Graph) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns the edges in insertion order
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// UpdatedAt returns the time of the last mutation
func (g *Graph) UpdatedAt() time.Time {
	return g.updatedAt
}

// GetUncommittedEvents returns events raised since the last commit
func (g *Graph) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(g.events))
	copy(out, g.events)
	return out
}

// MarkEventsAsCommitted clears the uncommitted event list
func (g *Graph) MarkEventsAsCommitted() {
	g.events = []events.DomainEvent{}
}

func (g *Graph) indexOf(id valueobjects.NodeID) int {
	for i, n := range g.nodes {
		if n.ID().Equals(id) {
			return i
		}
	}
	return -1
}

func (g *Graph) touch() {
	g.updatedAt = time.Now()
}

func (g *Graph) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}
