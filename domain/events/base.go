package events

import (
	"time"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// NodeAdded is raised when a node is appended to the graph
type NodeAdded struct {
	BaseEvent
	NodeID valueobjects.NodeID `json:"node_id"`
	Kind   string              `json:"kind"`
	Label  string              `json:"label"`
}

// NewNodeAdded creates a NodeAdded event
func NewNodeAdded(graphID string, nodeID valueobjects.NodeID, kind, label string, timestamp time.Time) NodeAdded {
	return NodeAdded{
		BaseEvent: BaseEvent{
			AggregateID: graphID,
			EventType:   "graph.node_added",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
		Kind:   kind,
		Label:  label,
	}
}

// NodeDataUpdated is raised when a node's label or field list changes
type NodeDataUpdated struct {
	BaseEvent
	NodeID valueobjects.NodeID `json:"node_id"`
	Label  string              `json:"label"`
	Fields int                 `json:"fields"`
}

// NewNodeDataUpdated creates a NodeDataUpdated event
func NewNodeDataUpdated(graphID string, nodeID valueobjects.NodeID, label string, fieldCount int, timestamp time.Time) NodeDataUpdated {
	return NodeDataUpdated{
		BaseEvent: BaseEvent{
			AggregateID: graphID,
			EventType:   "graph.node_data_updated",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
		Label:  label,
		Fields: fieldCount,
	}
}

// NodeMoved is raised when the collaborator drags a node elsewhere
type NodeMoved struct {
	BaseEvent
	NodeID valueobjects.NodeID   `json:"node_id"`
	To     valueobjects.Position `json:"-"`
}

// NewNodeMoved creates a NodeMoved event
func NewNodeMoved(graphID string, nodeID valueobjects.NodeID, to valueobjects.Position, timestamp time.Time) NodeMoved {
	return NodeMoved{
		BaseEvent: BaseEvent{
			AggregateID: graphID,
			EventType:   "graph.node_moved",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
		To:     to,
	}
}

// EdgeConnected is raised when a connection is appended
type EdgeConnected struct {
	BaseEvent
	EdgeID string              `json:"edge_id"`
	Source valueobjects.NodeID `json:"source"`
	Target valueobjects.NodeID `json:"target"`
}

// NewEdgeConnected creates an EdgeConnected event
func NewEdgeConnected(graphID, edgeID string, source, target valueobjects.NodeID, timestamp time.Time) EdgeConnected {
	return EdgeConnected{
		BaseEvent: BaseEvent{
			AggregateID: graphID,
			EventType:   "graph.edge_connected",
			Timestamp:   timestamp,
		},
		EdgeID: edgeID,
		Source: source,
		Target: target,
	}
}

// SelectionChanged is raised when the active node changes
type SelectionChanged struct {
	BaseEvent
	ActiveID string `json:"active_id"` // empty when nothing is selected
}

// NewSelectionChanged creates a SelectionChanged event
func NewSelectionChanged(graphID, activeID string, timestamp time.Time) SelectionChanged {
	return SelectionChanged{
		BaseEvent: BaseEvent{
			AggregateID: graphID,
			EventType:   "session.selection_changed",
			Timestamp:   timestamp,
		},
		ActiveID: activeID,
	}
}
