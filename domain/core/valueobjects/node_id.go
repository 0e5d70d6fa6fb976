package valueobjects

import (
	"errors"
	"strconv"
)

// NodeID is a value object representing a unique node identifier
// Value objects are immutable and have no identity beyond their value
type NodeID struct {
	value string
}

// SeedNodeID is the identifier of the node created at session start.
// Generators hand out values strictly after it.
var SeedNodeID = NodeID{value: "1"}

// NewNodeIDFromString creates a NodeID from an existing string
func NewNodeIDFromString(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, errors.New("node ID cannot be empty")
	}
	return NodeID{value: id}, nil
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return id.value
}

// Equals checks if two NodeIDs are equal
func (id NodeID) Equals(other NodeID) bool {
	return id.value == other.value
}

// IsZero checks if the NodeID is the zero value
func (id NodeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id NodeID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NodeID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("NodeID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// Generator issues node identifiers as monotonically increasing decimal
// strings. Each editor session owns exactly one instance; it is injected
// rather than shared process-wide so tests can seed their own.
//
// The generator is not safe for concurrent use. All interaction events
// are serialized onto a single goroutine before they reach it.
type Generator struct {
	next int64
}

// NewGenerator creates a generator whose first issued ID is start.
func NewGenerator(start int64) *Generator {
	return &Generator{next: start}
}

// NewSessionGenerator creates the generator for a fresh editor session.
// It starts at 2 because the seed node holds "1".
func NewSessionGenerator() *Generator {
	return NewGenerator(2)
}

// NextID returns an identifier never returned before by this generator.
func (g *Generator) NextID() NodeID {
	id := NodeID{value: strconv.FormatInt(g.next, 10)}
	g.next++
	return id
}
