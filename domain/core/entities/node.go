package entities

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
)

// KindConcerto is the rendering variant tag carried by every node in
// this editor. The rendering collaborator uses it to pick the node
// component; the core assigns it at creation and never changes it.
const KindConcerto = "concerto"

// SourceKind is the opaque drag payload of the three palette entries
// offered to the user. It is read back at drop time to seed the label.
type SourceKind string

const (
	SourceConcept SourceKind = "Concept"
	SourceAsset   SourceKind = "Asset"
	SourceEnum    SourceKind = "Enum"
)

// IsValidSourceKind reports whether k is a recognized drag payload.
// Drops carrying anything else are ignored entirely.
func IsValidSourceKind(k SourceKind) bool {
	switch k {
	case SourceConcept, SourceAsset, SourceEnum:
		return true
	}
	return false
}

// SeedLabel synthesizes the label of a freshly dropped node.
func SeedLabel(k SourceKind) string {
	return "New " + string(k)
}

// NodeData is the editable payload of a node: the human-readable label
// and the ordered field list. Field order is display order.
type NodeData struct {
	Label  string
	Fields []valueobjects.Field
}

// NodeDataPatch carries a partial NodeData update. Nil members are left
// untouched; present members replace the prior value entirely. The
// fields slice is whole-value: there is no deep merge of individual
// fields through a patch.
type NodeDataPatch struct {
	Label  *string
	Fields *[]valueobjects.Field
}

// Node is a schema concept positioned on the canvas.
//
// Nodes are copy-on-write: every mutating method returns a fresh *Node
// and leaves the receiver untouched, so a render holding the previous
// collection always observes a consistent snapshot. Identity (id, kind)
// never changes after creation; only position, label and fields do.
type Node struct {
	id       valueobjects.NodeID
	kind     string
	position valueobjects.Position
	label    string
	fields   []valueobjects.Field
}

// NewNode creates a node with the given identity, position and data.
// The caller owns id allocation; the graph aggregate is the only
// production caller and draws ids from its session generator.
func NewNode(id valueobjects.NodeID, kind string, position valueobjects.Position, data NodeData) *Node {
	return &Node{
		id:       id,
		kind:     kind,
		position: position,
		label:    data.Label,
		fields:   copyFields(data.Fields),
	}
}

// ID returns the node's unique identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Kind returns the rendering variant tag
func (n *Node) Kind() string {
	return n.kind
}

// Position returns the node's canvas position
func (n *Node) Position() valueobjects.Position {
	return n.position
}

// Label returns the human-readable entity name
func (n *Node) Label() string {
	return n.label
}

// Fields returns a copy of the node's ordered field list
func (n *Node) Fields() []valueobjects.Field {
	return copyFields(n.fields)
}

// FieldCount returns the number of fields without copying
func (n *Node) FieldCount() int {
	return len(n.fields)
}

// Data returns a copy of the node's editable payload
func (n *Node) Data() NodeData {
	return NodeData{
		Label:  n.label,
		Fields: copyFields(n.fields),
	}
}

// WithData returns a new node with the patch shallow-merged over the
// current data. Absent patch members keep their prior value.
func (n *Node) WithData(patch NodeDataPatch) *Node {
	next := &Node{
		id:       n.id,
		kind:     n.kind,
		position: n.position,
		label:    n.label,
		fields:   n.fields,
	}
	if patch.Label != nil {
		next.label = *patch.Label
	}
	if patch.Fields != nil {
		next.fields = copyFields(*patch.Fields)
	}
	return next
}

// MovedTo returns a new node at the given position. Geometry is owned
// by the rendering collaborator; the core stores it unmodified.
func (n *Node) MovedTo(position valueobjects.Position) *Node {
	return &Node{
		id:       n.id,
		kind:     n.kind,
		position: position,
		label:    n.label,
		fields:   n.fields,
	}
}

func copyFields(fields []valueobjects.Field) []valueobjects.Field {
	if fields == nil {
		return []valueobjects.Field{}
	}
	out := make([]valueobjects.Field, len(fields))
	copy(out, fields)
	return out
}
