package queries

// GetGraphDataQuery asks for the full snapshot the rendering
// collaborator is driven by: every node with its geometry and data,
// every edge, and the resolved selection. The session owns a single
// graph, so the query carries no parameters.
type GetGraphDataQuery struct{}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	return nil
}

// GetGraphDataResult is the complete render snapshot
type GetGraphDataResult struct {
	Nodes    []GraphNode `json:"nodes"`
	Edges    []GraphEdge `json:"edges"`
	ActiveID *string     `json:"active_id"`
	Stats    GraphStats  `json:"stats"`
}

// GraphNode is one node as the collaborator renders it
type GraphNode struct {
	ID       string      `json:"id"`
	Kind     string      `json:"type"`
	Position PositionDTO `json:"position"`
	Data     NodeDataDTO `json:"data"`
}

// PositionDTO is a canvas coordinate pair
type PositionDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeDataDTO is the editable payload of a node
type NodeDataDTO struct {
	Label  string     `json:"label"`
	Fields []FieldDTO `json:"fields"`
}

// FieldDTO is one typed field
type FieldDTO struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// GraphEdge is one directed connection
type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphStats contains graph statistics
type GraphStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}
