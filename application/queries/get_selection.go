package queries

// GetSelectionQuery asks for the node currently targeted by the
// properties panel, resolved against the live node collection.
type GetSelectionQuery struct{}

// Validate validates the query
func (q GetSelectionQuery) Validate() error {
	return nil
}

// GetSelectionResult is the resolved selection. Node is nil when
// nothing is selected, including when the stored id has gone stale.
type GetSelectionResult struct {
	Node *GraphNode `json:"node"`
}
