package commands

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/utils"
)

// ConnectNodesCommand is raised when the collaborator reports a drawn
// connection. EdgeID is the collaborator-assigned id and stays opaque;
// it may be empty. Source and target are never checked against each
// other — duplicates and self-loops pass through as drawn.
type ConnectNodesCommand struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
	EdgeID string `json:"edge_id,omitempty"`
}

// Validate validates the command
func (c ConnectNodesCommand) Validate() error {
	return utils.ValidateStruct(c)
}
