package commands

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/utils"
)

// NodeClickCommand is raised when the collaborator reports a click on a
// node. It re-targets the selection regardless of prior state; there is
// no dirty-check or confirmation.
type NodeClickCommand struct {
	NodeID string `json:"node_id" validate:"required"`
}

// Validate validates the command
func (c NodeClickCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// PaneClickCommand is raised when the collaborator reports a click on
// the canvas background. It clears the selection.
type PaneClickCommand struct{}

// Validate validates the command
func (c PaneClickCommand) Validate() error {
	return nil
}
