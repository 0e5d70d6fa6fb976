package commands

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/utils"
)

// MoveNodeCommand is a geometry pass-through: the collaborator owns all
// drag math and reports the final position, which the core stores
// unmodified.
type MoveNodeCommand struct {
	NodeID string  `json:"node_id" validate:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Validate validates the command
func (c MoveNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}
