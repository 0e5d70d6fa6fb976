package commands

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/utils"
)

// DropConceptCommand is raised when the collaborator reports a palette
// entry dropped onto the canvas. Payload is the opaque drag-source
// string set at drag start ("Concept", "Asset" or "Enum"); a drop with
// an unrecognized payload creates nothing.
type DropConceptCommand struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Payload string  `json:"payload" validate:"required"`
}

// Validate validates the command
func (c DropConceptCommand) Validate() error {
	return utils.ValidateStruct(c)
}
