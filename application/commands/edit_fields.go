package commands

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/utils"
)

// Field attribute keys accepted by UpdateFieldCommand.
const (
	AttributeType = "type"
	AttributeName = "name"
)

// RenameConceptCommand renames the currently selected concept. An empty
// label is allowed; the panel input may legitimately be cleared.
type RenameConceptCommand struct {
	Label string `json:"label"`
}

// Validate validates the command
func (c RenameConceptCommand) Validate() error {
	return nil
}

// AddFieldCommand appends the default field ({String, "newProp"}) to
// the selected concept. Repeated additions keep the duplicate names.
type AddFieldCommand struct{}

// Validate validates the command
func (c AddFieldCommand) Validate() error {
	return nil
}

// UpdateFieldCommand replaces one attribute of the field at Index on
// the selected concept. An index outside the current bounds is a
// silent no-op: edits race against removals last-writer-wins over the
// snapshot the panel was rendered from.
type UpdateFieldCommand struct {
	Index     int    `json:"index" validate:"gte=0"`
	Attribute string `json:"attribute" validate:"required,oneof=type name"`
	Value     string `json:"value"`
}

// Validate validates the command
func (c UpdateFieldCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// RemoveFieldCommand removes the field at Index on the selected
// concept, shifting later fields down one position.
type RemoveFieldCommand struct {
	Index int `json:"index" validate:"gte=0"`
}

// Validate validates the command
func (c RemoveFieldCommand) Validate() error {
	return utils.ValidateStruct(c)
}
