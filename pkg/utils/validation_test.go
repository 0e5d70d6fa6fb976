package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name      string `validate:"required"`
	Attribute string `validate:"required,oneof=type name"`
	Index     int    `validate:"gte=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(sampleInput{Name: "x", Attribute: "type", Index: 0})

	assert.NoError(t, err)
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	err := ValidateStruct(sampleInput{Attribute: "name"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidateStruct_OneOf(t *testing.T) {
	err := ValidateStruct(sampleInput{Name: "x", Attribute: "color"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}
