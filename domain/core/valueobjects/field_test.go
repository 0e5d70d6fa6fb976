package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultField(t *testing.T) {
	f := NewDefaultField()

	assert.Equal(t, FieldTypeString, f.Type())
	assert.Equal(t, "newProp", f.Name())
}

func TestField_WithType_LeavesOriginal(t *testing.T) {
	original := NewField(FieldTypeString, "age")

	changed := original.WithType(FieldTypeInteger)

	assert.Equal(t, FieldTypeInteger, changed.Type())
	assert.Equal(t, "age", changed.Name())
	assert.Equal(t, FieldTypeString, original.Type())
}

func TestField_WithName_LeavesOriginal(t *testing.T) {
	original := NewField(FieldTypeDateTime, "dob")

	changed := original.WithName("birthDate")

	assert.Equal(t, "birthDate", changed.Name())
	assert.Equal(t, FieldTypeDateTime, changed.Type())
	assert.Equal(t, "dob", original.Name())
}

func TestIsValidFieldType(t *testing.T) {
	for _, ft := range FieldTypes() {
		assert.True(t, IsValidFieldType(ft), "type %s should be valid", ft)
	}
	assert.False(t, IsValidFieldType("Float"))
	assert.False(t, IsValidFieldType(""))
}

func TestField_Equals(t *testing.T) {
	a := NewField(FieldTypeBoolean, "active")
	b := NewField(FieldTypeBoolean, "active")
	c := NewField(FieldTypeString, "active")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
