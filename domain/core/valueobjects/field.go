package valueobjects

// FieldType is the type tag of a concept field
type FieldType string

const (
	FieldTypeString   FieldType = "String"
	FieldTypeInteger  FieldType = "Integer"
	FieldTypeBoolean  FieldType = "Boolean"
	FieldTypeDateTime FieldType = "DateTime"
	FieldTypeDouble   FieldType = "Double"
)

// FieldTypes lists every assignable field type, in display order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeString,
		FieldTypeInteger,
		FieldTypeBoolean,
		FieldTypeDateTime,
		FieldTypeDouble,
	}
}

// IsValidFieldType reports whether t is one of the known field types
func IsValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeString, FieldTypeInteger, FieldTypeBoolean, FieldTypeDateTime, FieldTypeDouble:
		return true
	}
	return false
}

// Field is a value object for one named, typed attribute of a concept.
// The core enforces no uniqueness on names; duplicate names within one
// concept are allowed and round-trip unchanged.
type Field struct {
	fieldType FieldType
	name      string
}

// NewField creates a field with the given type and name
func NewField(fieldType FieldType, name string) Field {
	return Field{fieldType: fieldType, name: name}
}

// NewDefaultField creates the field appended by the "add field" action:
// a String field named "newProp". Repeated additions produce the same
// value; nothing auto-uniquifies the name.
func NewDefaultField() Field {
	return Field{fieldType: FieldTypeString, name: "newProp"}
}

// Type returns the field's type tag
func (f Field) Type() FieldType {
	return f.fieldType
}

// Name returns the field's name
func (f Field) Name() string {
	return f.name
}

// WithType returns a copy of the field with the type replaced
func (f Field) WithType(t FieldType) Field {
	return Field{fieldType: t, name: f.name}
}

// WithName returns a copy of the field with the name replaced
func (f Field) WithName(name string) Field {
	return Field{fieldType: f.fieldType, name: name}
}

// Equals checks if two fields are equal
func (f Field) Equals(other Field) bool {
	return f.fieldType == other.fieldType && f.name == other.name
}
