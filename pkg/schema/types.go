package schema

// Type is the JSON Schema value type tag of a field.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// DefaultFormTitle is the title of the empty form document.
const DefaultFormTitle = "Form Title"

// Valid reports whether t is one of the known type tags. The empty tag is not
// valid but is tolerated everywhere a schema is read.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeObject, TypeArray:
		return true
	default:
		return false
	}
}
