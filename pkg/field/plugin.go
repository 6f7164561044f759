package field

import (
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Icon is an opaque handle shown next to the plugin label in menus. SVG is
// optional inline markup; hosts sanitise it before rendering.
type Icon struct {
	Name string `json:"name,omitempty"`
	SVG  string `json:"svg,omitempty"`
}

// IsZero reports whether the icon carries nothing to show.
func (i Icon) IsZero() bool {
	return i.Name == "" && i.SVG == ""
}

// Meta is presentation-only information for plugin menus.
type Meta struct {
	Label string `json:"label"`
	Icon  Icon   `json:"icon,omitempty"`
}

// Renderer presents a field in every mode. Each mode has its own method so a
// new mode cannot be added without every plugin handling it.
type Renderer interface {
	Author(props AuthorProps) widget.Node
	Interact(props InteractProps) widget.Node
	Review(props ReviewProps) widget.Node
}

// Plugin is a self-describing field type.
type Plugin interface {
	Renderer

	// Type is the registry identifier, e.g. "select".
	Type() string
	Meta() Meta
	// InitialSchema is called once when a field of this type is added.
	InitialSchema() schema.Field
}

// UISchemaProvider is implemented by plugins that seed UI hints for new
// fields.
type UISchemaProvider interface {
	InitialUISchema() schema.UI
}

// EmptyValueProvider is implemented by plugins whose empty value is not "".
type EmptyValueProvider interface {
	EmptyValue() any
}

// InitialUISchema returns the plugin's UI hints for a new field, or an empty
// map when the plugin provides none.
func InitialUISchema(p Plugin) schema.UI {
	if provider, ok := p.(UISchemaProvider); ok {
		return provider.InitialUISchema().Clone()
	}
	return schema.UI{}
}

// EmptyValue returns the value stored for a freshly added field.
func EmptyValue(p Plugin) any {
	if provider, ok := p.(EmptyValueProvider); ok {
		return schema.CloneValue(provider.EmptyValue())
	}
	return ""
}
