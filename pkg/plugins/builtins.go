// Package plugins wires the built-in field plugins into registries.
package plugins

import (
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/plugins/checkbox"
	"github.com/goliatone/go-formfield/pkg/plugins/selectfield"
	"github.com/goliatone/go-formfield/pkg/plugins/textfield"
	"github.com/goliatone/go-formfield/pkg/schema"
)

// Builtins returns the built-in plugins.
func Builtins() []field.Plugin {
	return []field.Plugin{
		selectfield.New(),
		textfield.New(),
		checkbox.New(),
	}
}

// Register adds the built-in plugins to reg.
func Register(reg *field.Registry) error {
	for _, plugin := range Builtins() {
		if err := reg.Register(plugin); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in plugins.
func NewRegistry() *field.Registry {
	reg := field.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}

// NewResolver returns a resolver that maps imported fields onto the built-in
// plugins: booleans to checkbox, enumerated scalars to select and any other
// string to text.
func NewResolver() *field.Resolver {
	res := field.NewResolver()
	res.Register(checkbox.Type, 90, func(f schema.Field, _ schema.UI) bool {
		return f.Type == schema.TypeBoolean
	})
	res.Register(selectfield.Type, 70, func(f schema.Field, _ schema.UI) bool {
		if f.Type == schema.TypeArray || f.Type == schema.TypeObject {
			return false
		}
		return f.HasEnum()
	})
	res.Register(textfield.Type, 10, func(f schema.Field, _ schema.UI) bool {
		return f.Type == schema.TypeString || f.Type == ""
	})
	return res
}
