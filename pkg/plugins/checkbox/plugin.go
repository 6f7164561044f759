// Package checkbox implements a boolean field plugin.
package checkbox

import (
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

const Type = "checkbox"

const (
	NodeTitle   = "title"
	NodeDefault = "default"
	NodeValue   = "value"
	NodeError   = "error"
)

var Icon = field.Icon{
	Name: "check-square",
	SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="16" height="16" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		`<polyline points="9 11 12 14 22 4"/><path d="M21 12v7a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h11"/></svg>`,
}

// Plugin is the checkbox field type. It seeds no UI hints and stores false
// for new fields.
type Plugin struct{}

var (
	_ field.Plugin             = Plugin{}
	_ field.EmptyValueProvider = Plugin{}
)

func New() Plugin {
	return Plugin{}
}

func (Plugin) Type() string { return Type }

func (Plugin) Meta() field.Meta {
	return field.Meta{Label: "Checkbox", Icon: Icon}
}

func (Plugin) InitialSchema() schema.Field {
	return schema.Field{Title: "Checkbox", Type: schema.TypeBoolean, Default: false}
}

func (Plugin) EmptyValue() any {
	return false
}

func (Plugin) Author(props field.AuthorProps) widget.Node {
	current := props.Schema
	return widget.Group(Type,
		widget.TextInput(NodeTitle, "Field name", current.Title, widget.WithOnChange(func(title string) {
			props.OnSchemaChange(current.WithTitle(title))
		})),
		widget.Checkbox(NodeValue, current.Title, checked(current.Default), widget.WithDisabled()),
		widget.Checkbox(NodeDefault, "Checked by default", checked(current.Default), widget.WithOnToggle(func(on bool) {
			props.OnSchemaChange(current.WithDefault(on))
		})),
	)
}

func (Plugin) Interact(props field.InteractProps) widget.Node {
	children := []widget.Node{
		widget.Checkbox(NodeValue, props.Schema.Title, checked(props.Value),
			widget.WithDisabledIf(uischema.Disabled(props.UISchema)),
			widget.WithOnToggle(func(on bool) {
				props.OnValueChange(on)
			}),
		),
	}
	if props.Error != nil {
		children = append(children, widget.Error(NodeError, props.Error.Message()))
	}
	return widget.Group(Type, children...)
}

func (Plugin) Review(props field.ReviewProps) widget.Node {
	return widget.Group(Type,
		widget.Checkbox(NodeValue, props.Schema.Title, checked(props.Value), widget.WithReadOnly()),
	)
}

func checked(value any) bool {
	on, ok := value.(bool)
	return ok && on
}
