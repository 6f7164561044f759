// Package textfield implements a free text field plugin.
package textfield

import (
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

const (
	Type               = "text"
	DefaultPlaceholder = "Enter a value"
)

const (
	NodeTitle       = "title"
	NodeDescription = "description"
	NodeValue       = "value"
	NodePlaceholder = "placeholder"
	NodeError       = "error"
)

var Icon = field.Icon{
	Name: "type",
	SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="16" height="16" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		`<polyline points="4 7 4 4 20 4 20 7"/><line x1="9" y1="20" x2="15" y2="20"/><line x1="12" y1="4" x2="12" y2="20"/></svg>`,
}

type Plugin struct{}

var (
	_ field.Plugin           = Plugin{}
	_ field.UISchemaProvider = Plugin{}
)

func New() Plugin {
	return Plugin{}
}

func (Plugin) Type() string { return Type }

func (Plugin) Meta() field.Meta {
	return field.Meta{Label: "Text", Icon: Icon}
}

func (Plugin) InitialSchema() schema.Field {
	return schema.Field{Title: "Text field", Type: schema.TypeString}
}

func (Plugin) InitialUISchema() schema.UI {
	return schema.UI{uischema.KeyPlaceholder: "Type your answer"}
}

func (Plugin) Author(props field.AuthorProps) widget.Node {
	current := props.Schema
	ui := props.UISchema
	hint, _ := uischema.String(ui, uischema.KeyPlaceholder)

	return widget.Group(Type,
		widget.TextInput(NodeTitle, "Field name", current.Title, widget.WithOnChange(func(title string) {
			props.OnSchemaChange(current.WithTitle(title))
		})),
		widget.TextInput(NodeDescription, "Description", current.Description, widget.WithOnChange(func(text string) {
			next := current.Clone()
			next.Description = text
			props.OnSchemaChange(next)
		})),
		widget.TextInput(NodeValue, current.Title, "",
			widget.WithPlaceholder(uischema.Placeholder(ui, DefaultPlaceholder)),
			widget.WithDisabled(),
		),
		widget.TextInput(NodePlaceholder, "Placeholder", hint,
			widget.WithPlaceholder(DefaultPlaceholder),
			widget.WithOnChange(func(text string) {
				props.OnUISchemaChange(ui.With(uischema.KeyPlaceholder, text))
			}),
		),
	)
}

func (Plugin) Interact(props field.InteractProps) widget.Node {
	children := []widget.Node{
		widget.TextInput(NodeValue, props.Schema.Title, schema.FormatValue(props.Value),
			widget.WithPlaceholder(uischema.Placeholder(props.UISchema, DefaultPlaceholder)),
			widget.WithHelp(firstNonEmpty(uischema.Help(props.UISchema), props.Schema.Description)),
			widget.WithDisabledIf(uischema.Disabled(props.UISchema)),
			widget.WithOnChange(func(text string) {
				props.OnValueChange(text)
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
		widget.TextInput(NodeValue, props.Schema.Title, schema.FormatValue(props.Value), widget.WithReadOnly()),
	)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
