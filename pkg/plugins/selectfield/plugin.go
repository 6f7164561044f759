// Package selectfield implements the single-select field plugin: a string
// field whose value is one entry of an editable option list.
package selectfield

import (
	"strconv"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

const (
	// Type is the registry identifier.
	Type = "select"
	// DefaultPlaceholder is shown when no placeholder hint is configured.
	DefaultPlaceholder = "Select an option"
	// OptionPrefix prefixes synthesised option labels.
	OptionPrefix = "Option "
)

// Node ids exposed to drivers and tests.
const (
	NodeTitle       = "title"
	NodeValue       = "value"
	NodeOptions     = "options"
	NodeAddOption   = "option.add"
	NodePlaceholder = "placeholder"
	NodeError       = "error"
)

// OptionNode returns the id of the edit control for the option at index.
func OptionNode(index int) string {
	return "option." + strconv.Itoa(index) + ".value"
}

// DeleteNode returns the id of the delete control for the option at index.
func DeleteNode(index int) string {
	return "option." + strconv.Itoa(index) + ".delete"
}

// Icon is the list glyph shown in the add-field menu.
var Icon = field.Icon{
	Name: "list",
	SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="16" height="16" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		`<line x1="8" y1="6" x2="21" y2="6"/><line x1="8" y1="12" x2="21" y2="12"/><line x1="8" y1="18" x2="21" y2="18"/>` +
		`<line x1="3" y1="6" x2="3.01" y2="6"/><line x1="3" y1="12" x2="3.01" y2="12"/><line x1="3" y1="18" x2="3.01" y2="18"/></svg>`,
}

// Plugin is the single-select field type.
type Plugin struct{}

var (
	_ field.Plugin           = Plugin{}
	_ field.UISchemaProvider = Plugin{}
)

// New returns the plugin.
func New() Plugin {
	return Plugin{}
}

func (Plugin) Type() string { return Type }

func (Plugin) Meta() field.Meta {
	return field.Meta{Label: "Select", Icon: Icon}
}

// InitialSchema returns one option that is also the default.
func (Plugin) InitialSchema() schema.Field {
	first := NextOptionLabel(0)
	return schema.Field{
		Title:   "Field 1",
		Type:    schema.TypeString,
		Enum:    []any{first},
		Default: first,
	}
}

func (Plugin) InitialUISchema() schema.UI {
	return schema.UI{uischema.KeyPlaceholder: "Please select an option"}
}

// NextOptionLabel names the option appended to a list of count options.
// Existing labels are not checked, so duplicates are possible.
func NextOptionLabel(count int) string {
	return OptionPrefix + strconv.Itoa(count+1)
}

// Author renders the title editor, a disabled preview, one row per option
// and the placeholder editor.
func (Plugin) Author(props field.AuthorProps) widget.Node {
	current := props.Schema
	options := current.Options()
	placeholder := uischema.Placeholder(props.UISchema, DefaultPlaceholder)

	rows := make([]widget.Node, 0, len(options)+1)
	for idx, option := range options {
		index := idx
		rows = append(rows, widget.Group("option."+strconv.Itoa(index),
			widget.TextInput(OptionNode(index), "Option", option, widget.WithOnChange(func(text string) {
				props.OnSchemaChange(current.WithOption(index, text))
			})),
			widget.Button(DeleteNode(index), "Delete", widget.WithVariant(widget.VariantDanger), widget.WithOnClick(func() {
				props.OnSchemaChange(current.WithoutOption(index))
			})),
		))
	}
	rows = append(rows, widget.Button(NodeAddOption, "Add option", widget.WithOnClick(func() {
		props.OnSchemaChange(current.AppendOption(NextOptionLabel(len(options))))
	})))

	hint, _ := uischema.String(props.UISchema, uischema.KeyPlaceholder)
	ui := props.UISchema

	return widget.Group(Type,
		widget.TextInput(NodeTitle, "Field name", current.Title, widget.WithOnChange(func(title string) {
			props.OnSchemaChange(current.WithTitle(title))
		})),
		widget.Select(NodeValue, current.Title, "", options,
			widget.WithPlaceholder(placeholder),
			widget.WithDisabled(),
		),
		widget.Group(NodeOptions, rows...),
		widget.TextInput(NodePlaceholder, "Placeholder", hint,
			widget.WithPlaceholder(DefaultPlaceholder),
			widget.WithOnChange(func(text string) {
				props.OnUISchemaChange(ui.With(uischema.KeyPlaceholder, text))
			}),
		),
	)
}

// Interact renders a select over the options bound to the value.
func (Plugin) Interact(props field.InteractProps) widget.Node {
	current := props.Schema
	options := current.Options()

	children := []widget.Node{
		widget.TextInput(NodeTitle, "Field name", current.Title, widget.WithReadOnly()),
		widget.Select(NodeValue, current.Title, schema.FormatValue(props.Value), options,
			widget.WithPlaceholder(uischema.Placeholder(props.UISchema, DefaultPlaceholder)),
			widget.WithHelp(uischema.Help(props.UISchema)),
			widget.WithDisabledIf(uischema.Disabled(props.UISchema)),
			widget.WithOnChange(func(choice string) {
				props.OnValueChange(optionValue(current, choice))
			}),
		),
	}
	if props.Error != nil {
		children = append(children, widget.Error(NodeError, props.Error.Message()))
	}
	return widget.Group(Type, children...)
}

// Review renders the title and the chosen value read-only.
func (Plugin) Review(props field.ReviewProps) widget.Node {
	return widget.Group(Type,
		widget.TextInput(NodeTitle, "Field name", props.Schema.Title, widget.WithReadOnly()),
		widget.Select(NodeValue, props.Schema.Title, schema.FormatValue(props.Value), props.Schema.Options(),
			widget.WithPlaceholder(uischema.Placeholder(props.UISchema, DefaultPlaceholder)),
			widget.WithReadOnly(),
		),
	)
}

// optionValue maps the chosen label back to the enum entry so non-string
// options keep their type.
func optionValue(f schema.Field, choice string) any {
	for idx, label := range f.Options() {
		if label == choice {
			return schema.CloneValue(f.Enum[idx])
		}
	}
	return choice
}
