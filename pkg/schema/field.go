package schema

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Field describes the data shape of one form field. It maps onto a JSON Schema
// fragment with title, type, description, enum and default keywords.
//
// A nil Enum means the keyword is absent; a non-nil empty Enum is an explicit
// empty option sequence and survives serialisation as "enum": []. Duplicate
// options and a Default outside Enum are tolerated.
type Field struct {
	Title       string
	Type        Type
	Description string
	Enum        []any
	Default     any
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	out.Enum = cloneSlice(f.Enum)
	out.Default = CloneValue(f.Default)
	return out
}

// Equal reports whether two fields are structurally identical, including the
// absent/empty distinction on Enum.
func (f Field) Equal(other Field) bool {
	if f.Title != other.Title || f.Type != other.Type || f.Description != other.Description {
		return false
	}
	if (f.Enum == nil) != (other.Enum == nil) {
		return false
	}
	if !reflect.DeepEqual(f.Enum, other.Enum) {
		return false
	}
	return reflect.DeepEqual(f.Default, other.Default)
}

// HasEnum reports whether the enum keyword is present.
func (f Field) HasEnum() bool {
	return f.Enum != nil
}

// Options returns the option sequence rendered as strings. A missing enum
// yields an empty, non-nil slice.
func (f Field) Options() []string {
	out := make([]string, 0, len(f.Enum))
	for _, value := range f.Enum {
		out = append(out, FormatValue(value))
	}
	return out
}

// WithTitle returns a copy with the title replaced.
func (f Field) WithTitle(title string) Field {
	out := f.Clone()
	out.Title = title
	return out
}

// WithDefault returns a copy with the default replaced. A nil value removes
// the keyword.
func (f Field) WithDefault(value any) Field {
	out := f.Clone()
	out.Default = CloneValue(value)
	return out
}

// WithOption returns a copy where the option at index is replaced. Indices out
// of range leave the options untouched.
func (f Field) WithOption(index int, value any) Field {
	out := f.Clone()
	if index < 0 || index >= len(out.Enum) {
		return out
	}
	out.Enum[index] = CloneValue(value)
	return out
}

// WithoutOption returns a copy with the option at index removed, keeping the
// order of the remaining options. Removing the last option leaves an empty,
// non-nil enum.
func (f Field) WithoutOption(index int) Field {
	out := f.Clone()
	if index < 0 || index >= len(out.Enum) {
		return out
	}
	enum := make([]any, 0, len(out.Enum)-1)
	enum = append(enum, out.Enum[:index]...)
	enum = append(enum, out.Enum[index+1:]...)
	out.Enum = enum
	return out
}

// AppendOption returns a copy with value appended to the option sequence.
func (f Field) AppendOption(value any) Field {
	out := f.Clone()
	if out.Enum == nil {
		out.Enum = make([]any, 0, 1)
	}
	out.Enum = append(out.Enum, CloneValue(value))
	return out
}

// FormatValue renders a schema value the way controls display it. nil
// renders as "".
func FormatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}

type fieldWire struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Type        Type   `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        *[]any `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`
}

func (f Field) wire() fieldWire {
	out := fieldWire{
		Title:       f.Title,
		Type:        f.Type,
		Description: f.Description,
		Default:     f.Default,
	}
	if f.Enum != nil {
		enum := f.Enum
		out.Enum = &enum
	}
	return out
}

func (w fieldWire) field() Field {
	out := Field{
		Title:       w.Title,
		Type:        w.Type,
		Description: w.Description,
		Default:     w.Default,
	}
	if w.Enum != nil {
		out.Enum = *w.Enum
		if out.Enum == nil {
			out.Enum = []any{}
		}
	}
	return out
}

// MarshalJSON encodes the field as a JSON Schema fragment.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.wire())
}

// UnmarshalJSON decodes a JSON Schema fragment. Unknown keywords are ignored.
func (f *Field) UnmarshalJSON(data []byte) error {
	var wire fieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("schema: decode field: %w", err)
	}
	*f = wire.field()
	return nil
}

// MarshalYAML encodes the field with the same keywords as MarshalJSON.
func (f Field) MarshalYAML() (any, error) {
	return f.wire(), nil
}

// UnmarshalYAML decodes a YAML schema fragment.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	var wire fieldWire
	if err := node.Decode(&wire); err != nil {
		return fmt.Errorf("schema: decode field: %w", err)
	}
	*f = wire.field()
	return nil
}
