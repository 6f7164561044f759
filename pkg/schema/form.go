package schema

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Form is the root schema document: an object whose properties are the
// instantiated fields keyed by field identifier. Properties keep their
// insertion order, which is also their serialisation order.
type Form struct {
	title string
	order []string
	props map[string]Field
}

// NewForm returns an empty object schema with the provided title.
func NewForm(title string) Form {
	return Form{title: title}
}

// DefaultForm returns {title:"Form Title", type:"object", properties:{}}.
func DefaultForm() Form {
	return NewForm(DefaultFormTitle)
}

// Title returns the form title.
func (f Form) Title() string {
	return f.title
}

// Type always reports TypeObject; the root document is an object schema.
func (f Form) Type() Type {
	return TypeObject
}

// Len returns the number of properties.
func (f Form) Len() int {
	return len(f.order)
}

// Keys returns the property identifiers in insertion order.
func (f Form) Keys() []string {
	return slices.Clone(f.order)
}

// Has reports whether a property exists.
func (f Form) Has(id string) bool {
	_, ok := f.props[id]
	return ok
}

// Property returns a deep copy of the field stored under id.
func (f Form) Property(id string) (Field, bool) {
	field, ok := f.props[id]
	if !ok {
		return Field{}, false
	}
	return field.Clone(), true
}

// WithTitle returns a copy of the form with a new title.
func (f Form) WithTitle(title string) Form {
	f.title = title
	return f
}

// WithProperty returns a copy of the form with id set to field. The field is
// stored in full, replacing any previous entry; a new id is appended to the
// property order while an existing one keeps its position.
func (f Form) WithProperty(id string, field Field) Form {
	props := make(map[string]Field, len(f.props)+1)
	for key, value := range f.props {
		props[key] = value
	}
	order := f.order
	if _, exists := f.props[id]; !exists {
		order = append(slices.Clone(f.order), id)
	}
	props[id] = field.Clone()
	return Form{title: f.title, order: order, props: props}
}

// WithoutProperty returns a copy of the form without id. Missing ids return
// the receiver unchanged.
func (f Form) WithoutProperty(id string) Form {
	if !f.Has(id) {
		return f
	}
	props := make(map[string]Field, len(f.props))
	for key, value := range f.props {
		if key != id {
			props[key] = value
		}
	}
	order := make([]string, 0, len(f.order))
	for _, key := range f.order {
		if key != id {
			order = append(order, key)
		}
	}
	return Form{title: f.title, order: order, props: props}
}

// RenameProperty re-keys from to to, keeping its position. It reports false
// when from is missing or to is already taken.
func (f Form) RenameProperty(from, to string) (Form, bool) {
	if !f.Has(from) || f.Has(to) {
		return f, false
	}
	props := make(map[string]Field, len(f.props))
	for key, value := range f.props {
		if key == from {
			key = to
		}
		props[key] = value
	}
	order := slices.Clone(f.order)
	for idx, key := range order {
		if key == from {
			order[idx] = to
		}
	}
	return Form{title: f.title, order: order, props: props}, true
}

// Equal reports whether both forms hold the same title, order and fields.
func (f Form) Equal(other Form) bool {
	if f.title != other.title || !slices.Equal(f.order, other.order) {
		return false
	}
	for _, key := range f.order {
		if !f.props[key].Equal(other.props[key]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the draft-07 object schema with properties in insertion
// order.
func (f Form) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if f.title != "" {
		title, err := json.Marshal(f.title)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`"title":`)
		buf.Write(title)
		buf.WriteByte(',')
	}
	buf.WriteString(`"type":"object","properties":{`)
	for idx, key := range f.order {
		if idx > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.props[key])
		if err != nil {
			return nil, fmt.Errorf("schema: encode property %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

type formWire struct {
	Title      string             `json:"title"`
	Type       Type               `json:"type"`
	Properties stdjson.RawMessage `json:"properties"`
}

// UnmarshalJSON decodes an object schema, preserving the order in which the
// properties appear in the payload.
func (f *Form) UnmarshalJSON(data []byte) error {
	var wire formWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("schema: decode form: %w", err)
	}
	if wire.Type != "" && wire.Type != TypeObject {
		return fmt.Errorf("schema: form type must be %q, got %q", TypeObject, wire.Type)
	}
	out := NewForm(wire.Title)
	if len(bytes.TrimSpace(wire.Properties)) > 0 && !bytes.Equal(bytes.TrimSpace(wire.Properties), []byte("null")) {
		keys, err := objectKeys(wire.Properties)
		if err != nil {
			return fmt.Errorf("schema: decode form properties: %w", err)
		}
		var props map[string]Field
		if err := json.Unmarshal(wire.Properties, &props); err != nil {
			return fmt.Errorf("schema: decode form properties: %w", err)
		}
		for _, key := range keys {
			out = out.WithProperty(key, props[key])
		}
	}
	*f = out
	return nil
}

// objectKeys lists the keys of a JSON object in document order. Duplicate
// keys collapse onto their first position.
func objectKeys(raw []byte) ([]string, error) {
	dec := stdjson.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(stdjson.Delim); !ok || delim != '{' {
		return nil, errors.New("expected object")
	}
	var keys []string
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected object key")
		}
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		var skip stdjson.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// MarshalYAML encodes the form as an ordered YAML mapping.
func (f Form) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if f.title != "" {
		root.Content = append(root.Content, scalar("title"), scalar(f.title))
	}
	root.Content = append(root.Content, scalar("type"), scalar(string(TypeObject)))

	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range f.order {
		value := &yaml.Node{}
		if err := value.Encode(f.props[key]); err != nil {
			return nil, fmt.Errorf("schema: encode property %q: %w", key, err)
		}
		props.Content = append(props.Content, scalar(key), value)
	}
	if len(props.Content) == 0 {
		props.Style = yaml.FlowStyle
	}
	root.Content = append(root.Content, scalar("properties"), props)
	return root, nil
}

// UnmarshalYAML decodes an ordered YAML mapping.
func (f *Form) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: form must be a mapping")
	}
	out := NewForm("")
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key, value := node.Content[idx].Value, node.Content[idx+1]
		switch strings.TrimSpace(key) {
		case "title":
			out.title = value.Value
		case "type":
			if value.Value != "" && Type(value.Value) != TypeObject {
				return fmt.Errorf("schema: form type must be %q, got %q", TypeObject, value.Value)
			}
		case "properties":
			if value.Kind != yaml.MappingNode {
				continue
			}
			for p := 0; p+1 < len(value.Content); p += 2 {
				var field Field
				if err := value.Content[p+1].Decode(&field); err != nil {
					return fmt.Errorf("schema: decode property %q: %w", value.Content[p].Value, err)
				}
				out = out.WithProperty(value.Content[p].Value, field)
			}
		}
	}
	*f = out
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
