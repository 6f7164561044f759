package schema

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Data maps field identifiers to their current values.
type Data struct {
	values map[string]any
}

// EmptyData returns the {} document. Its map is allocated so encoders that
// skip MarshalJSON for nil maps still write an object.
func EmptyData() Data {
	return Data{values: map[string]any{}}
}

// NewData builds a document from a plain map, deep copying every value.
func NewData(values map[string]any) Data {
	doc := Data{values: make(map[string]any, len(values))}
	for id, value := range values {
		doc.values[id] = CloneValue(value)
	}
	return doc
}

// Len returns the number of values.
func (d Data) Len() int {
	return len(d.values)
}

// Keys returns the field identifiers in sorted order.
func (d Data) Keys() []string {
	return sortedKeys(d.values)
}

// Has reports whether a value exists for id.
func (d Data) Has(id string) bool {
	_, ok := d.values[id]
	return ok
}

// Value returns a deep copy of the value stored for id.
func (d Data) Value(id string) (any, bool) {
	value, ok := d.values[id]
	if !ok {
		return nil, false
	}
	return CloneValue(value), true
}

// With returns a copy of the document with the value for id replaced.
func (d Data) With(id string, value any) Data {
	values := make(map[string]any, len(d.values)+1)
	for key, v := range d.values {
		values[key] = v
	}
	values[id] = CloneValue(value)
	return Data{values: values}
}

// Without returns a copy of the document without id.
func (d Data) Without(id string) Data {
	if !d.Has(id) {
		return d
	}
	values := make(map[string]any, len(d.values))
	for key, v := range d.values {
		if key != id {
			values[key] = v
		}
	}
	return Data{values: values}
}

// Rename re-keys from to to. Missing entries return the receiver unchanged.
func (d Data) Rename(from, to string) Data {
	value, ok := d.values[from]
	if !ok {
		return d
	}
	return d.Without(from).With(to, value)
}

// Map returns a deep copy of the document as a plain map.
func (d Data) Map() map[string]any {
	out := make(map[string]any, len(d.values))
	for key, value := range d.values {
		out[key] = CloneValue(value)
	}
	return out
}

// Equal reports whether both documents hold the same values.
func (d Data) Equal(other Data) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for key, value := range d.values {
		theirs, ok := other.values[key]
		if !ok || !reflect.DeepEqual(value, theirs) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the document as a JSON object keyed by field id.
func (d Data) MarshalJSON() ([]byte, error) {
	if len(d.values) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(d.values)
}

// UnmarshalJSON decodes a JSON object keyed by field id.
func (d *Data) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("schema: decode form data: %w", err)
	}
	*d = NewData(values)
	return nil
}

// MarshalYAML encodes the document as a YAML mapping keyed by field id.
func (d Data) MarshalYAML() (any, error) {
	if len(d.values) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}, nil
	}
	return d.values, nil
}

// UnmarshalYAML decodes a YAML mapping keyed by field id.
func (d *Data) UnmarshalYAML(node *yaml.Node) error {
	var values map[string]any
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("schema: decode form data: %w", err)
	}
	*d = NewData(values)
	return nil
}
