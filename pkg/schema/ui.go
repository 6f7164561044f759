package schema

import (
	"fmt"
	"reflect"
	"slices"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// UI holds the rendering hints of one field, e.g. {"ui:placeholder": "..."}.
// No key is required; an absent key means "use the renderer default".
type UI map[string]any

// Clone returns a deep copy. A nil UI clones to an empty, non-nil map.
func (u UI) Clone() UI {
	out := make(UI, len(u))
	for key, value := range u {
		out[key] = CloneValue(value)
	}
	return out
}

// Get returns the raw hint stored under key.
func (u UI) Get(key string) (any, bool) {
	value, ok := u[key]
	return value, ok
}

// With returns a copy with key set to value.
func (u UI) With(key string, value any) UI {
	out := u.Clone()
	out[key] = CloneValue(value)
	return out
}

// Without returns a copy with key removed.
func (u UI) Without(key string) UI {
	out := u.Clone()
	delete(out, key)
	return out
}

// UIDocument maps field identifiers to their UI hints.
type UIDocument struct {
	entries map[string]UI
}

// EmptyUIDocument returns the {} document. Its map is allocated so encoders
// that skip MarshalJSON for nil maps still write an object.
func EmptyUIDocument() UIDocument {
	return UIDocument{entries: map[string]UI{}}
}

// NewUIDocument builds a document from a plain map, copying every entry.
func NewUIDocument(entries map[string]UI) UIDocument {
	doc := UIDocument{entries: make(map[string]UI, len(entries))}
	for id, ui := range entries {
		doc.entries[id] = ui.Clone()
	}
	return doc
}

// Len returns the number of field entries.
func (d UIDocument) Len() int {
	return len(d.entries)
}

// Keys returns the field identifiers in sorted order.
func (d UIDocument) Keys() []string {
	return sortedKeys(d.entries)
}

// Has reports whether an entry exists for id.
func (d UIDocument) Has(id string) bool {
	_, ok := d.entries[id]
	return ok
}

// Field returns a copy of the hints stored for id.
func (d UIDocument) Field(id string) (UI, bool) {
	ui, ok := d.entries[id]
	if !ok {
		return nil, false
	}
	return ui.Clone(), true
}

// With returns a copy of the document with the entry for id replaced in full.
func (d UIDocument) With(id string, ui UI) UIDocument {
	entries := make(map[string]UI, len(d.entries)+1)
	for key, value := range d.entries {
		entries[key] = value
	}
	entries[id] = ui.Clone()
	return UIDocument{entries: entries}
}

// Without returns a copy of the document without id.
func (d UIDocument) Without(id string) UIDocument {
	if !d.Has(id) {
		return d
	}
	entries := make(map[string]UI, len(d.entries))
	for key, value := range d.entries {
		if key != id {
			entries[key] = value
		}
	}
	return UIDocument{entries: entries}
}

// Rename re-keys from to to. Missing entries return the receiver unchanged.
func (d UIDocument) Rename(from, to string) UIDocument {
	ui, ok := d.entries[from]
	if !ok {
		return d
	}
	return d.Without(from).With(to, ui)
}

// Map returns a deep copy of the document as a plain map.
func (d UIDocument) Map() map[string]UI {
	out := make(map[string]UI, len(d.entries))
	for key, ui := range d.entries {
		out[key] = ui.Clone()
	}
	return out
}

// Equal reports whether both documents hold the same entries.
func (d UIDocument) Equal(other UIDocument) bool {
	if len(d.entries) != len(other.entries) {
		return false
	}
	for key, ui := range d.entries {
		theirs, ok := other.entries[key]
		if !ok || !reflect.DeepEqual(ui.Clone(), theirs.Clone()) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the document as a JSON object keyed by field id.
func (d UIDocument) MarshalJSON() ([]byte, error) {
	if len(d.entries) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(d.entries)
}

// UnmarshalJSON decodes a JSON object keyed by field id.
func (d *UIDocument) UnmarshalJSON(data []byte) error {
	var entries map[string]UI
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("schema: decode ui schema: %w", err)
	}
	*d = NewUIDocument(entries)
	return nil
}

// MarshalYAML encodes the document as a YAML mapping keyed by field id.
func (d UIDocument) MarshalYAML() (any, error) {
	if len(d.entries) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}, nil
	}
	return d.entries, nil
}

// UnmarshalYAML decodes a YAML mapping keyed by field id.
func (d *UIDocument) UnmarshalYAML(node *yaml.Node) error {
	var entries map[string]UI
	if err := node.Decode(&entries); err != nil {
		return fmt.Errorf("schema: decode ui schema: %w", err)
	}
	*d = NewUIDocument(entries)
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
