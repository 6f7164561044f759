package host

import (
	"io"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// Snapshot is one installed version of the three documents. Snapshots are
// immutable; holding one across transitions is safe.
type Snapshot struct {
	Version  uint64
	Schema   schema.Form
	UISchema schema.UIDocument
	Data     schema.Data

	bindings map[string]string
}

// PluginType returns the plugin type bound to id.
func (s Snapshot) PluginType(id string) (string, bool) {
	pluginType, ok := s.bindings[id]
	return pluginType, ok && pluginType != ""
}

// Bindings returns a copy of the field id to plugin type map.
func (s Snapshot) Bindings() map[string]string {
	out := make(map[string]string, len(s.bindings))
	for id, pluginType := range s.bindings {
		out[id] = pluginType
	}
	return out
}

// Bundle groups the three documents for serialisation.
func (s Snapshot) Bundle() schema.Bundle {
	return schema.Bundle{Schema: s.Schema, UISchema: s.UISchema, FormData: s.Data}
}

// Export writes the three documents in the requested format.
func (s Snapshot) Export(w io.Writer, format schema.Format) error {
	return s.Bundle().Encode(w, format)
}

// Slice is everything a renderer needs about one field.
type Slice struct {
	ID         string
	PluginType string
	Schema     schema.Field
	UISchema   schema.UI
	Value      any
}

func (s Snapshot) slice(id string) (Slice, bool) {
	f, ok := s.Schema.Property(id)
	if !ok {
		return Slice{}, false
	}
	ui, ok := s.UISchema.Field(id)
	if !ok {
		ui = schema.UI{}
	}
	value, _ := s.Data.Value(id)
	pluginType, _ := s.PluginType(id)
	return Slice{ID: id, PluginType: pluginType, Schema: f, UISchema: ui, Value: value}, true
}

func (s Snapshot) withBinding(id, pluginType string) map[string]string {
	out := s.Bindings()
	out[id] = pluginType
	return out
}

func (s Snapshot) withoutBinding(id string) map[string]string {
	out := s.Bindings()
	delete(out, id)
	return out
}
