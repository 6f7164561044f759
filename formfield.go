// Package formfield wires the built-in field plugins, the document host and
// the page renderers together.
//
//	h, _ := formfield.NewHost(host.WithFormTitle("Survey"))
//	id, _ := h.AddField("select")
//	page, _ := formfield.Preview(ctx, h)
package formfield

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/plugins"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	vanilla "github.com/goliatone/go-formfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

// DefaultRegistry returns a plugin registry holding the select, text and
// checkbox plugins.
func DefaultRegistry() *field.Registry {
	return plugins.NewRegistry()
}

// NewHost builds a host over the default registry. Imported fields are bound
// with the built-in resolver unless opts supply another one.
func NewHost(opts ...host.Option) (*host.Host, error) {
	base := []host.Option{host.WithResolver(plugins.NewResolver())}
	return host.New(DefaultRegistry(), append(base, opts...)...)
}

// NewRenderers returns the page renderers: "vanilla" (HTML, the default) and
// "text".
func NewRenderers(format schema.Format, opts ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(opts...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(tui.TextRenderer{Format: format})
	return registry, nil
}

// Preview renders the HTML preview page of h with the default renderer.
func Preview(ctx context.Context, h *host.Host, opts ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(opts...)
	if err != nil {
		return nil, err
	}
	return renderer.RenderPage(ctx, h)
}

// ApplyPreset overlays the preset for the plugin bound to id onto the field's
// UI entry. Fields without a preset are left untouched.
func ApplyPreset(h *host.Host, presets *uischema.Store, id string) error {
	snapshot := h.Snapshot()
	pluginType, ok := snapshot.PluginType(id)
	if !ok {
		return fmt.Errorf("%w: %q", host.ErrUnboundField, id)
	}
	if _, ok := presets.Preset(pluginType); !ok {
		return nil
	}
	current, _ := snapshot.UISchema.Field(id)
	return h.UISchemaChanged(id, presets.Apply(pluginType, current))
}

// AddField adds a field of pluginType and applies its preset, if any.
func AddField(h *host.Host, presets *uischema.Store, pluginType string) (string, error) {
	id, err := h.AddField(pluginType)
	if err != nil {
		return "", err
	}
	if presets.Empty() {
		return id, nil
	}
	if err := ApplyPreset(h, presets, id); err != nil {
		return id, err
	}
	return id, nil
}
