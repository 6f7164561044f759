package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/widget"
)

const (
	templatePrefix = "templates/components/"
)

// NewDefaultRegistry constructs a registry with a template-backed component
// for every widget kind.
func NewDefaultRegistry() *Registry {
	registry := New()
	for _, kind := range []widget.Kind{
		widget.KindGroup,
		widget.KindHeading,
		widget.KindText,
		widget.KindTextInput,
		widget.KindSelect,
		widget.KindCheckbox,
		widget.KindButton,
		widget.KindError,
	} {
		registry.MustRegister(kind, Descriptor{
			Renderer: templateComponentRenderer(PartialFor(kind), templatePrefix+string(kind)+".tmpl"),
		})
	}
	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, node widget.Node, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.ThemePartials != nil {
			if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		payload := map[string]any{
			"node":     NodeView(node, data.Scope),
			"children": data.Children,
			"config":   data.Config,
		}
		rendered, err := data.Template.RenderTemplate(resolvedTemplate, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

// NodeView flattens a node into the template context. Callbacks are dropped;
// "interactive" records whether the node had any bound handler.
func NodeView(node widget.Node, scope string) map[string]any {
	options := node.Options
	if options == nil {
		options = []string{}
	}
	return map[string]any{
		"id":          node.ID,
		"dom_id":      DOMID(scope, node.ID),
		"kind":        string(node.Kind),
		"label":       node.Label,
		"value":       node.Value,
		"checked":     node.Checked,
		"placeholder": node.Placeholder,
		"help":        node.Help,
		"options":     options,
		"variant":     node.Variant,
		"disabled":    node.Disabled,
		"readonly":    node.ReadOnly,
		"interactive": node.HasHandler(),
	}
}

// DOMID joins scope and node id into an HTML id attribute value.
func DOMID(scope, id string) string {
	replacer := strings.NewReplacer(".", "-", "_", "-", " ", "-")
	parts := make([]string, 0, 3)
	parts = append(parts, "ff")
	if trimmed := strings.TrimSpace(scope); trimmed != "" {
		parts = append(parts, replacer.Replace(trimmed))
	}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		parts = append(parts, replacer.Replace(trimmed))
	}
	return strings.ToLower(strings.Join(parts, "-"))
}
