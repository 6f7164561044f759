package vanilla

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/renderers/vanilla/components"
)

// DefaultThemeFallbacks maps every component partial to its built-in
// template.
func DefaultThemeFallbacks() map[string]string {
	return map[string]string{
		components.PartialGroup:     "templates/components/group.tmpl",
		components.PartialHeading:   "templates/components/heading.tmpl",
		components.PartialText:      "templates/components/text.tmpl",
		components.PartialTextInput: "templates/components/text-input.tmpl",
		components.PartialSelect:    "templates/components/select.tmpl",
		components.PartialCheckbox:  "templates/components/checkbox.tmpl",
		components.PartialButton:    "templates/components/button.tmpl",
		components.PartialError:     "templates/components/error.tmpl",
	}
}

// StaticSelector serves a fixed set of manifests. It satisfies
// theme.ThemeSelector for callers that configure themes in code or config.
type StaticSelector struct {
	DefaultTheme   string
	DefaultVariant string
	Manifests      map[string]*theme.Manifest
}

// NewStaticSelector indexes manifests by name. The first manifest becomes the
// default theme.
func NewStaticSelector(manifests ...*theme.Manifest) *StaticSelector {
	selector := &StaticSelector{Manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		if selector.DefaultTheme == "" {
			selector.DefaultTheme = manifest.Name
		}
		selector.Manifests[manifest.Name] = manifest
	}
	return selector
}

// Select returns the named manifest, falling back to the defaults for empty
// arguments.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s == nil {
		return nil, fmt.Errorf("vanilla: theme selector is nil")
	}
	if strings.TrimSpace(name) == "" {
		name = s.DefaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = s.DefaultVariant
	}
	manifest, ok := s.Manifests[name]
	if !ok {
		return nil, fmt.Errorf("vanilla: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("vanilla: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// ThemeConfig derives renderer configuration from a selection. Variant
// tokens, templates and asset files override the base manifest; fallbacks
// fill partials neither defines. Every token becomes a "--<token>" CSS
// variable.
func ThemeConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: maps.Clone(fallbacks),
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	if cfg.Partials == nil {
		cfg.Partials = map[string]string{}
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}
	prefix := manifest.Assets.Prefix
	files := maps.Clone(manifest.Assets.Files)
	if files == nil {
		files = map[string]string{}
	}
	maps.Copy(cfg.Tokens, manifest.Tokens)
	maps.Copy(cfg.Partials, manifest.Templates)
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		maps.Copy(cfg.Tokens, variant.Tokens)
		maps.Copy(cfg.Partials, variant.Templates)
		maps.Copy(files, variant.Assets.Files)
		if strings.TrimSpace(variant.Assets.Prefix) != "" {
			prefix = variant.Assets.Prefix
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || strings.TrimSpace(file) == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
	return cfg
}

func buildThemeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"tokens":         maps.Clone(cfg.Tokens),
		"css_vars_style": cssVarsStyle(cfg.CSSVars),
	}
}

// cssVarsStyle renders a :root block. Declarations that could break out of
// the style element or the block are skipped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(vars))

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		value := vars[key]
		if !safeCSS(key) || !safeCSS(value) {
			continue
		}
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func safeCSS(value string) bool {
	return strings.TrimSpace(value) != "" && !strings.ContainsAny(value, "<>{};")
}
