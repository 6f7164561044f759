package uischema

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// Hint keys recognised by the built-in plugins and renderers.
const (
	KeyPlaceholder = "ui:placeholder"
	KeyWidget      = "ui:widget"
	KeyHelp        = "ui:help"
	KeyDisabled    = "ui:disabled"
)

// Store keeps UI hint presets keyed by plugin type. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	presets map[string]Preset
}

// Preset is a set of hints loaded for one plugin type.
type Preset struct {
	PluginType string
	Source     string
	Hints      schema.UI
}

// String returns the hint stored under key when it is a non-blank string.
func String(ui schema.UI, key string) (string, bool) {
	raw, ok := ui[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Placeholder returns the placeholder hint or fallback when the hint is
// missing or blank.
func Placeholder(ui schema.UI, fallback string) string {
	if value, ok := String(ui, KeyPlaceholder); ok {
		return value
	}
	return fallback
}

// Widget returns the explicit widget hint, normalised to lower case.
func Widget(ui schema.UI) string {
	value, _ := String(ui, KeyWidget)
	return strings.ToLower(strings.TrimSpace(value))
}

// Help returns the help text hint, if any.
func Help(ui schema.UI) string {
	value, _ := String(ui, KeyHelp)
	return value
}

// Disabled reports whether the field was marked disabled through hints.
func Disabled(ui schema.UI) bool {
	value, ok := ui[KeyDisabled].(bool)
	return ok && value
}

// Merge overlays preset on top of base and returns a new map. Neither input
// is modified.
func Merge(base, preset schema.UI) schema.UI {
	out := base.Clone()
	for key, value := range preset {
		out[key] = schema.CloneValue(value)
	}
	return out
}
