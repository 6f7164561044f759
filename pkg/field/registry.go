package field

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrDuplicatePlugin is returned when a type id is registered twice.
	ErrDuplicatePlugin = errors.New("field: plugin already registered")
	// ErrPluginNotFound is returned for unknown type ids.
	ErrPluginNotFound = errors.New("field: plugin not found")
)

// MenuItem is one entry of the "add field" menu.
type MenuItem struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Icon  Icon   `json:"icon,omitempty"`
}

// Registry stores plugins by type id. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Register adds a plugin under its Type(). Duplicate ids return an error.
func (r *Registry) Register(plugin Plugin) error {
	if plugin == nil {
		return fmt.Errorf("field: plugin is required")
	}
	id := normalize(plugin.Type())
	if id == "" {
		return fmt.Errorf("field: plugin type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePlugin, id)
	}
	r.plugins[id] = plugin
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(plugin Plugin) {
	if err := r.Register(plugin); err != nil {
		panic(err)
	}
}

// Get retrieves a plugin by type id.
func (r *Registry) Get(id string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[normalize(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPluginNotFound, id)
	}
	return plugin, nil
}

// Has reports whether a plugin is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.plugins[normalize(id)]
	return ok
}

// List returns the sorted type ids.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Menu lists the registered plugins for presentation, sorted by type id.
func (r *Registry) Menu() []MenuItem {
	ids := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]MenuItem, 0, len(ids))
	for _, id := range ids {
		meta := r.plugins[id].Meta()
		items = append(items, MenuItem{Type: id, Label: meta.Label, Icon: meta.Icon})
	}
	return items
}
