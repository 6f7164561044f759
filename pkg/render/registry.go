package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUnknownRenderer is returned by Get and SetDefault for names nothing
	// registered.
	ErrUnknownRenderer = errors.New("render: unknown renderer")
	// ErrDuplicateRenderer is returned when a name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Registry holds page renderers keyed by lower-cased name. The first one
// registered is the default until SetDefault picks another.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	preferred string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds renderer under its Name().
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := key(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.renderers[name]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
	}
	r.renderers[name] = renderer
	if r.preferred == "" {
		r.preferred = name
	}
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// SetDefault makes name the renderer Get("") returns.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.renderers[key(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	r.preferred = key(name)
	return nil
}

// Default names the renderer Get("") returns, or "" when empty.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.preferred
}

// Get returns the renderer called name. A blank name selects the default.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lookup := key(name)
	if lookup == "" {
		lookup = r.preferred
	}
	if renderer, ok := r.renderers[lookup]; ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.renderers))
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.renderers[key(name)]
	return ok
}
