package components

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Renderer writes the HTML for one widget node into buf. Children of a group
// arrive pre-rendered in data.Children.
type Renderer func(buf *bytes.Buffer, node widget.Node, data ComponentData) error

// ComponentData carries helpers and configuration for component renderers.
type ComponentData struct {
	Template      rendertemplate.TemplateRenderer
	ThemePartials map[string]string
	// Scope prefixes DOM ids so the same node ids can appear once per field
	// and mode on a page.
	Scope    string
	Children string
	Config   map[string]any
}

// Descriptor is a component renderer and the stylesheets pages using it
// must link.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
}

// Registry maps widget kinds to components. Overriding a default kind
// swaps its markup everywhere the kind appears.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Clone returns a deep copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.components {
		cloned.components[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with kind. Existing entries are replaced.
func (r *Registry) Register(kind widget.Kind, descriptor Descriptor) error {
	name := normalize(string(kind))
	if name == "" {
		return fmt.Errorf("components: widget kind is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(kind widget.Kind, descriptor Descriptor) {
	if err := r.Register(kind, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by kind.
func (r *Registry) Descriptor(kind widget.Kind) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(string(kind))]
	return cloneDescriptor(descriptor), ok
}

// Names returns a sorted slice of registered kinds.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.components))
}

// Stylesheets returns the deduplicated stylesheets of the given kinds in
// first-seen order.
func (r *Registry) Stylesheets(kinds []widget.Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, kind := range kinds {
		for _, href := range r.components[normalize(string(kind))].Stylesheets {
			if href != "" && !slices.Contains(out, href) {
				out = append(out, href)
			}
		}
	}
	return out
}

func cloneDescriptor(src Descriptor) Descriptor {
	src.Stylesheets = slices.Clone(src.Stylesheets)
	return src
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
