package field

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

// Matcher decides whether a plugin type should own an imported field.
type Matcher func(field schema.Field, ui schema.UI) bool

type rule struct {
	pluginType string
	priority   int
	match      Matcher
	order      int
}

// Resolver picks plugin types for fields loaded from existing documents.
// An explicit ui:widget hint wins; otherwise the highest priority matcher
// that accepts the field decides and ties fall back to registration order.
// An empty resolver only honours explicit hints.
type Resolver struct {
	mu    sync.RWMutex
	rules []rule
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Register adds a matcher for pluginType with the provided priority.
func (r *Resolver) Register(pluginType string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(pluginType)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		pluginType: trimmed,
		priority:   priority,
		match:      matcher,
		order:      len(r.rules),
	})
}

// Resolve returns the plugin type for a field.
func (r *Resolver) Resolve(field schema.Field, ui schema.UI) (string, bool) {
	if explicit := uischema.Widget(ui); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field, ui) {
			return entry.pluginType, true
		}
	}
	return "", false
}
