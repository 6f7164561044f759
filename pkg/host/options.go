package host

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// IDGenerator proposes an identifier for a new field of pluginType. The host
// calls it again when the proposal is already taken.
type IDGenerator func(pluginType string) string

// UUIDGenerator returns ids of the form <plugin-type>_<4 hex characters>.
func UUIDGenerator() IDGenerator {
	return func(pluginType string) string {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
		return pluginType + "_" + suffix
	}
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the transition logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithIDGenerator replaces the random id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(h *Host) {
		if gen != nil {
			h.newID = gen
		}
	}
}

// WithDefaultForm sets the schema document installed on construction and by
// Reset.
func WithDefaultForm(form schema.Form) Option {
	return func(h *Host) { h.initial = form }
}

// WithFormTitle is shorthand for an empty default form with title.
func WithFormTitle(title string) Option {
	return func(h *Host) { h.initial = schema.NewForm(title) }
}

// WithObserver registers an observer. Observers run in registration order.
func WithObserver(observer Observer) Option {
	return func(h *Host) {
		if observer != nil {
			h.observers = append(h.observers, observer)
		}
	}
}

// WithValidator enables validation feedback in interact mode.
func WithValidator(v *validation.Validator) Option {
	return func(h *Host) { h.validator = v }
}

// WithResolver sets the resolver Load uses to bind imported fields.
func WithResolver(r *field.Resolver) Option {
	return func(h *Host) { h.resolver = r }
}

// WithMaxIDAttempts bounds the number of generator calls per AddField.
func WithMaxIDAttempts(n int) Option {
	return func(h *Host) {
		if n > 0 {
			h.maxAttempts = n
		}
	}
}
