package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// FieldError is the validation feedback for one field. It is handed to
// plugins in interact mode, which only read Message.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// Error implements error.
func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message())
}

// Message joins the messages for display.
func (e *FieldError) Message() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Messages, "; ")
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to report schemas that cannot be
// converted.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithEmptyValues validates "" and nil values instead of skipping them.
func WithEmptyValues() Option {
	return func(v *Validator) { v.checkEmpty = true }
}

// Validator checks values against field schemas.
type Validator struct {
	logger     *slog.Logger
	checkEmpty bool
}

// NewValidator constructs a validator. Empty values are skipped by default:
// a field nobody answered yet is not an error.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// ToOpenAPI converts a field schema into a kin-openapi schema. Values go
// through JSON so enum entries and defaults compare the way decoded
// submissions do.
func ToOpenAPI(f schema.Field) (*openapi3.Schema, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("validation: encode field: %w", err)
	}
	out := openapi3.NewSchema()
	if err := out.UnmarshalJSON(payload); err != nil {
		return nil, fmt.Errorf("validation: convert field: %w", err)
	}
	return out, nil
}

// ValidateValue checks value against f and returns nil when it passes.
func (v *Validator) ValidateValue(ctx context.Context, id string, f schema.Field, value any) *FieldError {
	if !v.checkEmpty && isEmpty(value) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return &FieldError{Field: id, Messages: []string{err.Error()}}
	}

	target, err := ToOpenAPI(f)
	if err != nil {
		v.logger.Warn("field schema not convertible", "field", id, "error", err)
		return nil
	}
	normalised, err := jsonValue(value)
	if err != nil {
		return &FieldError{Field: id, Messages: []string{err.Error()}}
	}

	if err := target.VisitJSON(normalised, openapi3.MultiErrors()); err != nil {
		messages := dedupe(reasons(err))
		if len(messages) == 0 {
			messages = []string{"value is invalid"}
		}
		return &FieldError{Field: id, Messages: messages}
	}
	return nil
}

// ValidateForm checks every value that has a schema entry. Data entries
// without a schema entry are reported as form-level errors.
func (v *Validator) ValidateForm(ctx context.Context, form schema.Form, data schema.Data) ErrorMapping {
	payload := make(map[string][]string)
	for _, id := range form.Keys() {
		f, _ := form.Property(id)
		value, _ := data.Value(id)
		if fe := v.ValidateValue(ctx, id, f, value); fe != nil {
			payload[id] = append(payload[id], fe.Messages...)
		}
	}
	for _, id := range data.Keys() {
		if !form.Has(id) {
			payload["form"] = append(payload["form"], fmt.Sprintf("value %q has no schema entry", id))
		}
	}
	return MapErrorPayload(form, payload)
}

func isEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	default:
		return false
	}
}

func jsonValue(value any) (any, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("validation: encode value: %w", err)
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("validation: decode value: %w", err)
	}
	return out, nil
}

func reasons(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]string, 0, len(multi))
		for _, item := range multi {
			out = append(out, reasons(item)...)
		}
		return out
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []string{schemaErr.Reason}
	}
	return []string{err.Error()}
}
