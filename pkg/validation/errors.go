package validation

import (
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// ErrorMapping holds validation messages keyed by field id plus messages
// that belong to the form as a whole.
type ErrorMapping struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// Empty reports whether the mapping carries no messages.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// Field returns the error handle for id, or nil when the field has no
// messages.
func (m ErrorMapping) Field(id string) *FieldError {
	messages := m.Fields[id]
	if len(messages) == 0 {
		return nil
	}
	return &FieldError{Field: id, Messages: slices.Clone(messages)}
}

// MapErrorPayload files messages keyed by JSON pointers ("#/properties/x"),
// dotted paths ("formData.x", "$.data[0].x") or bare ids under the form
// property they point at. Paths that name no property become form-level
// messages. Messages are trimmed and de-duplicated.
func MapErrorPayload(form schema.Form, payload map[string][]string) ErrorMapping {
	var mapping ErrorMapping
	paths := make([]string, 0, len(payload))
	for path := range payload {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		messages := dedupe(payload[path])
		if len(messages) == 0 {
			continue
		}
		id, ok := propertyFor(form, path)
		if !ok {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		mapping.Fields[id] = dedupe(append(mapping.Fields[id], messages...))
	}
	mapping.Form = dedupe(mapping.Form)
	return mapping
}

// propertyFor walks the path segments, skipping document wrappers and array
// indices, and reports the first segment that is a property of form.
func propertyFor(form schema.Form, path string) (string, bool) {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		switch r {
		case '#', '$', '/', '.', '[', ']':
			return true
		}
		return false
	})
	for _, segment := range segments {
		segment = strings.NewReplacer("~1", "/", "~0", "~").Replace(strings.TrimSpace(segment))
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		switch strings.ToLower(segment) {
		case "", "properties", "formdata", "data":
			continue
		}
		if form.Has(segment) {
			return segment, true
		}
		return "", false
	}
	return "", false
}

func dedupe(messages []string) []string {
	var out []string
	for _, message := range messages {
		message = strings.TrimSpace(message)
		if message != "" && !slices.Contains(out, message) {
			out = append(out, message)
		}
	}
	return out
}
