package host

import "errors"

var (
	// ErrUnknownField is returned when a transition names a field that is
	// not in the schema document.
	ErrUnknownField = errors.New("host: unknown field")
	// ErrUnknownPlugin is returned when no plugin is registered for a type.
	ErrUnknownPlugin = errors.New("host: unknown plugin")
	// ErrDuplicateField is returned when a rename targets an existing id.
	ErrDuplicateField = errors.New("host: field already exists")
	// ErrUnboundField is returned when rendering a field no plugin owns.
	ErrUnboundField = errors.New("host: field has no plugin")
	// ErrIDExhausted is returned when the generator keeps proposing taken ids.
	ErrIDExhausted = errors.New("host: could not allocate field id")
)
