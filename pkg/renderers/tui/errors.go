package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrHostRequired is returned when a session is built without a host.
	ErrHostRequired = errors.New("tui: host is required")
)
