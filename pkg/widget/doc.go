// Package widget defines the presentation primitives field plugins compose:
// a declarative Node tree whose actionable nodes carry the callbacks a driver
// fires when the user edits a value, toggles a box or presses a button.
//
// Nodes are plain values. The HTML and terminal renderers read them; tests
// and drivers locate nodes by ID and fire their handlers through Change,
// Toggle and Click.
package widget
