// Package schema defines the three documents a form host keeps in sync: the
// JSON Schema (draft-07) document describing every field, the UI schema
// document holding per-field rendering hints, and the form data document
// holding the current values.
//
// Every document type is an immutable value. Methods that look like mutators
// (WithProperty, With, Without, Rename...) return a new document that shares
// untouched entries with the receiver, so a snapshot handed to a renderer stays
// valid after the host installs a newer version. Read accessors return deep
// copies for the same reason.
package schema
