// Package validation checks form values against their field schemas using
// kin-openapi's schema engine and lints field schemas for the soft
// inconsistencies the editors tolerate, such as a default that is no longer
// one of the options. Results are values: FieldError for a single field and
// ErrorMapping for a whole form.
package validation
