package validation

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// Severity grades lint issues.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// SchemaIssue represents a lint finding with optional location metadata.
type SchemaIssue struct {
	Path     string   `json:"path,omitempty"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// SchemaValidationResult captures lint outcomes for builder previews. Valid
// is false only when an error-level issue is present; warnings describe
// tolerated inconsistencies.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

func (r *SchemaValidationResult) add(issue SchemaIssue) {
	if issue.Severity == SeverityError {
		r.Valid = false
	}
	r.Issues = append(r.Issues, issue)
}

// Lint checks one field schema. Structural problems reported by kin-openapi
// are errors; an empty option list, duplicate options and a default outside
// the options are warnings.
func Lint(ctx context.Context, id string, f schema.Field) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}
	path := "#/properties/" + id

	if f.Type != "" && !f.Type.Valid() {
		result.add(SchemaIssue{Path: path + "/type", Field: id, Severity: SeverityError,
			Message: fmt.Sprintf("unsupported type %q", f.Type)})
	}

	structural := f.Clone()
	structural.Default = nil
	if converted, err := ToOpenAPI(structural); err != nil {
		result.add(SchemaIssue{Path: path, Field: id, Severity: SeverityError, Message: err.Error()})
	} else if err := converted.Validate(ctx); err != nil {
		result.add(SchemaIssue{Path: path, Field: id, Severity: SeverityError, Message: err.Error()})
	}

	if f.HasEnum() {
		options := f.Options()
		if len(options) == 0 {
			result.add(SchemaIssue{Path: path + "/enum", Field: id, Severity: SeverityWarning,
				Message: "option list is empty"})
		}
		seen := make(map[string]int, len(options))
		for idx, option := range options {
			if first, dup := seen[option]; dup {
				result.add(SchemaIssue{Path: fmt.Sprintf("%s/enum/%d", path, idx), Field: id, Severity: SeverityWarning,
					Message: fmt.Sprintf("option %q duplicates option %d", option, first)})
				continue
			}
			seen[option] = idx
		}
		if f.Default != nil {
			if _, ok := seen[schema.FormatValue(f.Default)]; !ok {
				result.add(SchemaIssue{Path: path + "/default", Field: id, Severity: SeverityWarning,
					Message: fmt.Sprintf("default %q is not one of the options", schema.FormatValue(f.Default))})
			}
		}
	}
	return result
}

// LintForm lints every property in document order.
func LintForm(ctx context.Context, form schema.Form) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}
	for _, id := range form.Keys() {
		f, _ := form.Property(id)
		for _, issue := range Lint(ctx, id, f).Issues {
			result.add(issue)
		}
	}
	return result
}
