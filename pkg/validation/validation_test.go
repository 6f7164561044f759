package validation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/validation"
)

func colourField() schema.Field {
	return schema.Field{
		Title:   "Colour",
		Type:    schema.TypeString,
		Enum:    []any{"Red", "Blue"},
		Default: "Red",
	}
}

func TestValidateValue(t *testing.T) {
	v := validation.NewValidator()
	ctx := context.Background()

	if fe := v.ValidateValue(ctx, "colour", colourField(), "Blue"); fe != nil {
		t.Fatalf("expected valid value, got %v", fe)
	}
	if fe := v.ValidateValue(ctx, "colour", colourField(), ""); fe != nil {
		t.Fatalf("empty values are skipped, got %v", fe)
	}

	fe := v.ValidateValue(ctx, "colour", colourField(), "Green")
	if fe == nil {
		t.Fatalf("expected enum violation")
	}
	if fe.Field != "colour" || fe.Message() == "" {
		t.Fatalf("unexpected field error %#v", fe)
	}
	if !strings.Contains(fe.Error(), "colour") {
		t.Fatalf("error string should name the field: %q", fe.Error())
	}

	if fe := v.ValidateValue(ctx, "agree", schema.Field{Type: schema.TypeBoolean}, "yes"); fe == nil {
		t.Fatalf("expected type violation for boolean field")
	}
	if fe := v.ValidateValue(ctx, "size", schema.Field{Type: schema.TypeInteger, Enum: []any{1, 2}}, 2); fe != nil {
		t.Fatalf("integer enum should accept 2, got %v", fe)
	}
}

func TestValidateValue_CheckEmpty(t *testing.T) {
	v := validation.NewValidator(validation.WithEmptyValues())
	if fe := v.ValidateValue(context.Background(), "colour", colourField(), ""); fe == nil {
		t.Fatalf("expected empty string to fail the enum")
	}
}

func TestValidateForm(t *testing.T) {
	form := schema.DefaultForm().
		WithProperty("colour", colourField()).
		WithProperty("name", schema.Field{Type: schema.TypeString})
	data := schema.EmptyData().
		With("colour", "Green").
		With("name", "Ada").
		With("orphan", "x")

	mapping := validation.NewValidator().ValidateForm(context.Background(), form, data)
	if mapping.Empty() {
		t.Fatalf("expected errors")
	}
	if mapping.Field("colour") == nil || mapping.Field("name") != nil {
		t.Fatalf("unexpected field errors %#v", mapping.Fields)
	}
	if len(mapping.Form) != 1 || !strings.Contains(mapping.Form[0], "orphan") {
		t.Fatalf("expected orphan value reported at form level, got %#v", mapping.Form)
	}
}

func TestLint(t *testing.T) {
	ctx := context.Background()
	if result := validation.Lint(ctx, "colour", colourField()); !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected clean lint, got %#v", result)
	}

	messy := schema.Field{Type: schema.TypeString, Enum: []any{"Option 1", "Option 1"}, Default: "Gone"}
	result := validation.Lint(ctx, "select_ab12", messy)
	if !result.Valid {
		t.Fatalf("soft inconsistencies must not invalidate: %#v", result)
	}
	var paths []string
	for _, issue := range result.Issues {
		if issue.Severity != validation.SeverityWarning {
			t.Fatalf("expected warnings only, got %#v", issue)
		}
		paths = append(paths, issue.Path)
	}
	want := []string{"#/properties/select_ab12/enum/1", "#/properties/select_ab12/default"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("issue paths mismatch (-want +got):\n%s", diff)
	}

	empty := validation.Lint(ctx, "x", schema.Field{Type: schema.TypeString, Enum: []any{}})
	found := false
	for _, issue := range empty.Issues {
		if issue.Message == "option list is empty" && issue.Severity == validation.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected empty option warning, got %#v", empty.Issues)
	}

	bad := validation.Lint(ctx, "x", schema.Field{Type: schema.Type("date")})
	if bad.Valid {
		t.Fatalf("unsupported type must be an error")
	}
}

func TestMapErrorPayload(t *testing.T) {
	form := schema.DefaultForm().
		WithProperty("select_ab12", colourField()).
		WithProperty("text_9f00", schema.Field{Type: schema.TypeString})

	payload := map[string][]string{
		"#/properties/select_ab12/enum": {" Pick a colour ", "Pick a colour"},
		"formData.text_9f00":            {"Too short"},
		"$.data[0].text_9f00":           {"Too long"},
		"non_field_errors":              {"Form level error"},
		"unknown":                       {"Falls back"},
		"":                              {""},
	}
	mapped := validation.MapErrorPayload(form, payload)

	wantFields := map[string][]string{
		"select_ab12": {"Pick a colour"},
	}
	if diff := cmp.Diff(wantFields["select_ab12"], mapped.Fields["select_ab12"]); diff != "" {
		t.Fatalf("select errors mismatch (-want +got):\n%s", diff)
	}
	if got := len(mapped.Fields["text_9f00"]); got != 2 {
		t.Fatalf("expected two text errors, got %#v", mapped.Fields["text_9f00"])
	}
	if got := len(mapped.Form); got != 2 {
		t.Fatalf("expected two form errors, got %#v", mapped.Form)
	}
}
