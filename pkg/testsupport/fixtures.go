// Package testsupport holds helpers shared by package tests: bundle
// fixtures, JSON comparison and template output capture.
package testsupport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// MustBundle decodes an inline bundle payload. The format is taken from the
// name extension.
func MustBundle(t *testing.T, name, payload string) schema.Bundle {
	t.Helper()

	bundle, err := BundleFromString(name, payload)
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	return bundle
}

// BundleFromString returns a Bundle without requiring testing.T.
func BundleFromString(name, payload string) (schema.Bundle, error) {
	doc, err := schema.NewDocument(schema.SourceInline(name), []byte(payload))
	if err != nil {
		return schema.Bundle{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	bundle, err := schema.DecodeBundle(doc)
	if err != nil {
		return schema.Bundle{}, fmt.Errorf("testsupport: decode bundle: %w", err)
	}
	return bundle, nil
}

// LoadBundle reads a bundle fixture from disk.
func LoadBundle(path string) (schema.Bundle, error) {
	if path == "" {
		return schema.Bundle{}, errors.New("testsupport: bundle path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Bundle{}, fmt.Errorf("testsupport: read bundle: %w", err)
	}
	doc, err := schema.NewDocument(schema.SourceFromFile(path), data)
	if err != nil {
		return schema.Bundle{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return schema.DecodeBundle(doc)
}

// CanonicalJSON decodes payload into generic values so documents can be
// compared without caring about key order or whitespace.
func CanonicalJSON(t *testing.T, payload []byte) any {
	t.Helper()

	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("decode json: %v\n%s", err, payload)
	}
	return out
}

// JSONDiff marshals got and diffs it against the want literal.
func JSONDiff(t *testing.T, want string, got any) string {
	t.Helper()

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return cmp.Diff(CanonicalJSON(t, []byte(want)), CanonicalJSON(t, payload))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
