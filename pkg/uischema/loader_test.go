package uischema_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

func TestLoadFS_JSONAndYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"presets/select.json": {Data: []byte(`{"presets":{"select":{"ui:placeholder":"Choose one"}}}`)},
		"presets/text.yaml":   {Data: []byte("presets:\n  Text:\n    ui:placeholder: Type here\n    ui:help: Free text\n")},
		"presets/readme.md":   {Data: []byte("ignored")},
	}

	store, err := uischema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"select", "text"}, store.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	preset, ok := store.Preset("text")
	if !ok {
		t.Fatalf("text preset missing")
	}
	if uischema.Help(preset.Hints) != "Free text" {
		t.Fatalf("unexpected help hint: %#v", preset.Hints)
	}

	applied := store.Apply("select", schema.UI{"ui:placeholder": "Please select an option", "ui:widget": "select"})
	if applied["ui:placeholder"] != "Choose one" || applied["ui:widget"] != "select" {
		t.Fatalf("unexpected merge result: %#v", applied)
	}
}

func TestLoadFS_DuplicatePreset(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"presets":{"select":{}}}`)},
		"b.yaml": {Data: []byte("presets:\n  select: {}\n")},
	}
	if _, err := uischema.LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate preset error")
	}
}

func TestLoadFS_NilAndEmpty(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("expected empty store, got %v / %v", store, err)
	}
	if _, err := uischema.LoadFS(fstest.MapFS{"x.json": {Data: []byte("  ")}}); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestHintAccessors(t *testing.T) {
	ui := schema.UI{
		"ui:placeholder": "  ",
		"ui:widget":      " Select ",
		"ui:disabled":    true,
	}
	if got := uischema.Placeholder(ui, "Select an option"); got != "Select an option" {
		t.Fatalf("blank placeholder should fall back, got %q", got)
	}
	if got := uischema.Placeholder(nil, "fallback"); got != "fallback" {
		t.Fatalf("nil ui should fall back, got %q", got)
	}
	if got := uischema.Widget(ui); got != "select" {
		t.Fatalf("widget mismatch: %q", got)
	}
	if !uischema.Disabled(ui) {
		t.Fatalf("expected disabled hint")
	}
}
