package formfield_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/testsupport"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

func TestDefaultRegistry(t *testing.T) {
	if diff := cmp.Diff([]string{"checkbox", "select", "text"}, formfield.DefaultRegistry().List()); diff != "" {
		t.Fatalf("plugins mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHost_BindsImportedFields(t *testing.T) {
	h, err := formfield.NewHost()
	if err != nil {
		t.Fatalf("new host: %v", err)
	}
	bundle := testsupport.MustBundle(t, "bundle.yaml", `
schema:
  title: Imported
  type: object
  properties:
    colour:
      title: Colour
      type: string
      enum: [Red, Blue]
    agree:
      title: Agree
      type: boolean
uiSchema: {}
formData:
  colour: Red
`)
	if err := h.LoadBundle(bundle); err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"colour": "select", "agree": "checkbox"}, h.Snapshot().Bindings()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestAddField_AppliesPreset(t *testing.T) {
	presets, err := uischema.LoadFS(fstest.MapFS{
		"presets.yaml": {Data: []byte("presets:\n  select:\n    ui:help: Pick one\n")},
	})
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	h, err := formfield.NewHost(host.WithIDGenerator(func(pluginType string) string { return pluginType + "_0001" }))
	if err != nil {
		t.Fatalf("new host: %v", err)
	}

	id, err := formfield.AddField(h, presets, "select")
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	ui, _ := h.Snapshot().UISchema.Field(id)
	want := schema.UI{uischema.KeyPlaceholder: "Please select an option", uischema.KeyHelp: "Pick one"}
	if diff := cmp.Diff(want, ui); diff != "" {
		t.Fatalf("ui mismatch (-want +got):\n%s", diff)
	}

	textID, err := formfield.AddField(h, presets, "text")
	if err != nil {
		t.Fatalf("add text field: %v", err)
	}
	textUI, _ := h.Snapshot().UISchema.Field(textID)
	if _, ok := textUI[uischema.KeyHelp]; ok {
		t.Fatalf("text field should not receive the select preset")
	}
}

func TestNewRenderers(t *testing.T) {
	h, err := formfield.NewHost()
	if err != nil {
		t.Fatalf("new host: %v", err)
	}
	if _, err := h.AddField("text"); err != nil {
		t.Fatalf("add field: %v", err)
	}
	renderers, err := formfield.NewRenderers(schema.FormatJSON)
	if err != nil {
		t.Fatalf("new renderers: %v", err)
	}
	if diff := cmp.Diff([]string{"text", "vanilla"}, renderers.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
	html, err := renderers.Get("")
	if err != nil {
		t.Fatalf("default renderer: %v", err)
	}
	page, err := html.RenderPage(context.Background(), h)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(page), "<!DOCTYPE html>") {
		t.Fatalf("expected html page from default renderer")
	}
}

func TestLoadBundleFixture(t *testing.T) {
	bundle, err := testsupport.LoadBundle("testdata/contact.json")
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	h, err := formfield.NewHost()
	if err != nil {
		t.Fatalf("new host: %v", err)
	}
	if err := h.LoadBundle(bundle); err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	if err := h.ValueChanged("agree", true); err != nil {
		t.Fatalf("value changed: %v", err)
	}

	want := `{
	  "schema": {
	    "title": "Contact",
	    "type": "object",
	    "properties": {
	      "colour": {"title": "Favourite colour", "type": "string", "enum": ["Red", "Blue"]},
	      "name": {"title": "Name", "type": "string"},
	      "agree": {"title": "I agree", "type": "boolean"}
	    }
	  },
	  "uiSchema": {"colour": {"ui:placeholder": "Pick a colour"}},
	  "formData": {"colour": "Blue", "agree": true}
	}`
	if diff := testsupport.JSONDiff(t, want, h.Snapshot().Bundle()); diff != "" {
		t.Fatalf("bundle mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"colour": "select", "name": "text", "agree": "checkbox"}, h.Snapshot().Bindings()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}
