package schema_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formfield/pkg/schema"
)

func TestUIDocument_CopyOnWrite(t *testing.T) {
	doc := schema.EmptyUIDocument()
	next := doc.With("select_1", schema.UI{"ui:placeholder": "Pick"})

	if doc.Len() != 0 {
		t.Fatalf("held document observed the insertion")
	}
	ui, ok := next.Field("select_1")
	if !ok || ui["ui:placeholder"] != "Pick" {
		t.Fatalf("unexpected ui slice %#v", ui)
	}
	ui["ui:placeholder"] = "mutated"
	again, _ := next.Field("select_1")
	if again["ui:placeholder"] != "Pick" {
		t.Fatalf("Field must return a copy")
	}

	renamed := next.Rename("select_1", "select_2")
	if renamed.Has("select_1") || !renamed.Has("select_2") || !next.Has("select_1") {
		t.Fatalf("rename did not copy on write")
	}
}

func TestData_CopyOnWrite(t *testing.T) {
	data := schema.EmptyData().With("a", "")
	next := data.With("a", "Option 1")

	if v, _ := data.Value("a"); v != "" {
		t.Fatalf("held data observed the change: %v", v)
	}
	if v, _ := next.Value("a"); v != "Option 1" {
		t.Fatalf("unexpected value %v", v)
	}
	if next.Without("a").Len() != 0 || next.Len() != 1 {
		t.Fatalf("without did not copy on write")
	}
}

func TestEmptyDocumentsEncodeAsObjects(t *testing.T) {
	for name, value := range map[string]any{
		"ui":   schema.EmptyUIDocument(),
		"data": schema.EmptyData(),
	} {
		payload, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		if string(payload) != "{}" {
			t.Fatalf("%s: expected {}, got %s", name, payload)
		}
	}
}

func TestBundle_EmptyDocumentsEncodeAsObjects(t *testing.T) {
	doc, err := schema.NewDocument(schema.SourceInline("bundle.json"), []byte(`{"schema": {"type": "object"}}`))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	decoded, err := schema.DecodeBundle(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	for name, bundle := range map[string]schema.Bundle{
		"decoded": decoded,
		"zero":    {Schema: schema.DefaultForm()},
	} {
		var buf bytes.Buffer
		if err := bundle.Encode(&buf, schema.FormatJSON); err != nil {
			t.Fatalf("%s: encode: %v", name, err)
		}
		out := buf.String()
		if !strings.Contains(out, `"uiSchema": {}`) || !strings.Contains(out, `"formData": {}`) {
			t.Fatalf("%s: expected empty objects:\n%s", name, out)
		}
	}
}

func TestBundle_DecodeAndEncode(t *testing.T) {
	raw := []byte(`
schema:
  title: Survey
  type: object
  properties:
    select_ab12:
      title: Colour
      type: string
      enum: [Red, Blue]
      default: Red
uiSchema:
  select_ab12:
    ui:placeholder: Pick a colour
formData:
  select_ab12: Blue
`)
	doc, err := schema.NewDocument(schema.SourceFromFile("fixtures/form.yaml"), raw)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	if doc.Format() != schema.FormatYAML {
		t.Fatalf("expected yaml format, got %s", doc.Format())
	}

	bundle, err := schema.DecodeBundle(doc)
	if err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if bundle.Schema.Title() != "Survey" || !bundle.Schema.Has("select_ab12") {
		t.Fatalf("unexpected schema %v", bundle.Schema.Keys())
	}
	if v, _ := bundle.FormData.Value("select_ab12"); v != "Blue" {
		t.Fatalf("unexpected form data %v", v)
	}

	var buf bytes.Buffer
	if err := bundle.Encode(&buf, schema.FormatJSON); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"ui:placeholder": "Pick a colour"`) {
		t.Fatalf("ui schema missing from output:\n%s", buf.String())
	}

	jsonDoc := schema.MustNewDocument(schema.SourceInline("roundtrip.json"), buf.Bytes())
	again, err := schema.DecodeBundle(jsonDoc)
	if err != nil {
		t.Fatalf("decode json bundle: %v", err)
	}
	if !again.Schema.Equal(bundle.Schema) || !again.UISchema.Equal(bundle.UISchema) || !again.FormData.Equal(bundle.FormData) {
		t.Fatalf("bundle round trip mismatch")
	}
}

func TestNewDocument_RejectsEmpty(t *testing.T) {
	if _, err := schema.NewDocument(schema.SourceInline("x"), []byte("  ")); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := schema.NewDocument(nil, []byte("{}")); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestParseFormat(t *testing.T) {
	if f, ok := schema.ParseFormat("YML"); !ok || f != schema.FormatYAML {
		t.Fatalf("expected yaml, got %q", f)
	}
	if _, ok := schema.ParseFormat("toml"); ok {
		t.Fatalf("toml should not parse")
	}
}
