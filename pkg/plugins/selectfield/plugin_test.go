package selectfield_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/plugins/selectfield"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

type message string

func (m message) Message() string { return string(m) }

// authorTree renders author mode and captures the replacement schema.
func authorTree(t *testing.T, f schema.Field, ui schema.UI, gotSchema *schema.Field, gotUI *schema.UI) widget.Node {
	t.Helper()
	node, err := field.Render(selectfield.New(), field.ModeAuthor, field.Props{
		Schema:           f,
		UISchema:         ui,
		OnSchemaChange:   func(s schema.Field) { *gotSchema = s },
		OnUISchemaChange: func(u schema.UI) { *gotUI = u },
	})
	if err != nil {
		t.Fatalf("render author: %v", err)
	}
	return node
}

func TestInitialDocuments(t *testing.T) {
	plugin := selectfield.New()
	initial := plugin.InitialSchema()
	if initial.Type != schema.TypeString || len(initial.Enum) != 1 || initial.Default != initial.Enum[0] {
		t.Fatalf("unexpected initial schema %#v", initial)
	}
	if initial.Default != "Option 1" {
		t.Fatalf("unexpected default %v", initial.Default)
	}
	ui := field.InitialUISchema(plugin)
	if ui["ui:placeholder"] != "Please select an option" {
		t.Fatalf("unexpected initial ui %#v", ui)
	}
	if plugin.Meta().Label != "Select" || plugin.Meta().Icon.IsZero() {
		t.Fatalf("unexpected meta %#v", plugin.Meta())
	}
}

func TestAuthor_TitleAndPlaceholder(t *testing.T) {
	var gotSchema schema.Field
	var gotUI schema.UI
	base := selectfield.New().InitialSchema()
	ui := schema.UI{"ui:placeholder": "Pick", "ui:help": "keep me"}
	node := authorTree(t, base, ui, &gotSchema, &gotUI)

	if err := widget.Change(node, selectfield.NodeTitle, "Colour"); err != nil {
		t.Fatalf("change title: %v", err)
	}
	want := base
	want.Title = "Colour"
	if !gotSchema.Equal(want) {
		t.Fatalf("title edit must replace only the title, got %#v", gotSchema)
	}

	if err := widget.Change(node, selectfield.NodePlaceholder, "Choose a colour"); err != nil {
		t.Fatalf("change placeholder: %v", err)
	}
	if diff := cmp.Diff(schema.UI{"ui:placeholder": "Choose a colour", "ui:help": "keep me"}, gotUI); diff != "" {
		t.Fatalf("ui replacement mismatch (-want +got):\n%s", diff)
	}

	preview, _ := widget.Find(node, selectfield.NodeValue)
	if !preview.Disabled {
		t.Fatalf("author preview must be disabled")
	}
}

func TestAuthor_MissingEnumAndUI(t *testing.T) {
	var gotSchema schema.Field
	var gotUI schema.UI
	node := authorTree(t, schema.Field{Title: "Bare", Type: schema.TypeString}, nil, &gotSchema, &gotUI)

	preview, ok := widget.Find(node, selectfield.NodeValue)
	if !ok || len(preview.Options) != 0 {
		t.Fatalf("expected empty choice list, got %#v", preview.Options)
	}
	if preview.Placeholder != selectfield.DefaultPlaceholder {
		t.Fatalf("expected built-in placeholder, got %q", preview.Placeholder)
	}

	if err := widget.Click(node, selectfield.NodeAddOption); err != nil {
		t.Fatalf("add option: %v", err)
	}
	if diff := cmp.Diff([]any{"Option 1"}, gotSchema.Enum); diff != "" {
		t.Fatalf("add on missing enum (-want +got):\n%s", diff)
	}
}

func TestAuthor_DeleteLastOption(t *testing.T) {
	var gotSchema schema.Field
	var gotUI schema.UI
	node := authorTree(t, selectfield.New().InitialSchema(), nil, &gotSchema, &gotUI)

	if err := widget.Click(node, selectfield.DeleteNode(0)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotSchema.Enum == nil || len(gotSchema.Enum) != 0 {
		t.Fatalf("expected empty option sequence, got %#v", gotSchema.Enum)
	}
	if gotSchema.Default != "Option 1" {
		t.Fatalf("default is left untouched, got %v", gotSchema.Default)
	}
}

func TestAuthor_AddLabelCollisionAllowed(t *testing.T) {
	var gotSchema schema.Field
	var gotUI schema.UI
	base := schema.Field{Type: schema.TypeString, Enum: []any{"Option 2"}}
	node := authorTree(t, base, nil, &gotSchema, &gotUI)

	if err := widget.Click(node, selectfield.NodeAddOption); err != nil {
		t.Fatalf("add: %v", err)
	}
	if diff := cmp.Diff([]any{"Option 2", "Option 2"}, gotSchema.Enum); diff != "" {
		t.Fatalf("duplicates must be permitted (-want +got):\n%s", diff)
	}
}

func drawField(rt *rapid.T) schema.Field {
	labels := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9 ]{1,10}`), 1, 8).Draw(rt, "options")
	enum := make([]any, len(labels))
	for idx, label := range labels {
		enum[idx] = label
	}
	return schema.Field{Title: "Field", Type: schema.TypeString, Enum: enum, Default: enum[0]}
}

func TestProperty_AddOption(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawField(rt)
		var got schema.Field
		var ui schema.UI
		node := authorTree(t, base, nil, &got, &ui)

		if err := widget.Click(node, selectfield.NodeAddOption); err != nil {
			rt.Fatalf("add: %v", err)
		}
		n := len(base.Enum)
		if len(got.Enum) != n+1 {
			rt.Fatalf("expected %d options, got %d", n+1, len(got.Enum))
		}
		if diff := cmp.Diff(base.Enum, got.Enum[:n]); diff != "" {
			rt.Fatalf("existing options changed (-want +got):\n%s", diff)
		}
		if got.Enum[n] != selectfield.NextOptionLabel(n) {
			rt.Fatalf("unexpected synthesised label %v", got.Enum[n])
		}
	})
}

func TestProperty_DeleteOption(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawField(rt)
		index := rapid.IntRange(0, len(base.Enum)-1).Draw(rt, "index")
		var got schema.Field
		var ui schema.UI
		node := authorTree(t, base, nil, &got, &ui)

		if err := widget.Click(node, selectfield.DeleteNode(index)); err != nil {
			rt.Fatalf("delete: %v", err)
		}
		want := append(append([]any{}, base.Enum[:index]...), base.Enum[index+1:]...)
		if diff := cmp.Diff(want, got.Enum); diff != "" {
			rt.Fatalf("delete mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestProperty_EditOption(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawField(rt)
		index := rapid.IntRange(0, len(base.Enum)-1).Draw(rt, "index")
		text := rapid.String().Draw(rt, "text")
		var got schema.Field
		var ui schema.UI
		node := authorTree(t, base, nil, &got, &ui)

		if err := widget.Change(node, selectfield.OptionNode(index), text); err != nil {
			rt.Fatalf("edit: %v", err)
		}
		want := append([]any{}, base.Enum...)
		want[index] = text
		if diff := cmp.Diff(want, got.Enum); diff != "" {
			rt.Fatalf("edit mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestProperty_ReviewNeverCallsBack(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawField(rt)
		value := rapid.SampledFrom(base.Enum).Draw(rt, "value")
		calls := 0
		node, err := field.Render(selectfield.New(), field.ModeReview, field.Props{
			Schema:           base,
			Value:            value,
			OnValueChange:    func(any) { calls++ },
			OnSchemaChange:   func(schema.Field) { calls++ },
			OnUISchemaChange: func(schema.UI) { calls++ },
		})
		if err != nil {
			rt.Fatalf("render: %v", err)
		}
		widget.Walk(node, func(n widget.Node) {
			_ = widget.Change(node, n.ID, schema.FormatValue(value))
			_ = widget.Click(node, n.ID)
			_ = widget.Toggle(node, n.ID, true)
		})
		if calls != 0 || widget.HasHandlers(node) {
			rt.Fatalf("review invoked %d callbacks", calls)
		}
	})
}

func TestInteract_SelectAndError(t *testing.T) {
	base := schema.Field{Title: "Size", Type: schema.TypeInteger, Enum: []any{1, 2, 3}}
	var got any
	node, err := field.Render(selectfield.New(), field.ModeInteract, field.Props{
		Schema:        base,
		Value:         "",
		Error:         message("must pick a size"),
		OnValueChange: func(v any) { got = v },
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	errNode, ok := widget.Find(node, selectfield.NodeError)
	if !ok || errNode.Value != "must pick a size" {
		t.Fatalf("error handle must be surfaced, got %#v", errNode)
	}
	if err := widget.Change(node, selectfield.NodeValue, "2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected enum entry 2, got %#v", got)
	}
	if err := widget.Change(node, selectfield.NodeValue, "9"); !errors.Is(err, widget.ErrUnknownOption) {
		t.Fatalf("expected unknown option error, got %v", err)
	}
	if err := widget.Change(node, selectfield.NodeTitle, "x"); !errors.Is(err, widget.ErrNodeInactive) {
		t.Fatalf("title must be read-only in interact mode, got %v", err)
	}
}
