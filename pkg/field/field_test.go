package field_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

func echoPlugin(id string) field.Descriptor {
	return field.Descriptor{
		ID:   id,
		Info: field.Meta{Label: "Echo " + id, Icon: field.Icon{Name: id}},
		NewSchema: func() schema.Field {
			return schema.Field{Title: "Echo", Type: schema.TypeString}
		},
		AuthorFunc: func(p field.AuthorProps) widget.Node {
			return widget.TextInput("title", "Title", p.Schema.Title, widget.WithOnChange(func(v string) {
				p.OnSchemaChange(p.Schema.WithTitle(v))
			}))
		},
		InteractFunc: func(p field.InteractProps) widget.Node {
			value, _ := p.Value.(string)
			return widget.TextInput("value", p.Schema.Title, value, widget.WithOnChange(func(v string) {
				p.OnValueChange(v)
			}))
		},
		ReviewFunc: func(p field.ReviewProps) widget.Node {
			value, _ := p.Value.(string)
			// A misbehaving plugin that still binds a handler in review mode.
			return widget.TextInput("value", p.Schema.Title, value, widget.WithOnChange(func(string) {
				panic("review handler fired")
			}))
		},
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]field.Mode{
		"author":   field.ModeAuthor,
		"builder":  field.ModeAuthor,
		"Fill":     field.ModeInteract,
		"edit":     field.ModeInteract,
		"readOnly": field.ModeReview,
		" review ": field.ModeReview,
	}
	for input, want := range cases {
		got, err := field.ParseMode(input)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := field.ParseMode("preview"); !errors.Is(err, field.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestRender_AuthorBindsSchemaCallback(t *testing.T) {
	var got schema.Field
	node, err := field.Render(echoPlugin("echo"), field.ModeAuthor, field.Props{
		Schema:         schema.Field{Title: "Old", Type: schema.TypeString},
		OnSchemaChange: func(f schema.Field) { got = f },
		OnValueChange:  func(any) { t.Fatalf("value callback must not reach author mode") },
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := widget.Change(node, "title", "New"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if got.Title != "New" {
		t.Fatalf("expected replacement schema with new title, got %#v", got)
	}
}

func TestRender_MissingCallbacksAreNoops(t *testing.T) {
	node, err := field.Render(echoPlugin("echo"), field.ModeInteract, field.Props{
		Schema: schema.Field{Title: "Name", Type: schema.TypeString},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := widget.Change(node, "value", "x"); err != nil {
		t.Fatalf("change with nil callback should not fail: %v", err)
	}
}

func TestRender_ReviewIsInert(t *testing.T) {
	node, err := field.Render(echoPlugin("echo"), field.ModeReview, field.Props{
		Schema:           schema.Field{Title: "Name"},
		Value:            "x",
		OnValueChange:    func(any) { t.Fatalf("review invoked a callback") },
		OnSchemaChange:   func(schema.Field) { t.Fatalf("review invoked a callback") },
		OnUISchemaChange: func(schema.UI) { t.Fatalf("review invoked a callback") },
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if widget.HasHandlers(node) {
		t.Fatalf("review output must carry no handlers")
	}
}

func TestRender_UnknownMode(t *testing.T) {
	if _, err := field.Render(echoPlugin("echo"), field.Mode("print"), field.Props{}); !errors.Is(err, field.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestRender_PropsAreCopies(t *testing.T) {
	original := schema.Field{Title: "T", Enum: []any{"a"}}
	plugin := echoPlugin("echo")
	plugin.AuthorFunc = func(p field.AuthorProps) widget.Node {
		p.Schema.Enum[0] = "mutated"
		p.UISchema["ui:placeholder"] = "mutated"
		return widget.Group("root")
	}
	ui := schema.UI{"ui:placeholder": "keep"}
	if _, err := field.Render(plugin, field.ModeAuthor, field.Props{Schema: original, UISchema: ui}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if original.Enum[0] != "a" || ui["ui:placeholder"] != "keep" {
		t.Fatalf("plugin mutated caller state: %#v %#v", original, ui)
	}
}

func TestRegistry(t *testing.T) {
	reg := field.NewRegistry()
	reg.MustRegister(echoPlugin("select"))
	reg.MustRegister(echoPlugin("text"))

	if err := reg.Register(echoPlugin(" Select ")); !errors.Is(err, field.ErrDuplicatePlugin) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(echoPlugin("")); err == nil {
		t.Fatalf("expected error for empty type id")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil plugin")
	}
	if _, err := reg.Get("missing"); !errors.Is(err, field.ErrPluginNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !reg.Has("TEXT") {
		t.Fatalf("lookups should be case insensitive")
	}

	want := []field.MenuItem{
		{Type: "select", Label: "Echo select", Icon: field.Icon{Name: "select"}},
		{Type: "text", Label: "Echo text", Icon: field.Icon{Name: "text"}},
	}
	if diff := cmp.Diff(want, reg.Menu()); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
}

func TestInitialUISchemaAndEmptyValue(t *testing.T) {
	plugin := echoPlugin("echo")
	if ui := field.InitialUISchema(plugin); ui == nil || len(ui) != 0 {
		t.Fatalf("expected empty ui, got %#v", ui)
	}
	if v := field.EmptyValue(plugin); v != "" {
		t.Fatalf("expected empty string, got %#v", v)
	}
	plugin.Empty = false
	plugin.NewUISchema = func() schema.UI { return schema.UI{"ui:help": "h"} }
	if v := field.EmptyValue(plugin); v != false {
		t.Fatalf("expected false, got %#v", v)
	}
	if ui := field.InitialUISchema(plugin); ui["ui:help"] != "h" {
		t.Fatalf("unexpected ui %#v", ui)
	}
}

func TestResolver(t *testing.T) {
	res := field.NewResolver()
	res.Register("text", 10, func(schema.Field, schema.UI) bool { return true })
	res.Register("select", 70, func(f schema.Field, _ schema.UI) bool { return f.HasEnum() })
	res.Register("radio", 70, func(f schema.Field, _ schema.UI) bool { return f.HasEnum() })

	cases := []struct {
		name  string
		field schema.Field
		ui    schema.UI
		want  string
	}{
		{"explicit hint wins", schema.Field{Enum: []any{"a"}}, schema.UI{"ui:widget": "Checkbox"}, "checkbox"},
		{"priority then order", schema.Field{Enum: []any{"a"}}, nil, "select"},
		{"fallback", schema.Field{Type: schema.TypeString}, nil, "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := res.Resolve(tc.field, tc.ui)
			if !ok || got != tc.want {
				t.Fatalf("Resolve = %q, %v; want %q", got, ok, tc.want)
			}
		})
	}

	if _, ok := field.NewResolver().Resolve(schema.Field{}, nil); ok {
		t.Fatalf("empty resolver should not resolve without a hint")
	}
}
