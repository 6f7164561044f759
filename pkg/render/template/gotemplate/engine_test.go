package gotemplate_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|shout }}")},
		"node.tmpl":       {Data: []byte(`<input id="{{ node.id|domid:"ff" }}" value="{{ node.value }}">`)},
		"dump.tmpl":       {Data: []byte("{{ doc|tojson|safe }}")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada!" || written != result {
		t.Fatalf("unexpected output %q / %q", result, written)
	}
}

func TestEngine_StructDataUsesJSONTags(t *testing.T) {
	engine := newEngine(t)
	type node struct {
		ID       string       `json:"id"`
		Value    string       `json:"value"`
		OnChange func(string) `json:"-"`
	}
	out, err := engine.RenderTemplate("node", map[string]any{
		"node": node{ID: "option.0.value", Value: `"quoted"`, OnChange: func(string) {}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<input id="ff-option-0-value" value="&quot;quoted&quot;">`
	if out != want {
		t.Fatalf("unexpected output\nwant %s\ngot  %s", want, out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))
	out, err := engine.RenderTemplate("use-global.tmpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "env=staging" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	out, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "ADA!" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_RenderStringAndJSON(t *testing.T) {
	engine := newEngine(t)
	out, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "x"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "1-x" {
		t.Fatalf("unexpected output %q", out)
	}

	dump, err := engine.RenderTemplate("dump", map[string]any{"doc": map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("render dump: %v", err)
	}
	if dump != "{\n  \"k\": \"v\"\n}" {
		t.Fatalf("unexpected dump %q", dump)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func TestNew_WithFilters(t *testing.T) {
	engine := newEngine(t, gotemplate.WithFilters(map[string]pongo2.FilterFunction{
		"ff_reverse": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			runes := []rune(in.String())
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return pongo2.AsValue(string(runes)), nil
		},
	}))
	out, err := engine.RenderString("{{ word|ff_reverse }}", map[string]any{"word": "field"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "dleif" {
		t.Fatalf("unexpected output %q", out)
	}
}
