package tui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/plugins/selectfield"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	"github.com/goliatone/go-formfield/pkg/widget"
)

func TestPrintTree(t *testing.T) {
	tree := widget.Group("root",
		widget.Heading("title", "Colour"),
		widget.Select("value", "Pick", "Blue", []string{"Red", "Blue"}),
		widget.Group("extra",
			widget.Checkbox("agree", "Agree", true),
			widget.TextInput("note", "Note", "", widget.WithPlaceholder("Type here")),
		),
		widget.Error("error", "required"),
	)
	var buf bytes.Buffer
	if err := tui.PrintTree(&buf, tree); err != nil {
		t.Fatalf("print: %v", err)
	}
	want := strings.Join([]string{
		"== Colour ==",
		"Pick: Blue",
		"  ( ) Red",
		"  (*) Blue",
		"  [x] Agree",
		"  Note: <Type here>",
		"! required",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestTextRenderer_RenderPage(t *testing.T) {
	h := newHost(t)
	if _, err := h.AddField(selectfield.Type); err != nil {
		t.Fatalf("add field: %v", err)
	}
	page, err := tui.TextRenderer{}.RenderPage(context.Background(), h)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	out := string(page)
	for _, want := range []string{"# Form Title", "## select_a1b2 (select)", "( ) Option 1", "Field 1: <Please select an option>", "uiSchema:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
