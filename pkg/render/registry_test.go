package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) RenderPage(context.Context, *host.Host) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "vanilla"})
	reg.MustRegister(stubRenderer{name: "Text"})

	if err := reg.Register(stubRenderer{name: "vanilla"}); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"text", "vanilla"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has(" TEXT ") {
		t.Fatalf("expected case-insensitive lookup")
	}

	fallback, err := reg.Get("")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if fallback.Name() != "vanilla" {
		t.Fatalf("expected first registered renderer as default, got %s", fallback.Name())
	}
	if _, err := reg.Get("preact"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}

	if err := reg.SetDefault("preact"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
	if err := reg.SetDefault("TEXT"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if reg.Default() != "text" {
		t.Fatalf("expected text as default, got %q", reg.Default())
	}
	preferred, err := reg.Get("")
	if err != nil || preferred.Name() != "Text" {
		t.Fatalf("expected text renderer, got %v %v", preferred, err)
	}
}
