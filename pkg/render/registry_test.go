package render

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/form"
)

type fakeRenderer struct {
	name string
}

func (f *fakeRenderer) Name() string        { return f.name }
func (f *fakeRenderer) ContentType() string { return "text/plain" }
func (f *fakeRenderer) Render(context.Context, *form.Controller, Options) ([]byte, error) {
	return []byte(f.name), nil
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&fakeRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&fakeRenderer{name: "tui"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	renderer, err := registry.Get("vanilla")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("Get() returned %q", renderer.Name())
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&fakeRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := registry.Register(&fakeRenderer{name: "vanilla"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("Register() error = %v, want duplicate failure", err)
	}
}

func TestRegistryRejectsInvalidRenderers(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatal("expected an error for a nil renderer")
	}
	if err := registry.Register(&fakeRenderer{}); err == nil {
		t.Fatal("expected an error for an unnamed renderer")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected an error for an unknown renderer")
	}
}
