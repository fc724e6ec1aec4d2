package formflow

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("registered renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHTML(t *testing.T) {
	controller := New(Schema{
		{Type: FieldTypeText, Name: "name", Label: "Name"},
	})

	markup, err := RenderHTML(context.Background(), controller, RenderOptions{Action: "/signup"})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(string(markup), `data-field="name"`) {
		t.Fatalf("missing name field in:\n%s", markup)
	}
}
