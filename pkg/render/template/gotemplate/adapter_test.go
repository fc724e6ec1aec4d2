package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}!"),
		},
		"partials/footer.tmpl": &fstest.MapFile{
			Data: []byte("-- {{ site }} --"),
		},
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected an error without a template source")
	}
}

func TestRenderTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("RenderTemplate() = %q", got)
	}

	// Explicit extensions pass through untouched.
	got, err = engine.RenderTemplate("partials/footer.tmpl", map[string]any{"site": "formflow"})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if got != "-- formflow --" {
		t.Fatalf("RenderTemplate() = %q", got)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected an error for a missing template")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := engine.RenderString("{{ a }} + {{ b }}", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if got != "1 + 2" {
		t.Fatalf("RenderString() = %q", got)
	}
}

func TestRenderDispatch(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	inline, err := engine.Render("inline {{ name }}", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("Render() inline error = %v", err)
	}
	if inline != "inline Ada" {
		t.Fatalf("Render() inline = %q", inline)
	}

	byPath, err := engine.Render("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("Render() by path error = %v", err)
	}
	if byPath != "Hello Ada!" {
		t.Fatalf("Render() by path = %q", byPath)
	}
}

func TestRenderStringStructData(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data := struct {
		Name string `json:"name"`
	}{Name: "Ada"}

	got, err := engine.RenderString("{{ name }}", data)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if got != "Ada" {
		t.Fatalf("RenderString() = %q", got)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"site": "formflow"}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := engine.RenderString("welcome to {{ site }}", nil)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if got != "welcome to formflow" {
		t.Fatalf("RenderString() = %q", got)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Filter names are global to pongo2, so pick one unique to this test.
	err = engine.RegisterFilter("formflow_test_shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("RegisterFilter() error = %v", err)
	}

	got, err := engine.RenderString("{{ name|formflow_test_shout }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if got != "ADA" {
		t.Fatalf("RenderString() = %q", got)
	}

	if err := engine.RegisterFilter("formflow_test_shout", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Fatal("expected an error for a duplicate filter name")
	}
}
