// Package vanilla renders a form controller to plain HTML: one control per
// visible field plus label, help, and inline error chrome, wrapped in a form
// shell produced from an embedded template.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/render"
	rendertemplate "github.com/goliatone/go-formflow/pkg/render/template"
	gotemplate "github.com/goliatone/go-formflow/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the form markup. Fields whose visibility predicate evaluates
// to false against the current values are omitted from the output entirely.
// Every control is disabled while the controller is loading or a submission
// is in flight; the submit button additionally swaps to the progress label.
func (r *Renderer) Render(_ context.Context, controller *form.Controller, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if controller == nil {
		return nil, fmt.Errorf("vanilla renderer: controller is required")
	}

	values := controller.Values()
	errs := controller.Errors()
	loading := controller.Loading()
	submitting := controller.Submitting()
	full := map[string]any(values)

	fields := fieldRenderer{classes: options.ChromeClasses}
	var markup []any
	for _, field := range controller.Schema() {
		if !field.Visible(full) {
			continue
		}
		disabled := field.Disabled || loading || submitting
		markup = append(markup, fields.render(field, values[field.Name], errs[field.Name], disabled))
	}

	method := strings.TrimSpace(options.Method)
	if method == "" {
		method = "POST"
	}
	submitText := options.SubmitText
	if submitText == "" {
		submitText = controller.SubmitText()
	}

	formCtx := map[string]any{
		"class":           chromeClass(options.ChromeClasses, SlotForm),
		"header_class":    chromeClass(options.ChromeClasses, SlotHeader),
		"actions_class":   chromeClass(options.ChromeClasses, SlotActions),
		"submit_class":    chromeClass(options.ChromeClasses, SlotSubmit),
		"action":          options.Action,
		"method":          method,
		"title":           options.Title,
		"description":     options.Description,
		"submit_text":     submitText,
		"submit_disabled": loading || submitting,
	}
	if options.Theme != nil {
		formCtx["style"] = styleFromCSSVars(options.Theme.CSSVars)
		if options.Theme.AssetURL != nil {
			formCtx["stylesheet"] = options.Theme.AssetURL("vanilla.stylesheet")
		}
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form":   formCtx,
		"fields": markup,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
