// Package formflow is a schema-driven form runtime for server-rendered Go
// applications. A declarative field schema feeds a form.Controller that owns
// values, errors, visibility, and the submission cycle; renderers turn the
// controller into HTML or terminal prompt sessions.
package formflow

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/tui"
	"github.com/goliatone/go-formflow/pkg/renderers/vanilla"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// Re-exports so simple callers only import the root package.
type (
	Schema    = schema.Schema
	Field     = schema.Field
	FieldType = schema.FieldType

	Values     = form.Values
	Errors     = form.Errors
	Controller = form.Controller
	Handler    = form.Handler
	Validator  = form.Validator

	RenderOptions = render.Options
)

const (
	FieldTypeText        = schema.FieldTypeText
	FieldTypeEmail       = schema.FieldTypeEmail
	FieldTypePassword    = schema.FieldTypePassword
	FieldTypeTextarea    = schema.FieldTypeTextarea
	FieldTypeNumber      = schema.FieldTypeNumber
	FieldTypeCheckbox    = schema.FieldTypeCheckbox
	FieldTypeSelect      = schema.FieldTypeSelect
	FieldTypeMultiSelect = schema.FieldTypeMultiSelect
)

// New seeds a controller for the schema. See form.New for option details.
func New(s Schema, options ...form.Option) *Controller {
	return form.New(s, options...)
}

// DefaultRegistry returns a renderer registry with the built-in renderers
// registered.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(html)
	registry.MustRegister(tui.New())

	return registry, nil
}

// RenderHTML renders the controller with the vanilla renderer. It is the
// simplest entry point for callers that just want markup.
func RenderHTML(ctx context.Context, controller *Controller, options RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, controller, options)
}
