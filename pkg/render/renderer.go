package render

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/form"
)

// Renderer turns a form controller's schema and state into a byte
// representation (HTML, prompt transcripts, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, controller *form.Controller, options Options) ([]byte, error)
}
