package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// extend the built-in form shell.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
