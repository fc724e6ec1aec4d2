package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formflow/pkg/visibility"
	"github.com/goliatone/go-formflow/pkg/visibility/expr"
)

// Document is a declarative form definition loaded from YAML or JSON.
type Document struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      Schema `json:"fields" yaml:"fields"`
}

// Parse decodes a schema document. JSON payloads are detected by their leading
// byte; everything else is treated as YAML. Fields carrying a visibleWhen rule
// get a compiled predicate attached.
func Parse(data []byte) (Document, error) {
	var doc Document
	if len(data) == 0 {
		return doc, errors.New("schema: document is empty")
	}

	if looksLikeJSON(data) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("schema: decode json document: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("schema: decode yaml document: %w", err)
		}
	}

	if len(doc.Fields) == 0 {
		return Document{}, errors.New("schema: document declares no fields")
	}

	evaluator := expr.New()
	for i := range doc.Fields {
		field := &doc.Fields[i]
		if strings.TrimSpace(field.Name) == "" {
			return Document{}, fmt.Errorf("schema: field %d has no name", i)
		}
		if !KnownFieldType(field.Type) {
			return Document{}, fmt.Errorf("schema: unknown field type %q for field %q", field.Type, field.Name)
		}
		if rule := strings.TrimSpace(field.VisibleRule); rule != "" {
			field.VisibleWhen = Predicate(visibility.FromRule(field.Name, rule, evaluator))
		}
	}
	return doc, nil
}

// ParseFile loads and parses a schema document from the supplied filesystem.
func ParseFile(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("schema: read document %q: %w", path, err)
	}
	return Parse(data)
}

func looksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}
