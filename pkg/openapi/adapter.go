// Package openapi derives form schemas from OpenAPI documents: the request
// body of an operation becomes an ordered field list the rest of the runtime
// can render and submit.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Load reads an OpenAPI document from a file path or http(s) URL.
func Load(ctx context.Context, source string) (*openapi3.T, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, errors.New("openapi: source is required")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: true,
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		target, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("openapi: parse source url: %w", err)
		}
		doc, err := loader.LoadFromURI(target)
		if err != nil {
			return nil, fmt.Errorf("openapi: load document: %w", err)
		}
		return doc, nil
	}

	doc, err := loader.LoadFromFile(trimmed)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// FieldsFromOperation builds a form schema from the request body of the
// operation with the given id.
func FieldsFromOperation(doc *openapi3.T, operationID string) (schema.Schema, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is required")
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestSchema(operation.RequestBody)
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request schema", operationID)
	}
	return fieldsFromSchema(body.Value)
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := body.Value.Content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema
		}
	}
	for _, mt := range body.Value.Content {
		if mt.Schema != nil {
			return mt.Schema
		}
	}
	return nil
}

func fieldsFromSchema(src *openapi3.Schema) (schema.Schema, error) {
	if len(src.Properties) == 0 {
		return nil, errors.New("openapi: request schema has no properties")
	}

	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	fields := make(schema.Schema, 0, len(names))
	for _, name := range names {
		prop := src.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		field, ok := fieldFromProperty(name, prop.Value)
		if !ok {
			continue
		}
		field.Required = required[name]
		fields = append(fields, field)
	}

	if len(fields) == 0 {
		return nil, errors.New("openapi: no mappable properties in request schema")
	}
	return fields, nil
}

// fieldFromProperty maps one property to a field descriptor. Nested objects
// and arrays without an enumerated item set have no flat-form equivalent and
// are skipped.
func fieldFromProperty(name string, prop *openapi3.Schema) (schema.Field, bool) {
	field := schema.Field{
		Name:     name,
		Label:    labelFor(name, prop.Title),
		HelpText: prop.Description,
	}

	switch {
	case prop.Type.Is(openapi3.TypeBoolean):
		field.Type = schema.FieldTypeCheckbox

	case prop.Type.Is(openapi3.TypeInteger), prop.Type.Is(openapi3.TypeNumber):
		field.Type = schema.FieldTypeNumber
		field.Min = prop.Min
		field.Max = prop.Max
		if prop.Type.Is(openapi3.TypeInteger) {
			step := float64(1)
			field.Step = &step
		}

	case prop.Type.Is(openapi3.TypeString):
		if len(prop.Enum) > 0 {
			field.Type = schema.FieldTypeSelect
			field.Options = optionsFromEnum(prop.Enum)
			break
		}
		switch strings.ToLower(prop.Format) {
		case "email":
			field.Type = schema.FieldTypeEmail
		case "password":
			field.Type = schema.FieldTypePassword
		case "textarea":
			field.Type = schema.FieldTypeTextarea
		default:
			field.Type = schema.FieldTypeText
		}
		if prop.MaxLength != nil {
			field.MaxLength = int(*prop.MaxLength)
		}

	case prop.Type.Is(openapi3.TypeArray):
		if prop.Items == nil || prop.Items.Value == nil || len(prop.Items.Value.Enum) == 0 {
			return schema.Field{}, false
		}
		field.Type = schema.FieldTypeMultiSelect
		field.Options = optionsFromEnum(prop.Items.Value.Enum)

	default:
		return schema.Field{}, false
	}

	return field, true
}

func optionsFromEnum(enum []any) []schema.Option {
	options := make([]schema.Option, 0, len(enum))
	for _, entry := range enum {
		value := fmt.Sprint(entry)
		options = append(options, schema.Option{Value: value, Label: labelFor(value, "")})
	}
	return options
}

// labelFor humanizes a property name when no explicit title is present:
// underscores and dashes become spaces and the first rune is upper-cased.
func labelFor(name, title string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return name
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
