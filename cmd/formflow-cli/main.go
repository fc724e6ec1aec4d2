package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	formflow "github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/openapi"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "form schema document (YAML or JSON)")
	openapiSource := flag.String("openapi", "", "OpenAPI document path or URL")
	operationID := flag.String("operation", "", "operation ID when using an OpenAPI source")
	rendererName := flag.String("renderer", "vanilla", "renderer to use (vanilla, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	action := flag.String("action", "", "form action URL")
	flag.Parse()

	ctx := context.Background()

	fields, title, description, err := loadFields(ctx, *schemaPath, *openapiSource, *operationID)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	registry, err := formflow.DefaultRegistry()
	if err != nil {
		log.Fatalf("Failed to build renderer registry: %v", err)
	}
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("Unknown renderer: %v", err)
	}

	controller := form.New(fields)
	result, err := renderer.Render(ctx, controller, render.Options{
		Action:      *action,
		Title:       title,
		Description: description,
	})
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

func loadFields(ctx context.Context, schemaPath, openapiSource, operationID string) (schema.Schema, string, string, error) {
	switch {
	case schemaPath != "":
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, "", "", err
		}
		doc, err := schema.Parse(data)
		if err != nil {
			return nil, "", "", err
		}
		return doc.Fields, doc.Title, doc.Description, nil

	case openapiSource != "":
		if operationID == "" {
			return nil, "", "", fmt.Errorf("-operation is required with -openapi")
		}
		doc, err := openapi.Load(ctx, openapiSource)
		if err != nil {
			return nil, "", "", err
		}
		fields, err := openapi.FieldsFromOperation(doc, operationID)
		if err != nil {
			return nil, "", "", err
		}
		return fields, operationID, "", nil

	default:
		return nil, "", "", fmt.Errorf("one of -schema or -openapi is required")
	}
}
