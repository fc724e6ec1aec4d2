package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/schema"
)

const specDocument = `
openapi: 3.0.3
info:
  title: Signup API
  version: 1.0.0
paths:
  /signups:
    post:
      operationId: createSignup
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [email]
              properties:
                email:
                  type: string
                  format: email
                  title: Email address
                full_name:
                  type: string
                  maxLength: 80
                bio:
                  type: string
                  format: textarea
                  description: Tell us about yourself.
                subscribed:
                  type: boolean
                seats:
                  type: integer
                  minimum: 1
                  maximum: 50
                plan:
                  type: string
                  enum: [free, pro]
                topics:
                  type: array
                  items:
                    type: string
                    enum: [go, web]
                nested:
                  type: object
      responses:
        "201":
          description: created
`

func loadTestDoc(t *testing.T) *openapi3.T {
	t.Helper()
	loader := &openapi3.Loader{Context: context.Background()}
	doc, err := loader.LoadFromData([]byte(specDocument))
	if err != nil {
		t.Fatalf("load test document: %v", err)
	}
	return doc
}

func TestFieldsFromOperation(t *testing.T) {
	doc := loadTestDoc(t)

	fields, err := FieldsFromOperation(doc, "createSignup")
	if err != nil {
		t.Fatalf("FieldsFromOperation() error = %v", err)
	}

	// Properties sort by name; the nested object has no flat-form mapping.
	wantNames := []string{"bio", "email", "full_name", "plan", "seats", "subscribed", "topics"}
	if diff := cmp.Diff(wantNames, fields.Names()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}

	email, _ := fields.Field("email")
	if email.Type != schema.FieldTypeEmail || !email.Required || email.Label != "Email address" {
		t.Fatalf("email field = %+v", email)
	}

	fullName, _ := fields.Field("full_name")
	if fullName.Type != schema.FieldTypeText || fullName.MaxLength != 80 || fullName.Label != "Full name" {
		t.Fatalf("full_name field = %+v", fullName)
	}

	bio, _ := fields.Field("bio")
	if bio.Type != schema.FieldTypeTextarea || bio.HelpText != "Tell us about yourself." {
		t.Fatalf("bio field = %+v", bio)
	}

	subscribed, _ := fields.Field("subscribed")
	if subscribed.Type != schema.FieldTypeCheckbox {
		t.Fatalf("subscribed field = %+v", subscribed)
	}

	seats, _ := fields.Field("seats")
	if seats.Type != schema.FieldTypeNumber {
		t.Fatalf("seats field = %+v", seats)
	}
	if seats.Min == nil || *seats.Min != 1 || seats.Max == nil || *seats.Max != 50 {
		t.Fatalf("seats bounds = %+v", seats)
	}
	if seats.Step == nil || *seats.Step != 1 {
		t.Fatalf("integer seats must step by 1: %+v", seats)
	}

	plan, _ := fields.Field("plan")
	if plan.Type != schema.FieldTypeSelect {
		t.Fatalf("plan field = %+v", plan)
	}
	wantOptions := []schema.Option{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Pro"},
	}
	if diff := cmp.Diff(wantOptions, plan.Options); diff != "" {
		t.Fatalf("plan options mismatch (-want +got):\n%s", diff)
	}

	topics, _ := fields.Field("topics")
	if topics.Type != schema.FieldTypeMultiSelect || len(topics.Options) != 2 {
		t.Fatalf("topics field = %+v", topics)
	}
}

func TestFieldsFromOperationUnknownOperation(t *testing.T) {
	doc := loadTestDoc(t)

	_, err := FieldsFromOperation(doc, "missingOperation")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("FieldsFromOperation() error = %v, want not-found", err)
	}
}

func TestFieldsFromOperationNilDocument(t *testing.T) {
	if _, err := FieldsFromOperation(nil, "createSignup"); err == nil {
		t.Fatal("expected an error for a nil document")
	}
}

func TestLoadRejectsEmptySource(t *testing.T) {
	if _, err := Load(context.Background(), "   "); err == nil {
		t.Fatal("expected an error for an empty source")
	}
}
