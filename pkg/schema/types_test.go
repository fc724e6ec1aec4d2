package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultValue(t *testing.T) {
	tests := []struct {
		fieldType FieldType
		want      any
	}{
		{FieldTypeText, ""},
		{FieldTypeEmail, ""},
		{FieldTypePassword, ""},
		{FieldTypeTextarea, ""},
		{FieldTypeSelect, ""},
		{FieldTypeNumber, ""},
		{FieldTypeCheckbox, false},
		{FieldTypeMultiSelect, []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.fieldType), func(t *testing.T) {
			got := DefaultValue(tt.fieldType)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("DefaultValue(%q) mismatch (-want +got):\n%s", tt.fieldType, diff)
			}
		})
	}
}

func TestKnownFieldType(t *testing.T) {
	if !KnownFieldType(FieldTypeMultiSelect) {
		t.Fatal("multiselect must be a known variant")
	}
	if KnownFieldType(FieldType("radio")) {
		t.Fatal("radio is not a supported variant")
	}
}

func TestControlID(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"generated from name", Field{Name: "email"}, "ff-email"},
		{"explicit id wins", Field{Name: "email", ID: "signup-email"}, "signup-email"},
		{"empty field", Field{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.ControlID(); got != tt.want {
				t.Fatalf("ControlID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldVisible(t *testing.T) {
	plain := Field{Name: "name"}
	if !plain.Visible(map[string]any{}) {
		t.Fatal("fields without a predicate are always visible")
	}

	gated := Field{
		Name: "plan",
		VisibleWhen: func(values map[string]any) bool {
			subscribed, _ := values["subscribe"].(bool)
			return subscribed
		},
	}
	if gated.Visible(map[string]any{"subscribe": false}) {
		t.Fatal("predicate false must hide the field")
	}
	if !gated.Visible(map[string]any{"subscribe": true}) {
		t.Fatal("predicate true must show the field")
	}
}

func TestSchemaLookup(t *testing.T) {
	fields := Schema{
		{Type: FieldTypeText, Name: "name"},
		{Type: FieldTypeEmail, Name: "email"},
	}

	field, ok := fields.Field("email")
	if !ok || field.Type != FieldTypeEmail {
		t.Fatalf("Field(email) = %+v (found %v)", field, ok)
	}
	if _, ok := fields.Field("missing"); ok {
		t.Fatal("lookup of an absent field must fail")
	}

	if diff := cmp.Diff([]string{"name", "email"}, fields.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
}
