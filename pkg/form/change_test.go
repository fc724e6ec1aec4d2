package form

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/schema"
)

func TestCoerceNative(t *testing.T) {
	tests := []struct {
		name  string
		field schema.Field
		ev    NativeChangeEvent
		want  any
	}{
		{
			name:  "checkbox uses checked state",
			field: schema.Field{Type: schema.FieldTypeCheckbox, Name: "subscribe"},
			ev:    NativeChangeEvent{Name: "subscribe", Checked: true, Value: "ignored"},
			want:  true,
		},
		{
			name:  "number parses to float64",
			field: schema.Field{Type: schema.FieldTypeNumber, Name: "seats"},
			ev:    NativeChangeEvent{Name: "seats", Value: "4"},
			want:  float64(4),
		},
		{
			name:  "cleared number stays empty string",
			field: schema.Field{Type: schema.FieldTypeNumber, Name: "seats"},
			ev:    NativeChangeEvent{Name: "seats", Value: "  "},
			want:  "",
		},
		{
			name:  "unparseable number keeps the raw string",
			field: schema.Field{Type: schema.FieldTypeNumber, Name: "seats"},
			ev:    NativeChangeEvent{Name: "seats", Value: "4x"},
			want:  "4x",
		},
		{
			name:  "multiselect copies the selected options",
			field: schema.Field{Type: schema.FieldTypeMultiSelect, Name: "topics"},
			ev:    NativeChangeEvent{Name: "topics", SelectedOptions: []string{"go", "web"}},
			want:  []string{"go", "web"},
		},
		{
			name:  "text keeps the raw value",
			field: schema.Field{Type: schema.FieldTypeText, Name: "name"},
			ev:    NativeChangeEvent{Name: "name", Value: "Ada"},
			want:  "Ada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceNative(tt.field, tt.ev)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("coerceNative mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCoerceNativeMultiselectCopies(t *testing.T) {
	field := schema.Field{Type: schema.FieldTypeMultiSelect, Name: "topics"}
	selected := []string{"go"}

	got := coerceNative(field, NativeChangeEvent{Name: "topics", SelectedOptions: selected})
	selected[0] = "mutated"

	if diff := cmp.Diff([]string{"go"}, got); diff != "" {
		t.Fatalf("coerced slice aliases the event slice (-want +got):\n%s", diff)
	}
}

func TestHandleNativeChangeUnknownFieldKeepsRawValue(t *testing.T) {
	controller := New(testSchema())
	controller.HandleNativeChange(NativeChangeEvent{Name: "mystery", Value: "42"})

	value, ok := controller.Value("mystery")
	if !ok || value != "42" {
		t.Fatalf("mystery = %v (present %v), want raw string 42", value, ok)
	}
}

func TestApplyForm(t *testing.T) {
	controller := New(testSchema())
	controller.ApplyForm(url.Values{
		"name":   {"Ada"},
		"topics": {"go", "web"},
		"seats":  {"3"},
	})

	want := Values{
		"name":      "Ada",
		"subscribe": false,
		"plan":      "",
		"topics":    []string{"go", "web"},
		"seats":     float64(3),
	}
	if diff := cmp.Diff(want, controller.Values()); diff != "" {
		t.Fatalf("values after ApplyForm mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFormCheckboxSemantics(t *testing.T) {
	controller := New(testSchema())
	controller.HandleValueChange("subscribe", true)

	// Browsers omit unchecked boxes entirely, so absence means false.
	controller.ApplyForm(url.Values{"name": {"Ada"}})

	if value, _ := controller.Value("subscribe"); value != false {
		t.Fatalf("subscribe = %v, want false for an absent checkbox", value)
	}

	controller.ApplyForm(url.Values{"subscribe": {"on"}})
	if value, _ := controller.Value("subscribe"); value != true {
		t.Fatalf("subscribe = %v, want true for on", value)
	}
}

func TestApplyFormLeavesAbsentFieldsUntouched(t *testing.T) {
	controller := New(testSchema())
	controller.HandleValueChange("name", "Ada")

	controller.ApplyForm(url.Values{"seats": {"2"}})

	if value, _ := controller.Value("name"); value != "Ada" {
		t.Fatalf("name = %v, want Ada to survive a partial post", value)
	}
}
