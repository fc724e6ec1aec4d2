package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/schema"
)

func TestRequired(t *testing.T) {
	fields := schema.Schema{
		{Type: schema.FieldTypeText, Name: "name", Required: true},
		{Type: schema.FieldTypeCheckbox, Name: "terms", Required: true},
		{Type: schema.FieldTypeMultiSelect, Name: "topics", Required: true},
		{Type: schema.FieldTypeNumber, Name: "seats", Required: true},
		{Type: schema.FieldTypeTextarea, Name: "notes"},
	}
	validate := Required(fields)

	t.Run("flags every empty required field", func(t *testing.T) {
		got := validate(Values{
			"name":   "   ",
			"terms":  false,
			"topics": []string{},
			"seats":  "",
			"notes":  "",
		})
		want := Errors{
			"name":   "This field is required",
			"terms":  "This field is required",
			"topics": "This field is required",
			"seats":  "This field is required",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("verdict mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("passes when every required field is filled", func(t *testing.T) {
		got := validate(Values{
			"name":   "Ada",
			"terms":  true,
			"topics": []string{"go"},
			"seats":  float64(1),
		})
		if got != nil {
			t.Fatalf("verdict = %v, want nil", got)
		}
	})

	t.Run("skips fields absent from the visible subset", func(t *testing.T) {
		got := validate(Values{"name": "Ada"})
		if got != nil {
			t.Fatalf("verdict = %v, want nil for hidden required fields", got)
		}
	})
}
