package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// NativeChangeEvent mirrors the shape of a raw input-change event: the field
// name read from the event target plus the facets needed for type-specific
// coercion. Non-native components should call HandleValueChange instead.
type NativeChangeEvent struct {
	Name string
	// Value is the raw string value of the control.
	Value string
	// Checked carries the checkbox state.
	Checked bool
	// SelectedOptions carries every currently selected option value of a
	// multiselect control.
	SelectedOptions []string
}

// coerceNative extracts the typed value for a field from a native event.
// Checkboxes use their checked state; numbers parse to float64 unless the
// input is empty, in which case the empty string is kept so clearing a field
// never turns it into zero; multiselects copy all selected option values;
// everything else keeps the raw string.
func coerceNative(field schema.Field, ev NativeChangeEvent) any {
	switch field.Type {
	case schema.FieldTypeCheckbox:
		return ev.Checked
	case schema.FieldTypeNumber:
		raw := strings.TrimSpace(ev.Value)
		if raw == "" {
			return ""
		}
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ev.Value
		}
		return num
	case schema.FieldTypeMultiSelect:
		return append([]string(nil), ev.SelectedOptions...)
	case schema.FieldTypeText, schema.FieldTypeEmail, schema.FieldTypePassword,
		schema.FieldTypeTextarea, schema.FieldTypeSelect:
		return ev.Value
	default:
		return ev.Value
	}
}

// ApplyForm replays a posted url.Values onto the controller as native change
// events, one per schema field. Absent checkboxes coerce to false, matching
// how browsers omit unchecked boxes from form submissions.
func (c *Controller) ApplyForm(posted url.Values) {
	for _, field := range c.Schema() {
		ev := NativeChangeEvent{Name: field.Name}
		switch field.Type {
		case schema.FieldTypeCheckbox:
			raw := posted.Get(field.Name)
			ev.Checked = raw == "on" || raw == "true" || raw == "1"
		case schema.FieldTypeMultiSelect:
			ev.SelectedOptions = posted[field.Name]
		default:
			if _, ok := posted[field.Name]; !ok {
				continue
			}
			ev.Value = posted.Get(field.Name)
		}
		c.HandleNativeChange(ev)
	}
}
