package form

import (
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Required builds a validator that rejects empty values for every required
// field in the schema. Hidden fields are naturally exempt because validators
// only ever see the visible-value subset.
func Required(s schema.Schema) Validator {
	return func(values Values) Errors {
		errs := make(Errors)
		for _, field := range s {
			if !field.Required {
				continue
			}
			value, ok := values[field.Name]
			if !ok {
				continue
			}
			if emptyValue(field.Type, value) {
				errs[field.Name] = "This field is required"
			}
		}
		if len(errs) == 0 {
			return nil
		}
		return errs
	}
}

func emptyValue(t schema.FieldType, value any) bool {
	switch t {
	case schema.FieldTypeCheckbox:
		checked, ok := value.(bool)
		return !ok || !checked
	case schema.FieldTypeMultiSelect:
		list, ok := value.([]string)
		return !ok || len(list) == 0
	case schema.FieldTypeNumber:
		// Numbers hold float64 when set; the empty string means cleared.
		_, isNumber := value.(float64)
		return !isNumber
	case schema.FieldTypeText, schema.FieldTypeEmail, schema.FieldTypePassword,
		schema.FieldTypeTextarea, schema.FieldTypeSelect:
		s, ok := value.(string)
		return !ok || strings.TrimSpace(s) == ""
	default:
		return value == nil
	}
}
