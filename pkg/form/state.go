package form

import "github.com/goliatone/go-formflow/pkg/schema"

// Values maps field names to their current values. Value types follow the
// field variant: string for text-likes and select, float64 or the empty
// string for number, bool for checkbox, []string for multiselect.
type Values map[string]any

// Errors maps field names to advisory validation messages. An absent entry
// means the field has no error.
type Errors map[string]string

// Clone returns an independent copy. Multiselect slices are copied so callers
// cannot alias controller state.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for name, value := range v {
		if list, ok := value.([]string); ok {
			out[name] = append([]string(nil), list...)
			continue
		}
		out[name] = value
	}
	return out
}

// Clone returns an independent copy of the error map.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for name, msg := range e {
		out[name] = msg
	}
	return out
}

// seedValues computes the value map for a schema: previously entered values
// for fields still present win, then supplied initial values, then the
// variant default. Values for fields not in the schema are dropped.
func seedValues(s schema.Schema, initial, previous Values) Values {
	out := make(Values, len(s))
	for _, field := range s {
		if value, ok := previous[field.Name]; ok {
			out[field.Name] = value
			continue
		}
		if value, ok := initial[field.Name]; ok {
			out[field.Name] = value
			continue
		}
		out[field.Name] = schema.DefaultValue(field.Type)
	}
	return out
}

// defaultValues resets every field to its variant default.
func defaultValues(s schema.Schema) Values {
	out := make(Values, len(s))
	for _, field := range s {
		out[field.Name] = schema.DefaultValue(field.Type)
	}
	return out
}
