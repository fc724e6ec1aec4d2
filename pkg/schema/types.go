package schema

import "strings"

// FieldType is the closed set of input variants the form runtime understands.
// Every consuming site (defaults, coercion, HTML rendering, TUI prompting)
// switches exhaustively over these values.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeEmail       FieldType = "email"
	FieldTypePassword    FieldType = "password"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
)

// KnownFieldType reports whether t names one of the supported variants.
func KnownFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypePassword, FieldTypeTextarea,
		FieldTypeNumber, FieldTypeCheckbox, FieldTypeSelect, FieldTypeMultiSelect:
		return true
	default:
		return false
	}
}

// Option is a single choice offered by select and multiselect controls.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Predicate decides field visibility against the current full value map. A
// nil predicate means always visible. Predicates must be pure; the runtime
// re-evaluates them against the latest values on every render and submit.
type Predicate func(values map[string]any) bool

// Field describes one form input. Name is the sole key into the value and
// error maps and must be unique within a schema; duplicates are undefined
// behavior and not defended against.
type Field struct {
	Type        FieldType `json:"type" yaml:"type"`
	Name        string    `json:"name" yaml:"name"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string    `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	// ID overrides the generated control id when set.
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`

	// MaxLength applies to text, email, password and textarea variants.
	MaxLength int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Min, Max and Step apply to the number variant.
	Min  *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step *float64 `json:"step,omitempty" yaml:"step,omitempty"`

	// Options feed select and multiselect controls. OptionPlaceholder labels
	// the leading empty option a select renders when set; the first real
	// option is never auto-selected.
	Options           []Option `json:"options,omitempty" yaml:"options,omitempty"`
	OptionPlaceholder string   `json:"optionPlaceholder,omitempty" yaml:"optionPlaceholder,omitempty"`

	// VisibleWhen gates rendering and submission. VisibleRule is the
	// expression form carried by serialized schemas; loaders compile it into
	// VisibleWhen via pkg/visibility/expr.
	VisibleWhen Predicate `json:"-" yaml:"-"`
	VisibleRule string    `json:"visibleWhen,omitempty" yaml:"visibleWhen,omitempty"`
}

// ControlID returns the DOM id for the field's control, honoring the ID
// override.
func (f Field) ControlID() string {
	if id := strings.TrimSpace(f.ID); id != "" {
		return id
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ""
	}
	return "ff-" + name
}

// Visible evaluates the field's predicate against the supplied values. Fields
// without a predicate are always visible.
func (f Field) Visible(values map[string]any) bool {
	if f.VisibleWhen == nil {
		return true
	}
	return f.VisibleWhen(values)
}

// Schema is an ordered sequence of field descriptors.
type Schema []Field

// Field looks up a descriptor by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, field := range s {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	if len(s) == 0 {
		return nil
	}
	names := make([]string, 0, len(s))
	for _, field := range s {
		names = append(names, field.Name)
	}
	return names
}

// DefaultValue returns the seed value used when no initial value is supplied
// for a field of the given variant. Numbers default to the empty string so a
// cleared input stays distinguishable from zero.
func DefaultValue(t FieldType) any {
	switch t {
	case FieldTypeCheckbox:
		return false
	case FieldTypeMultiSelect:
		return []string{}
	case FieldTypeNumber:
		return ""
	case FieldTypeText, FieldTypeEmail, FieldTypePassword, FieldTypeTextarea, FieldTypeSelect:
		return ""
	default:
		return ""
	}
}
