package vanilla

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// fieldRenderer builds the markup for individual fields: the control for the
// field's variant wrapped in label, help text, and inline error chrome.
type fieldRenderer struct {
	classes map[string]string
}

func (r fieldRenderer) render(field schema.Field, value any, errMsg string, disabled bool) string {
	var builder strings.Builder
	builder.Grow(512)

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(chromeClass(r.classes, SlotField)))
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString("\">\n")

	if strings.TrimSpace(field.Label) != "" {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(field.ControlID()))
		builder.WriteString(`" class="`)
		builder.WriteString(html.EscapeString(chromeClass(r.classes, SlotLabel)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(field.Label))
		if field.Required {
			builder.WriteString(` *`)
		}
		builder.WriteString("</label>\n")
	}

	builder.WriteString("    ")
	builder.WriteString(r.renderControl(field, value, disabled))
	builder.WriteByte('\n')

	if help := sanitizeHelpText(field.HelpText); help != "" {
		builder.WriteString(`    <small class="`)
		builder.WriteString(html.EscapeString(chromeClass(r.classes, SlotHelp)))
		builder.WriteString(`">`)
		builder.WriteString(help)
		builder.WriteString("</small>\n")
	}

	if strings.TrimSpace(errMsg) != "" {
		builder.WriteString(`    <p class="`)
		builder.WriteString(html.EscapeString(chromeClass(r.classes, SlotError)))
		builder.WriteString(`" role="alert">`)
		builder.WriteString(html.EscapeString(errMsg))
		builder.WriteString("</p>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func (r fieldRenderer) renderControl(field schema.Field, value any, disabled bool) string {
	switch field.Type {
	case schema.FieldTypeText, schema.FieldTypeEmail, schema.FieldTypePassword:
		return renderInput(field, string(field.Type), stringValue(value), disabled)
	case schema.FieldTypeNumber:
		return renderNumberInput(field, value, disabled)
	case schema.FieldTypeTextarea:
		return renderTextarea(field, stringValue(value), disabled)
	case schema.FieldTypeCheckbox:
		return renderCheckbox(field, boolValue(value), disabled)
	case schema.FieldTypeSelect:
		return renderSelect(field, stringValue(value), disabled)
	case schema.FieldTypeMultiSelect:
		return renderMultiSelect(field, stringSliceValue(value), disabled)
	default:
		return renderInput(field, "text", stringValue(value), disabled)
	}
}

func renderInput(field schema.Field, inputType, value string, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<input type="`)
	builder.WriteString(html.EscapeString(inputType))
	builder.WriteString(`"`)
	writeCommonAttrs(&builder, field, disabled)
	if value != "" {
		writeAttr(&builder, "value", value)
	}
	if field.MaxLength > 0 {
		writeAttr(&builder, "maxlength", strconv.Itoa(field.MaxLength))
	}
	if field.Placeholder != "" {
		writeAttr(&builder, "placeholder", field.Placeholder)
	}
	builder.WriteString(`>`)
	return builder.String()
}

func renderNumberInput(field schema.Field, value any, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<input type="number"`)
	writeCommonAttrs(&builder, field, disabled)
	if v := numberString(value); v != "" {
		writeAttr(&builder, "value", v)
	}
	if field.Min != nil {
		writeAttr(&builder, "min", strconv.FormatFloat(*field.Min, 'f', -1, 64))
	}
	if field.Max != nil {
		writeAttr(&builder, "max", strconv.FormatFloat(*field.Max, 'f', -1, 64))
	}
	if field.Step != nil {
		writeAttr(&builder, "step", strconv.FormatFloat(*field.Step, 'f', -1, 64))
	}
	if field.Placeholder != "" {
		writeAttr(&builder, "placeholder", field.Placeholder)
	}
	builder.WriteString(`>`)
	return builder.String()
}

func renderTextarea(field schema.Field, value string, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<textarea`)
	writeCommonAttrs(&builder, field, disabled)
	if field.MaxLength > 0 {
		writeAttr(&builder, "maxlength", strconv.Itoa(field.MaxLength))
	}
	if field.Placeholder != "" {
		writeAttr(&builder, "placeholder", field.Placeholder)
	}
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`</textarea>`)
	return builder.String()
}

func renderCheckbox(field schema.Field, checked, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<input type="checkbox"`)
	writeCommonAttrs(&builder, field, disabled)
	if checked {
		builder.WriteString(` checked`)
	}
	builder.WriteString(`>`)
	return builder.String()
}

func renderSelect(field schema.Field, selected string, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<select`)
	writeCommonAttrs(&builder, field, disabled)
	builder.WriteString(">\n")

	// The leading empty option keeps "nothing selected" representable; the
	// first real option is never auto-selected.
	placeholder := field.OptionPlaceholder
	builder.WriteString(`        <option value=""`)
	if selected == "" {
		builder.WriteString(` selected`)
	}
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(placeholder))
	builder.WriteString("</option>\n")

	writeOptions(&builder, field.Options, func(value string) bool {
		return value != "" && value == selected
	})
	builder.WriteString(`    </select>`)
	return builder.String()
}

func renderMultiSelect(field schema.Field, selected []string, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<select multiple`)
	writeCommonAttrs(&builder, field, disabled)
	builder.WriteString(">\n")
	writeOptions(&builder, field.Options, func(value string) bool {
		return containsString(selected, value)
	})
	builder.WriteString(`    </select>`)
	return builder.String()
}

func writeOptions(builder *strings.Builder, options []schema.Option, isSelected func(string) bool) {
	for _, option := range options {
		builder.WriteString(`        <option value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)
		if isSelected(option.Value) {
			builder.WriteString(` selected`)
		}
		builder.WriteString(`>`)
		label := option.Label
		if label == "" {
			label = option.Value
		}
		builder.WriteString(html.EscapeString(label))
		builder.WriteString("</option>\n")
	}
}

func writeCommonAttrs(builder *strings.Builder, field schema.Field, disabled bool) {
	writeAttr(builder, "id", field.ControlID())
	writeAttr(builder, "name", field.Name)
	if field.Required {
		builder.WriteString(` required`)
	}
	if disabled {
		builder.WriteString(` disabled`)
	}
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"`)
}
