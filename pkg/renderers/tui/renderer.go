// Package tui drives a form controller through terminal prompts: one prompt
// per visible field, answers funneled through the controller's change
// handling so coercion and visibility stay identical to the HTML path.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Renderer implements render.Renderer over a prompt session. Render walks the
// schema, prompts for each visible field, and returns the visible-value
// payload serialized as JSON.
type Renderer struct {
	driver PromptDriver
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with the survey driver by default.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render prompts for every visible field in schema order. Visibility is
// re-evaluated against the values collected so far, so answering a gating
// field reveals or hides the fields behind it.
func (r *Renderer) Render(ctx context.Context, controller *form.Controller, options render.Options) ([]byte, error) {
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if title := strings.TrimSpace(options.Title); title != "" {
		if err := r.driver.Info(ctx, title); err != nil {
			return nil, err
		}
	}

	for _, field := range controller.Schema() {
		if !field.Visible(controller.Values()) {
			continue
		}
		if field.Disabled {
			continue
		}
		if err := r.promptField(ctx, field, controller); err != nil {
			return nil, err
		}
	}

	payload, err := json.MarshalIndent(controller.VisibleValues(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: serialize payload: %w", err)
	}
	return payload, nil
}

func (r *Renderer) promptField(ctx context.Context, field schema.Field, controller *form.Controller) error {
	current, _ := controller.Value(field.Name)

	switch field.Type {
	case schema.FieldTypeCheckbox:
		checked, _ := current.(bool)
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: promptMessage(field),
			Default: checked,
			Help:    field.HelpText,
		})
		if err != nil {
			return err
		}
		controller.HandleValueChange(field.Name, answer)

	case schema.FieldTypeSelect:
		labels := optionLabels(field.Options)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptMessage(field),
			Options:      labels,
			DefaultIndex: optionIndex(field.Options, stringOf(current)),
			Help:         field.HelpText,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			controller.HandleValueChange(field.Name, field.Options[idx].Value)
		}

	case schema.FieldTypeMultiSelect:
		labels := optionLabels(field.Options)
		selected, _ := current.([]string)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  promptMessage(field),
			Options:  labels,
			Defaults: optionIndices(field.Options, selected),
			Help:     field.HelpText,
		})
		if err != nil {
			return err
		}
		values := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(field.Options) {
				values = append(values, field.Options[idx].Value)
			}
		}
		controller.HandleValueChange(field.Name, values)

	case schema.FieldTypeNumber:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   promptMessage(field),
			Default:   numberDefault(current),
			Help:      field.HelpText,
			Validator: validateNumber,
		})
		if err != nil {
			return err
		}
		controller.HandleNativeChange(form.NativeChangeEvent{Name: field.Name, Value: answer})

	case schema.FieldTypePassword:
		answer, err := r.driver.Password(ctx, InputConfig{
			Message: promptMessage(field),
			Help:    field.HelpText,
		})
		if err != nil {
			return err
		}
		controller.HandleValueChange(field.Name, answer)

	case schema.FieldTypeTextarea:
		answer, err := r.driver.TextArea(ctx, InputConfig{
			Message: promptMessage(field),
			Default: stringOf(current),
			Help:    field.HelpText,
		})
		if err != nil {
			return err
		}
		controller.HandleValueChange(field.Name, answer)

	case schema.FieldTypeText, schema.FieldTypeEmail:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message: promptMessage(field),
			Default: stringOf(current),
			Help:    field.HelpText,
		})
		if err != nil {
			return err
		}
		controller.HandleValueChange(field.Name, answer)

	default:
		return fmt.Errorf("tui: unsupported field type %q", field.Type)
	}
	return nil
}

func promptMessage(field schema.Field) string {
	label := strings.TrimSpace(field.Label)
	if label == "" {
		label = field.Name
	}
	if field.Required {
		label += " *"
	}
	return label
}

func validateNumber(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return fmt.Errorf("enter a number or leave empty")
	}
	return nil
}

func stringOf(value any) string {
	s, _ := value.(string)
	return s
}

func numberDefault(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return ""
	}
}

func optionLabels(options []schema.Option) []string {
	labels := make([]string, 0, len(options))
	for _, option := range options {
		label := option.Label
		if label == "" {
			label = option.Value
		}
		labels = append(labels, label)
	}
	return labels
}

func optionIndex(options []schema.Option, value string) int {
	for i, option := range options {
		if option.Value == value {
			return i
		}
	}
	return -1
}

func optionIndices(options []schema.Option, values []string) []int {
	var out []int
	for i, option := range options {
		for _, value := range values {
			if option.Value == value {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
