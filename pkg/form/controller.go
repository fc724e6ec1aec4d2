package form

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-formflow/pkg/schema"
)

var (
	// ErrSubmitInFlight signals a submit attempt while a previous submission
	// has not completed.
	ErrSubmitInFlight = errors.New("form: submission already in flight")
	// ErrValidationFailed signals that the validator rejected the visible
	// values; the per-field messages are available via Errors.
	ErrValidationFailed = errors.New("form: validation failed")
)

// Handler receives the visible-value subset when a submission passes
// validation. Its error is propagated to the Submit caller unwrapped; the
// controller does not interpret it.
type Handler func(ctx context.Context, values Values) error

// Validator inspects the visible-value subset and returns advisory messages
// keyed by field name. A nil or empty result lets the submission proceed.
type Validator func(values Values) Errors

// Controller owns the state for one form instance: the active schema, the
// value and error maps, and the submission phase. All mutation happens behind
// a single mutex so a controller can back a server-rendered request cycle.
type Controller struct {
	mu         sync.Mutex
	schema     schema.Schema
	values     Values
	errors     Errors
	submitting bool
	loading    bool
	cfg        config
}

// New seeds a controller for the schema: each field takes its supplied
// initial value when present, otherwise its variant default.
func New(s schema.Schema, options ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Controller{
		schema:  s,
		values:  seedValues(s, cfg.initial, nil),
		errors:  make(Errors),
		loading: cfg.loading,
		cfg:     cfg,
	}
}

// Schema returns the active schema.
func (c *Controller) Schema() schema.Schema {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schema
}

// SetSchema swaps the schema and recomputes the value map: fields that keep
// their name keep their current value, new fields seed their default, values
// for removed fields are dropped.
func (c *Controller) SetSchema(s schema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schema = s
	c.values = seedValues(s, c.cfg.initial, c.values)
}

// MergeInitial shallow-merges externally supplied initial values over the
// current state. Fields not mentioned keep their values.
func (c *Controller) MergeInitial(initial Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, value := range initial {
		c.values[name] = value
	}
}

// Values returns a copy of the full value map.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Value returns the current value for a field.
func (c *Controller) Value(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.values[name]
	return value, ok
}

// Errors returns a copy of the error map.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

// Error returns the message for a field, empty when the field has none.
func (c *Controller) Error(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[name]
}

// HandleNativeChange applies a raw input-change event: the field named by the
// event takes the coerced value and loses any error it carried.
func (c *Controller) HandleNativeChange(ev NativeChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	field, ok := c.schema.Field(ev.Name)
	if !ok {
		c.setLocked(ev.Name, ev.Value)
		return
	}
	c.setLocked(ev.Name, coerceNative(field, ev))
}

// HandleValueChange applies a direct (name, value) pair from a non-native
// component. No coercion is performed.
func (c *Controller) HandleValueChange(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(name, value)
}

func (c *Controller) setLocked(name string, value any) {
	c.values[name] = value
	delete(c.errors, name)
}

// Reset puts every field back to its variant default and clears all errors.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = defaultValues(c.schema)
	c.errors = make(Errors)
}

// VisibleValues computes the subset passed to validation and submission: a
// field's value is included only when it has no visibility predicate or its
// predicate holds against the current full value map. Hidden fields are
// excluded even when they hold stale values.
func (c *Controller) VisibleValues() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleValuesLocked()
}

func (c *Controller) visibleValuesLocked() Values {
	full := map[string]any(c.values)
	out := make(Values, len(c.values))
	for _, field := range c.schema {
		if !field.Visible(full) {
			continue
		}
		if value, ok := c.values[field.Name]; ok {
			out[field.Name] = value
		}
	}
	return out.Clone()
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Loading reports the externally driven loading flag.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// SetLoading toggles the externally driven loading flag. Renderers disable
// every control and the submit button while it is set.
func (c *Controller) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// FieldDisabled reports whether a control should render disabled: its own
// disabled flag, the loading flag, or an in-flight submission.
func (c *Controller) FieldDisabled(field schema.Field) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return field.Disabled || c.loading || c.submitting
}

// SubmitText returns the configured submit label, or the progress label while
// a submission is in flight.
func (c *Controller) SubmitText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return c.cfg.submittingText
	}
	return c.cfg.submitText
}

// Submit runs one submission cycle: it blocks re-entry while a submission is
// in flight, computes the visible-value subset, replaces the error map with
// the validator's verdict when one is configured, and hands the subset to the
// handler. Handler errors are returned unwrapped. On success the state resets
// when reset-on-submit is enabled.
func (c *Controller) Submit(ctx context.Context, handler Handler) error {
	if handler == nil {
		return errors.New("form: submit handler is required")
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.submitting = true
	visible := c.visibleValuesLocked()
	validate := c.cfg.validate
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if validate != nil {
		verdict := validate(visible)
		c.mu.Lock()
		c.errors = verdict.Clone()
		if c.errors == nil {
			c.errors = make(Errors)
		}
		failed := len(verdict) > 0
		c.mu.Unlock()
		if failed {
			return ErrValidationFailed
		}
	}

	if err := handler(ctx, visible); err != nil {
		return err
	}

	if c.cfg.resetOnSubmit {
		c.Reset()
	}
	return nil
}
