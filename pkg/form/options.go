package form

// Option configures a controller at construction time.
type Option func(*config)

type config struct {
	initial        Values
	validate       Validator
	resetOnSubmit  bool
	loading        bool
	submitText     string
	submittingText string
}

func defaultConfig() config {
	return config{
		submitText:     "Submit",
		submittingText: "Submitting...",
	}
}

// WithInitialValues seeds values for the named fields. Fields without an
// entry fall back to their variant default.
func WithInitialValues(values Values) Option {
	return func(cfg *config) {
		cfg.initial = values.Clone()
	}
}

// WithValidator installs the synchronous validation hook run on each submit
// attempt against the visible-value subset.
func WithValidator(validate Validator) Option {
	return func(cfg *config) {
		cfg.validate = validate
	}
}

// WithResetOnSubmit clears the form back to defaults after a successful
// submission.
func WithResetOnSubmit(enabled bool) Option {
	return func(cfg *config) {
		cfg.resetOnSubmit = enabled
	}
}

// WithLoading sets the initial externally driven loading flag; toggle it
// later through SetLoading.
func WithLoading(loading bool) Option {
	return func(cfg *config) {
		cfg.loading = loading
	}
}

// WithSubmitText overrides the submit button label.
func WithSubmitText(text string) Option {
	return func(cfg *config) {
		if text != "" {
			cfg.submitText = text
		}
	}
}

// WithSubmittingText overrides the progress label shown while a submission is
// in flight.
func WithSubmittingText(text string) Option {
	return func(cfg *config) {
		if text != "" {
			cfg.submittingText = text
		}
	}
}
