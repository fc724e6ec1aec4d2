package render

import theme "github.com/goliatone/go-theme"

// Options describe per-request presentation data. State concerns (values,
// errors, submitting, loading) live on the controller; options only shape the
// surrounding chrome.
type Options struct {
	// Action and Method populate the form element. Method defaults to POST.
	Action string
	Method string
	// Title and Description render in the form header when set.
	Title       string
	Description string
	// SubmitText overrides the controller's submit label for this render.
	SubmitText string
	// Theme carries a resolved go-theme renderer configuration; CSS variables
	// are emitted on the form element and AssetURL resolves the stylesheet
	// link.
	Theme *theme.RendererConfig
	// ChromeClasses overrides individual chrome class names by slot.
	ChromeClasses map[string]string
}
