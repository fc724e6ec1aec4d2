package vanilla

// Chrome class slots recognized by render.Options.ChromeClasses overrides.
const (
	SlotForm    = "form"
	SlotHeader  = "header"
	SlotField   = "field"
	SlotLabel   = "label"
	SlotHelp    = "help"
	SlotError   = "error"
	SlotActions = "actions"
	SlotSubmit  = "submit"
)

// Default classes applied when no override is supplied for a slot.
var defaultChromeClasses = map[string]string{
	SlotForm:    "formflow-form",
	SlotHeader:  "formflow-header",
	SlotField:   "formflow-field",
	SlotLabel:   "formflow-label",
	SlotHelp:    "formflow-help",
	SlotError:   "formflow-error",
	SlotActions: "formflow-actions",
	SlotSubmit:  "formflow-submit",
}

func chromeClass(overrides map[string]string, slot string) string {
	if cls, ok := overrides[slot]; ok && cls != "" {
		return cls
	}
	return defaultChromeClasses[slot]
}
