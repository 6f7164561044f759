package components

import "github.com/goliatone/go-formfield/pkg/widget"

// Theme partial keys that can replace the built-in component templates.
const (
	PartialGroup     = "forms.group"
	PartialHeading   = "forms.heading"
	PartialText      = "forms.text"
	PartialTextInput = "forms.input"
	PartialSelect    = "forms.select"
	PartialCheckbox  = "forms.checkbox"
	PartialButton    = "forms.button"
	PartialError     = "forms.error"
)

// PartialFor returns the theme partial key used for kind.
func PartialFor(kind widget.Kind) string {
	switch kind {
	case widget.KindGroup:
		return PartialGroup
	case widget.KindHeading:
		return PartialHeading
	case widget.KindText:
		return PartialText
	case widget.KindTextInput:
		return PartialTextInput
	case widget.KindSelect:
		return PartialSelect
	case widget.KindCheckbox:
		return PartialCheckbox
	case widget.KindButton:
		return PartialButton
	case widget.KindError:
		return PartialError
	default:
		return ""
	}
}
