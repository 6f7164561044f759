package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassPage      ChromeClass = "formfield-page"
	ClassHeader    ChromeClass = "formfield-header"
	ClassMenu      ChromeClass = "formfield-menu"
	ClassField     ChromeClass = "formfield-field"
	ClassModes     ChromeClass = "formfield-modes"
	ClassMode      ChromeClass = "formfield-mode"
	ClassDocuments ChromeClass = "formfield-documents"
)

// ChromeClasses overrides the class attribute of the page chrome. Empty
// entries fall back to the defaults.
type ChromeClasses struct {
	Page      string
	Header    string
	Menu      string
	Field     string
	Modes     string
	Mode      string
	Documents string
}

func (c ChromeClasses) context() map[string]any {
	return map[string]any{
		"page":      classOr(c.Page, ClassPage),
		"header":    classOr(c.Header, ClassHeader),
		"menu":      classOr(c.Menu, ClassMenu),
		"field":     classOr(c.Field, ClassField),
		"modes":     classOr(c.Modes, ClassModes),
		"mode":      classOr(c.Mode, ClassMode),
		"documents": classOr(c.Documents, ClassDocuments),
	}
}

func classOr(value string, fallback ChromeClass) string {
	if extra := sanitizeClassList(value); extra != "" {
		return string(fallback) + " " + extra
	}
	return string(fallback)
}
