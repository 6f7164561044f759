package vanilla

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
)

// sanitizeClassList drops reserved formfield-* tokens so overrides cannot
// collide with the built-in chrome classes.
func sanitizeClassList(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "formfield-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

func modeLabel(mode field.Mode) string {
	switch mode {
	case field.ModeAuthor:
		return "Builder"
	case field.ModeInteract:
		return "Fill"
	case field.ModeReview:
		return "Review"
	default:
		return mode.String()
	}
}

func fieldScope(id string, mode field.Mode) string {
	return id + "-" + mode.String()
}
