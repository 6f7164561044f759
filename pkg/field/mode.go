package field

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a field presents itself.
type Mode string

const (
	// ModeAuthor edits the field definition: title, options and hints.
	ModeAuthor Mode = "author"
	// ModeInteract edits the field value.
	ModeInteract Mode = "interact"
	// ModeReview shows the value read-only.
	ModeReview Mode = "review"
)

// ErrUnknownMode is returned for mode names ParseMode does not recognise.
var ErrUnknownMode = errors.New("field: unknown mode")

// Modes lists every mode in presentation order.
func Modes() []Mode {
	return []Mode{ModeAuthor, ModeInteract, ModeReview}
}

// ParseMode resolves a mode name. The older names used by form builders
// (build, builder, fill, edit, readOnly) are accepted as aliases.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "author", "build", "builder":
		return ModeAuthor, nil
	case "interact", "fill", "edit":
		return ModeInteract, nil
	case "review", "readonly", "read-only":
		return ModeReview, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuthor, ModeInteract, ModeReview:
		return true
	default:
		return false
	}
}
