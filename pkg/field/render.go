package field

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/widget"
)

// Render presents a field in mode. Callbacks not allowed in the mode are
// dropped, missing ones become no-ops, and review output has every handler
// removed.
func Render(r Renderer, mode Mode, props Props) (widget.Node, error) {
	if r == nil {
		return widget.Node{}, fmt.Errorf("field: renderer is required")
	}
	switch mode {
	case ModeAuthor:
		return r.Author(props.author()), nil
	case ModeInteract:
		return r.Interact(props.interact()), nil
	case ModeReview:
		return widget.Inert(r.Review(props.review())), nil
	default:
		return widget.Node{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
