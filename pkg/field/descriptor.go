package field

import (
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Descriptor adapts plain functions into a Plugin, for plugins that do not
// need a type of their own.
type Descriptor struct {
	ID    string
	Info  Meta
	Empty any

	NewSchema   func() schema.Field
	NewUISchema func() schema.UI

	AuthorFunc   func(AuthorProps) widget.Node
	InteractFunc func(InteractProps) widget.Node
	ReviewFunc   func(ReviewProps) widget.Node
}

var (
	_ Plugin             = Descriptor{}
	_ UISchemaProvider   = Descriptor{}
	_ EmptyValueProvider = Descriptor{}
)

func (d Descriptor) Type() string { return d.ID }

func (d Descriptor) Meta() Meta { return d.Info }

func (d Descriptor) InitialSchema() schema.Field {
	if d.NewSchema == nil {
		return schema.Field{}
	}
	return d.NewSchema()
}

func (d Descriptor) InitialUISchema() schema.UI {
	if d.NewUISchema == nil {
		return schema.UI{}
	}
	return d.NewUISchema()
}

func (d Descriptor) EmptyValue() any {
	if d.Empty == nil {
		return ""
	}
	return d.Empty
}

func (d Descriptor) Author(props AuthorProps) widget.Node {
	if d.AuthorFunc == nil {
		return widget.Group(d.ID)
	}
	return d.AuthorFunc(props)
}

func (d Descriptor) Interact(props InteractProps) widget.Node {
	if d.InteractFunc == nil {
		return widget.Group(d.ID)
	}
	return d.InteractFunc(props)
}

func (d Descriptor) Review(props ReviewProps) widget.Node {
	if d.ReviewFunc == nil {
		return widget.Group(d.ID)
	}
	return d.ReviewFunc(props)
}
