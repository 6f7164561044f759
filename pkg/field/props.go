package field

import "github.com/goliatone/go-formfield/pkg/schema"

// Error is the validation feedback handed to interact mode. Plugins only read
// its message.
type Error interface {
	Message() string
}

// AuthorProps carries the definition slices and the callbacks that replace
// them. Each callback replaces the whole slice.
type AuthorProps struct {
	Schema           schema.Field
	UISchema         schema.UI
	OnSchemaChange   func(schema.Field)
	OnUISchemaChange func(schema.UI)
}

// InteractProps carries the current value and its change callback.
type InteractProps struct {
	Schema        schema.Field
	UISchema      schema.UI
	Value         any
	Error         Error
	OnValueChange func(any)
}

// ReviewProps carries read-only inputs. There are no callbacks.
type ReviewProps struct {
	Schema   schema.Field
	UISchema schema.UI
	Value    any
}

// Props is the mode independent bag a host fills before calling Render.
type Props struct {
	Schema           schema.Field
	UISchema         schema.UI
	Value            any
	Error            Error
	OnValueChange    func(any)
	OnSchemaChange   func(schema.Field)
	OnUISchemaChange func(schema.UI)
}

func (p Props) author() AuthorProps {
	out := AuthorProps{
		Schema:           p.Schema.Clone(),
		UISchema:         p.UISchema.Clone(),
		OnSchemaChange:   p.OnSchemaChange,
		OnUISchemaChange: p.OnUISchemaChange,
	}
	if out.OnSchemaChange == nil {
		out.OnSchemaChange = func(schema.Field) {}
	}
	if out.OnUISchemaChange == nil {
		out.OnUISchemaChange = func(schema.UI) {}
	}
	return out
}

func (p Props) interact() InteractProps {
	out := InteractProps{
		Schema:        p.Schema.Clone(),
		UISchema:      p.UISchema.Clone(),
		Value:         schema.CloneValue(p.Value),
		Error:         p.Error,
		OnValueChange: p.OnValueChange,
	}
	if out.OnValueChange == nil {
		out.OnValueChange = func(any) {}
	}
	return out
}

func (p Props) review() ReviewProps {
	return ReviewProps{
		Schema:   p.Schema.Clone(),
		UISchema: p.UISchema.Clone(),
		Value:    schema.CloneValue(p.Value),
	}
}
