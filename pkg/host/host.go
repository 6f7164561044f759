package host

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/validation"
	"github.com/goliatone/go-formfield/pkg/widget"
)

const defaultMaxAttempts = 64

// Host owns the current Snapshot of one form.
type Host struct {
	registry    *field.Registry
	resolver    *field.Resolver
	validator   *validation.Validator
	logger      *slog.Logger
	newID       IDGenerator
	maxAttempts int
	initial     schema.Form
	observers   []Observer

	current Snapshot
}

// New constructs a host over registry with the default form installed.
func New(registry *field.Registry, opts ...Option) (*Host, error) {
	if registry == nil {
		return nil, fmt.Errorf("host: plugin registry is required")
	}
	h := &Host{
		registry:    registry,
		logger:      slog.New(slog.DiscardHandler),
		newID:       UUIDGenerator(),
		maxAttempts: defaultMaxAttempts,
		initial:     schema.DefaultForm(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	h.current = h.initialSnapshot(0)
	return h, nil
}

func (h *Host) initialSnapshot(version uint64) Snapshot {
	return Snapshot{
		Version:  version,
		Schema:   h.initial,
		UISchema: schema.EmptyUIDocument(),
		Data:     schema.EmptyData(),
	}
}

// Registry returns the plugin registry the host instantiates from.
func (h *Host) Registry() *field.Registry {
	return h.registry
}

// Snapshot returns the current documents.
func (h *Host) Snapshot() Snapshot {
	return h.current
}

// Fields lists field ids in schema order.
func (h *Host) Fields() []string {
	return h.current.Schema.Keys()
}

// Slice returns the current documents for one field.
func (h *Host) Slice(id string) (Slice, error) {
	slice, ok := h.current.slice(id)
	if !ok {
		return Slice{}, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	return slice, nil
}

// Subscribe adds an observer after construction.
func (h *Host) Subscribe(observer Observer) {
	if observer != nil {
		h.observers = append(h.observers, observer)
	}
}

func (h *Host) install(op Op, id string, next Snapshot) {
	next.Version = h.current.Version + 1
	h.current = next
	h.logger.Debug("transition", "op", op, "field", id, "version", next.Version)
	event := Event{Op: op, Field: id, Snapshot: next}
	for _, observer := range h.observers {
		observer(event)
	}
}

func (h *Host) taken(id string) bool {
	cur := h.current
	return cur.Schema.Has(id) || cur.UISchema.Has(id) || cur.Data.Has(id)
}

func (h *Host) allocateID(pluginType string) (string, error) {
	for attempt := 0; attempt < h.maxAttempts; attempt++ {
		id := strings.TrimSpace(h.newID(pluginType))
		if id != "" && !h.taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w for %q after %d attempts", ErrIDExhausted, pluginType, h.maxAttempts)
}

// AddField instantiates a field of pluginType under a fresh id and returns
// the id. The schema and UI entries come from the plugin factories and the
// value starts empty.
func (h *Host) AddField(pluginType string) (string, error) {
	plugin, err := h.registry.Get(pluginType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlugin, pluginType)
	}
	id, err := h.allocateID(plugin.Type())
	if err != nil {
		return "", err
	}

	cur := h.current
	h.install(OpAdd, id, Snapshot{
		Schema:   cur.Schema.WithProperty(id, plugin.InitialSchema()),
		UISchema: cur.UISchema.With(id, field.InitialUISchema(plugin)),
		Data:     cur.Data.With(id, field.EmptyValue(plugin)),
		bindings: cur.withBinding(id, plugin.Type()),
	})
	return id, nil
}

// RemoveField deletes id from all three documents.
func (h *Host) RemoveField(id string) error {
	cur := h.current
	if !cur.Schema.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	h.install(OpRemove, id, Snapshot{
		Schema:   cur.Schema.WithoutProperty(id),
		UISchema: cur.UISchema.Without(id),
		Data:     cur.Data.Without(id),
		bindings: cur.withoutBinding(id),
	})
	return nil
}

// RenameField re-keys id to newID in all three documents. The field keeps
// its position in the schema.
func (h *Host) RenameField(id, newID string) error {
	newID = strings.TrimSpace(newID)
	if newID == "" {
		return fmt.Errorf("host: new field id is required")
	}
	cur := h.current
	if !cur.Schema.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	if newID == id {
		return nil
	}
	if h.taken(newID) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, newID)
	}
	form, _ := cur.Schema.RenameProperty(id, newID)
	bindings := cur.withoutBinding(id)
	if pluginType, ok := cur.bindings[id]; ok {
		bindings[newID] = pluginType
	}
	h.install(OpRename, newID, Snapshot{
		Schema:   form,
		UISchema: cur.UISchema.Rename(id, newID),
		Data:     cur.Data.Rename(id, newID),
		bindings: bindings,
	})
	return nil
}

// Reset restores the default schema and empties the UI schema and form
// data. There is no undo.
func (h *Host) Reset() {
	h.install(OpReset, "", h.initialSnapshot(0))
}

// SchemaChanged replaces the schema entry of id in full.
func (h *Host) SchemaChanged(id string, next schema.Field) error {
	cur := h.current
	if !cur.Schema.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	cur.Schema = cur.Schema.WithProperty(id, next)
	h.install(OpSchema, id, cur)
	return nil
}

// UISchemaChanged replaces the UI schema entry of id in full.
func (h *Host) UISchemaChanged(id string, next schema.UI) error {
	cur := h.current
	if !cur.Schema.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	cur.UISchema = cur.UISchema.With(id, next)
	h.install(OpUISchema, id, cur)
	return nil
}

// ValueChanged replaces the form data entry of id.
func (h *Host) ValueChanged(id string, value any) error {
	cur := h.current
	if !cur.Schema.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	cur.Data = cur.Data.With(id, value)
	h.install(OpValue, id, cur)
	return nil
}

// Load installs existing documents. Each property is bound to a plugin
// through its ui:widget hint or the resolver; properties nothing matches are
// kept but cannot be rendered. UI and data entries without a schema entry are
// dropped.
func (h *Host) Load(form schema.Form, ui schema.UIDocument, data schema.Data) error {
	if form.Title() == "" {
		form = form.WithTitle(h.initial.Title())
	}
	if ui.Len() == 0 {
		ui = schema.EmptyUIDocument()
	}
	if data.Len() == 0 {
		data = schema.EmptyData()
	}
	bindings := make(map[string]string, form.Len())
	for _, id := range form.Keys() {
		f, _ := form.Property(id)
		hints, _ := ui.Field(id)
		pluginType, ok := h.resolver.Resolve(f, hints)
		if !ok {
			h.logger.Warn("no plugin matches field", "field", id, "type", f.Type)
			continue
		}
		if !h.registry.Has(pluginType) {
			h.logger.Warn("field bound to unregistered plugin", "field", id, "plugin", pluginType)
			continue
		}
		plugin, _ := h.registry.Get(pluginType)
		bindings[id] = plugin.Type()
	}

	for _, id := range ui.Keys() {
		if !form.Has(id) {
			h.logger.Warn("dropping ui schema entry without schema", "field", id)
			ui = ui.Without(id)
		}
	}
	for _, id := range data.Keys() {
		if !form.Has(id) {
			h.logger.Warn("dropping form data entry without schema", "field", id)
			data = data.Without(id)
		}
	}

	h.install(OpLoad, "", Snapshot{Schema: form, UISchema: ui, Data: data, bindings: bindings})
	return nil
}

// LoadBundle installs a decoded {schema, uiSchema, formData} bundle.
func (h *Host) LoadBundle(bundle schema.Bundle) error {
	return h.Load(bundle.Schema, bundle.UISchema, bundle.FormData)
}

// Render presents field id in mode. Callbacks on the returned tree apply
// transitions to the host; a tree rendered before a field was removed or
// renamed logs and ignores its events.
func (h *Host) Render(ctx context.Context, id string, mode field.Mode) (widget.Node, error) {
	slice, err := h.Slice(id)
	if err != nil {
		return widget.Node{}, err
	}
	if slice.PluginType == "" {
		return widget.Node{}, fmt.Errorf("%w: %q", ErrUnboundField, id)
	}
	plugin, err := h.registry.Get(slice.PluginType)
	if err != nil {
		return widget.Node{}, fmt.Errorf("%w: %q", ErrUnknownPlugin, slice.PluginType)
	}

	props := field.Props{
		Schema:   slice.Schema,
		UISchema: slice.UISchema,
		Value:    slice.Value,
		OnSchemaChange: func(next schema.Field) {
			h.report(OpSchema, id, h.SchemaChanged(id, next))
		},
		OnUISchemaChange: func(next schema.UI) {
			h.report(OpUISchema, id, h.UISchemaChanged(id, next))
		},
		OnValueChange: func(value any) {
			h.report(OpValue, id, h.ValueChanged(id, value))
		},
	}
	if mode == field.ModeInteract && h.validator != nil {
		if fe := h.validator.ValidateValue(ctx, id, slice.Schema, slice.Value); fe != nil {
			props.Error = fe
		}
	}
	return field.Render(plugin, mode, props)
}

func (h *Host) report(op Op, id string, err error) {
	if err != nil {
		h.logger.Warn("stale presentation event ignored", "op", op, "field", id, "error", err)
	}
}

// Validate checks the current form data against the schema. Without a
// configured validator the default one is used.
func (h *Host) Validate(ctx context.Context) validation.ErrorMapping {
	v := h.validator
	if v == nil {
		v = validation.NewValidator(validation.WithLogger(h.logger))
	}
	return v.ValidateForm(ctx, h.current.Schema, h.current.Data)
}

// Lint reports soft inconsistencies in the current schema.
func (h *Host) Lint(ctx context.Context) validation.SchemaValidationResult {
	return validation.LintForm(ctx, h.current.Schema)
}
