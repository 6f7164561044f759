package widget

// Kind names a presentation primitive.
type Kind string

const (
	KindGroup     Kind = "group"
	KindHeading   Kind = "heading"
	KindText      Kind = "text"
	KindTextInput Kind = "text-input"
	KindSelect    Kind = "select"
	KindCheckbox  Kind = "checkbox"
	KindButton    Kind = "button"
	KindError     Kind = "error"
)

// Button variants understood by the renderers.
const (
	VariantPrimary = "primary"
	VariantDanger  = "danger"
)

// Node is one element of a presentation tree. Handlers are excluded from
// serialisation so trees can be handed to template engines as data.
type Node struct {
	Kind        Kind     `json:"kind"`
	ID          string   `json:"id,omitempty"`
	Label       string   `json:"label,omitempty"`
	Value       string   `json:"value,omitempty"`
	Checked     bool     `json:"checked,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Help        string   `json:"help,omitempty"`
	Options     []string `json:"options,omitempty"`
	Variant     string   `json:"variant,omitempty"`
	Disabled    bool     `json:"disabled,omitempty"`
	ReadOnly    bool     `json:"readOnly,omitempty"`
	Children    []Node   `json:"children,omitempty"`

	OnChange func(string) `json:"-"`
	OnToggle func(bool)   `json:"-"`
	OnClick  func()       `json:"-"`
}

// Option customises a node at construction time.
type Option func(*Node)

// WithPlaceholder sets the hint shown while the control is empty.
func WithPlaceholder(text string) Option {
	return func(n *Node) { n.Placeholder = text }
}

// WithHelp attaches help text to the control.
func WithHelp(text string) Option {
	return func(n *Node) { n.Help = text }
}

// WithVariant sets the visual variant of a button.
func WithVariant(variant string) Option {
	return func(n *Node) { n.Variant = variant }
}

// WithDisabled renders the control as an inert preview.
func WithDisabled() Option {
	return func(n *Node) { n.Disabled = true }
}

// WithDisabledIf disables the control when on is true.
func WithDisabledIf(on bool) Option {
	return func(n *Node) {
		if on {
			n.Disabled = true
		}
	}
}

// WithReadOnly renders the control as read-only output.
func WithReadOnly() Option {
	return func(n *Node) { n.ReadOnly = true }
}

// WithOnChange binds the text/select change handler.
func WithOnChange(fn func(string)) Option {
	return func(n *Node) { n.OnChange = fn }
}

// WithOnToggle binds the checkbox handler.
func WithOnToggle(fn func(bool)) Option {
	return func(n *Node) { n.OnToggle = fn }
}

// WithOnClick binds the button handler.
func WithOnClick(fn func()) Option {
	return func(n *Node) { n.OnClick = fn }
}

func build(n Node, opts []Option) Node {
	for _, opt := range opts {
		if opt != nil {
			opt(&n)
		}
	}
	return n
}

// Group wraps children under one container node.
func Group(id string, children ...Node) Node {
	return Node{Kind: KindGroup, ID: id, Children: children}
}

// Heading renders a title line.
func Heading(id, text string) Node {
	return Node{Kind: KindHeading, ID: id, Label: text}
}

// Text renders static text.
func Text(id, text string, opts ...Option) Node {
	return build(Node{Kind: KindText, ID: id, Value: text}, opts)
}

// TextInput renders a single line text control.
func TextInput(id, label, value string, opts ...Option) Node {
	return build(Node{Kind: KindTextInput, ID: id, Label: label, Value: value}, opts)
}

// Select renders a single choice control over options. The options slice is
// copied and a nil slice becomes an empty choice list.
func Select(id, label, value string, options []string, opts ...Option) Node {
	choices := make([]string, len(options))
	copy(choices, options)
	return build(Node{Kind: KindSelect, ID: id, Label: label, Value: value, Options: choices}, opts)
}

// Checkbox renders a boolean control.
func Checkbox(id, label string, checked bool, opts ...Option) Node {
	return build(Node{Kind: KindCheckbox, ID: id, Label: label, Checked: checked}, opts)
}

// Button renders an action.
func Button(id, label string, opts ...Option) Node {
	return build(Node{Kind: KindButton, ID: id, Label: label}, opts)
}

// Error renders user-visible validation feedback.
func Error(id, message string) Node {
	return Node{Kind: KindError, ID: id, Value: message}
}

// HasHandler reports whether the node itself has any handler bound.
func (n Node) HasHandler() bool {
	return n.OnChange != nil || n.OnToggle != nil || n.OnClick != nil
}

// Active reports whether a driver may fire the node's handlers.
func (n Node) Active() bool {
	return n.HasHandler() && !n.Disabled && !n.ReadOnly
}
