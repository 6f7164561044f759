package widget

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNodeNotFound is returned when no node carries the requested id.
	ErrNodeNotFound = errors.New("widget: node not found")
	// ErrNodeInactive is returned when the node is disabled or read-only.
	ErrNodeInactive = errors.New("widget: node is not interactive")
	// ErrNoHandler is returned when the node has no handler for the event.
	ErrNoHandler = errors.New("widget: no handler bound")
	// ErrUnknownOption is returned when a select receives a value outside
	// its options.
	ErrUnknownOption = errors.New("widget: value is not an option")
)

// Walk visits root and its descendants in document order.
func Walk(root Node, fn func(Node)) {
	fn(root)
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// Find returns the first node whose ID equals id.
func Find(root Node, id string) (Node, bool) {
	if id == "" {
		return Node{}, false
	}
	if root.ID == id {
		return root, true
	}
	for _, child := range root.Children {
		if found, ok := Find(child, id); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Actionable lists the nodes a driver may fire, in document order.
func Actionable(root Node) []Node {
	var out []Node
	Walk(root, func(n Node) {
		if n.Active() {
			out = append(out, n)
		}
	})
	return out
}

// HasHandlers reports whether any node in the tree has a handler bound.
func HasHandlers(root Node) bool {
	found := false
	Walk(root, func(n Node) {
		if n.HasHandler() {
			found = true
		}
	})
	return found
}

// Inert returns a copy of the tree with every handler removed.
func Inert(root Node) Node {
	out := root
	out.OnChange, out.OnToggle, out.OnClick = nil, nil, nil
	if len(root.Children) > 0 {
		out.Children = make([]Node, len(root.Children))
		for idx, child := range root.Children {
			out.Children[idx] = Inert(child)
		}
	}
	return out
}

func target(root Node, id string) (Node, error) {
	node, ok := Find(root, id)
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	if node.Disabled || node.ReadOnly {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeInactive, id)
	}
	return node, nil
}

// Change fires the change handler of the node identified by id. Select nodes
// only accept one of their options.
func Change(root Node, id, value string) error {
	node, err := target(root, id)
	if err != nil {
		return err
	}
	if node.OnChange == nil {
		return fmt.Errorf("%w: change on %q", ErrNoHandler, id)
	}
	if node.Kind == KindSelect && !slices.Contains(node.Options, value) {
		return fmt.Errorf("%w: %q on %q", ErrUnknownOption, value, id)
	}
	node.OnChange(value)
	return nil
}

// Toggle fires the toggle handler of the node identified by id.
func Toggle(root Node, id string, checked bool) error {
	node, err := target(root, id)
	if err != nil {
		return err
	}
	if node.OnToggle == nil {
		return fmt.Errorf("%w: toggle on %q", ErrNoHandler, id)
	}
	node.OnToggle(checked)
	return nil
}

// Click fires the click handler of the node identified by id.
func Click(root Node, id string) error {
	node, err := target(root, id)
	if err != nil {
		return err
	}
	if node.OnClick == nil {
		return fmt.Errorf("%w: click on %q", ErrNoHandler, id)
	}
	node.OnClick()
	return nil
}
