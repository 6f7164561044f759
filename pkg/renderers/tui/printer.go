package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// PrintTree writes a plain text rendition of a widget tree. Nested groups
// are indented two spaces per level.
func PrintTree(w io.Writer, root widget.Node) error {
	var b strings.Builder
	if root.Kind == widget.KindGroup {
		for _, child := range root.Children {
			writeNode(&b, child, 0)
		}
	} else {
		writeNode(&b, root, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, node widget.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	label := node.Label
	switch node.Kind {
	case widget.KindGroup:
		for _, child := range node.Children {
			writeNode(b, child, depth+1)
		}
		return
	case widget.KindHeading:
		fmt.Fprintf(b, "%s== %s ==\n", indent, label)
	case widget.KindText:
		if label != "" {
			fmt.Fprintf(b, "%s%s: %s\n", indent, label, node.Value)
		} else {
			fmt.Fprintf(b, "%s%s\n", indent, node.Value)
		}
	case widget.KindTextInput:
		fmt.Fprintf(b, "%s%s: %s\n", indent, labelOr(node), valueOrPlaceholder(node))
	case widget.KindSelect:
		fmt.Fprintf(b, "%s%s: %s\n", indent, labelOr(node), valueOrPlaceholder(node))
		for _, option := range node.Options {
			marker := "( )"
			if option == node.Value {
				marker = "(*)"
			}
			fmt.Fprintf(b, "%s  %s %s\n", indent, marker, option)
		}
	case widget.KindCheckbox:
		marker := "[ ]"
		if node.Checked {
			marker = "[x]"
		}
		fmt.Fprintf(b, "%s%s %s\n", indent, marker, labelOr(node))
	case widget.KindButton:
		fmt.Fprintf(b, "%s< %s >\n", indent, labelOr(node))
	case widget.KindError:
		if node.Value != "" {
			fmt.Fprintf(b, "%s! %s\n", indent, node.Value)
		}
	}
	if node.Help != "" {
		fmt.Fprintf(b, "%s  %s\n", indent, node.Help)
	}
}

func labelOr(node widget.Node) string {
	if strings.TrimSpace(node.Label) != "" {
		return node.Label
	}
	return node.ID
}

func valueOrPlaceholder(node widget.Node) string {
	if node.Value != "" {
		return node.Value
	}
	if node.Placeholder != "" {
		return "<" + node.Placeholder + ">"
	}
	return ""
}

// TextRenderer prints every field in review mode followed by the documents.
type TextRenderer struct {
	Format schema.Format
}

var _ render.Renderer = TextRenderer{}

func (TextRenderer) Name() string {
	return "text"
}

func (TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// RenderPage renders the review of every bound field and the export of the
// current snapshot.
func (r TextRenderer) RenderPage(ctx context.Context, h *host.Host) ([]byte, error) {
	if h == nil {
		return nil, ErrHostRequired
	}
	snapshot := h.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", snapshot.Schema.Title())
	for _, id := range snapshot.Schema.Keys() {
		pluginType, bound := snapshot.PluginType(id)
		if !bound {
			fmt.Fprintf(&b, "## %s (unbound)\n\n", id)
			continue
		}
		node, err := h.Render(ctx, id, field.ModeReview)
		if err != nil {
			return nil, fmt.Errorf("tui: review %q: %w", id, err)
		}
		fmt.Fprintf(&b, "## %s (%s)\n", id, pluginType)
		if err := PrintTree(&b, node); err != nil {
			return nil, err
		}
		b.WriteString("\n")
	}

	format := r.Format
	if format == "" {
		format = schema.FormatYAML
	}
	if err := snapshot.Export(&b, format); err != nil {
		return nil, fmt.Errorf("tui: export documents: %w", err)
	}
	return []byte(b.String()), nil
}
