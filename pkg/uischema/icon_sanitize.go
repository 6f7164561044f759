package uischema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var shapeAttrs = []string{
	"d", "cx", "cy", "r", "rx", "ry", "x", "y", "x1", "y1", "x2", "y2", "points",
	"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "class",
}

// iconAttrs lists the SVG elements plugin icons may use and the attributes
// kept on each. The HTML tokenizer lowercases element and attribute names,
// so keys and attributes are lowercase too.
var iconAttrs = map[string][]string{
	"svg": {
		"xmlns", "viewbox", "width", "height", "fill", "stroke", "stroke-width",
		"stroke-linecap", "stroke-linejoin", "aria-hidden", "role", "focusable", "class",
	},
	"g":        {"id", "fill", "stroke", "class"},
	"defs":     {"id"},
	"clippath": {"id", "clippathunits"},
	"use":      {"href", "xlink:href", "clip-path"},
	"title":    nil,
	"desc":     nil,
	"path":     shapeAttrs,
	"circle":   shapeAttrs,
	"ellipse":  shapeAttrs,
	"rect":     shapeAttrs,
	"line":     shapeAttrs,
	"polyline": shapeAttrs,
	"polygon":  shapeAttrs,
}

var iconPolicy = sync.OnceValue(func() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	for element, attrs := range iconAttrs {
		policy.AllowElements(element)
		if len(attrs) > 0 {
			policy.AllowAttrs(attrs...).OnElements(element)
		}
	}
	return policy
})

// SanitizeIcon keeps only the SVG subset plugin menu icons need. Markup
// that sanitises to nothing, such as a bare <img>, returns "".
func SanitizeIcon(markup string) string {
	markup = strings.TrimSpace(markup)
	if markup == "" {
		return ""
	}
	return strings.TrimSpace(iconPolicy().Sanitize(markup))
}
