package formfield

import (
	"io/fs"

	vanilla "github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML component templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the stylesheet used by the HTML preview.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
