package render

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/host"
)

// Renderer turns the current state of a host into a page: every field in
// its three modes plus the serialised documents.
type Renderer interface {
	Name() string
	ContentType() string
	RenderPage(ctx context.Context, h *host.Host) ([]byte, error)
}
