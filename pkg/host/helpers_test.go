package host_test

import (
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/plugins"
)

func newRegistry() *field.Registry {
	return plugins.NewRegistry()
}
