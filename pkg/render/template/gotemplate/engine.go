// Package gotemplate implements template.TemplateRenderer on a pongo2
// template set loaded from a directory or an fs.FS.
package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formfield/pkg/render/template"
)

var errNilEngine = errors.New("gotemplate: engine is nil")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	setName   string
	dir       string
	files     fs.FS
	extension string
	filters   map[string]pongo2.FilterFunction
	globals   map[string]any
}

// WithBaseDir loads templates from a directory on disk. It is consulted
// before any fs.FS given with WithFS.
func WithBaseDir(dir string) Option {
	return func(cfg *config) { cfg.dir = strings.TrimSpace(dir) }
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) { cfg.files = files }
}

// WithExtension changes the suffix appended to template names (".tmpl").
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		cfg.extension = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithFilters registers pongo2 filters at construction. Names that pongo2
// already knows are left alone.
func WithFilters(filters map[string]pongo2.FilterFunction) Option {
	return func(cfg *config) {
		for name, fn := range filters {
			if cfg.filters == nil {
				cfg.filters = make(map[string]pongo2.FilterFunction, len(filters))
			}
			cfg.filters[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds values every template can read.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			if cfg.globals == nil {
				cfg.globals = make(map[string]any, len(data))
			}
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithSetName names the pongo2 template set, which shows up in errors.
func WithSetName(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.setName = name
		}
	}
}

// Engine satisfies template.TemplateRenderer with a pongo2 template set.
// Parsed template files are cached by path.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
	ext   string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := config{setName: "formfield", extension: ".tmpl"}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	loaders, err := cfg.loaders()
	if err != nil {
		return nil, err
	}

	registerDefaultFilters()
	for name, fn := range cfg.filters {
		if name == "" || fn == nil || pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: register filter %q: %w", name, err)
		}
	}

	engine := &Engine{
		set:   pongo2.NewSet(cfg.setName, loaders...),
		cache: make(map[string]*pongo2.Template),
		ext:   cfg.extension,
	}
	if err := engine.GlobalContext(cfg.globals); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}
	return engine, nil
}

func (cfg config) loaders() ([]pongo2.TemplateLoader, error) {
	var loaders []pongo2.TemplateLoader
	if cfg.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, local)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: a template directory or fs.FS is required")
	}
	return loaders, nil
}

// Render executes name as inline content when it holds template tags and as
// a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the named template; the extension is optional.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}
	rendered, err := e.execute(tmpl, data, out)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", path, err)
	}
	return rendered, nil
}

// RenderString parses and executes content without caching it.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	rendered, err := e.execute(tmpl, data, out)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template string: %w", err)
	}
	return rendered, nil
}

// RegisterFilter adds fn as a pongo2 filter. pongo2 filters are process
// global, so an existing name is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the globals of every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errNilEngine
	}
	if data == nil {
		return nil
	}
	globals, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context, len(globals))
	}
	e.set.Globals.Update(globals)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", err
	}

	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}
