package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/render"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-formfield/pkg/uischema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	theme            *theme.RendererConfig
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
	classes          ChromeClasses
	stylesheets      []string
	inlineStyles     bool
	logger           *slog.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponents replaces the default component registry.
func WithComponents(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithTheme applies an already resolved theme configuration.
func WithTheme(themeCfg *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.theme = themeCfg
	}
}

// WithThemeSelector resolves name and variant through selector when the
// renderer is built.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithChromeClasses appends custom classes to the page chrome.
func WithChromeClasses(classes ChromeClasses) Option {
	return func(cfg *config) {
		cfg.classes = classes
	}
}

// WithStylesheets links external stylesheets instead of inlining the
// embedded one.
func WithStylesheets(hrefs ...string) Option {
	return func(cfg *config) {
		cfg.stylesheets = append(cfg.stylesheets, hrefs...)
		cfg.inlineStyles = false
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer turns widget trees into HTML fragments and host snapshots into a
// preview page.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	components   *components.Registry
	theme        *theme.RendererConfig
	classes      ChromeClasses
	stylesheets  []string
	inlineStyles bool
	logger       *slog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		inlineStyles: true,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	themeCfg := cfg.theme
	if themeCfg == nil && cfg.selector != nil {
		selection, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: select theme: %w", err)
		}
		themeCfg = ThemeConfig(selection, DefaultThemeFallbacks())
	}

	return &Renderer{
		templates:    renderer,
		components:   cfg.components,
		theme:        themeCfg,
		classes:      cfg.classes,
		stylesheets:  cfg.stylesheets,
		inlineStyles: cfg.inlineStyles,
		logger:       cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderNode renders a widget tree to HTML. scope prefixes every DOM id.
func (r *Renderer) RenderNode(node widget.Node, scope string) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	descriptor, ok := r.components.Descriptor(node.Kind)
	if !ok {
		return "", fmt.Errorf("vanilla renderer: no component for widget kind %q", node.Kind)
	}

	var children bytes.Buffer
	for _, child := range node.Children {
		html, err := r.RenderNode(child, scope)
		if err != nil {
			return "", err
		}
		children.WriteString(html)
	}

	var buf bytes.Buffer
	err := descriptor.Renderer(&buf, node, components.ComponentData{
		Template:      r.templates,
		ThemePartials: r.partials(),
		Scope:         scope,
		Children:      children.String(),
	})
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render %s %q: %w", node.Kind, node.ID, err)
	}
	return buf.String(), nil
}

// RenderField renders one field of h in mode.
func (r *Renderer) RenderField(ctx context.Context, h *host.Host, id string, mode field.Mode) (string, error) {
	node, err := h.Render(ctx, id, mode)
	if err != nil {
		return "", err
	}
	return r.RenderNode(node, fieldScope(id, mode))
}

// RenderPage renders the preview page: the plugin menu, every field in the
// three modes side by side and dumps of the three documents.
func (r *Renderer) RenderPage(ctx context.Context, h *host.Host) ([]byte, error) {
	if h == nil {
		return nil, fmt.Errorf("vanilla renderer: host is nil")
	}
	snapshot := h.Snapshot()

	fields := make([]map[string]any, 0, len(snapshot.Schema.Keys()))
	for _, id := range snapshot.Schema.Keys() {
		pluginType, bound := snapshot.PluginType(id)
		if !bound {
			r.logger.Warn("skipping unbound field in preview", "field", id)
			continue
		}
		columns := make([]map[string]any, 0, len(field.Modes()))
		for _, mode := range field.Modes() {
			html, err := r.RenderField(ctx, h, id, mode)
			if err != nil {
				return nil, fmt.Errorf("vanilla renderer: field %q: %w", id, err)
			}
			columns = append(columns, map[string]any{
				"mode":  mode.String(),
				"label": modeLabel(mode),
				"html":  html,
			})
		}
		fields = append(fields, map[string]any{
			"id":      id,
			"dom_id":  components.DOMID("field", id),
			"plugin":  pluginType,
			"columns": columns,
		})
	}

	documents, err := documentDumps(snapshot)
	if err != nil {
		return nil, err
	}

	inlineCSS := ""
	if r.inlineStyles {
		inlineCSS = defaultStylesheet()
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":       snapshot.Schema.Title(),
		"menu":        menu(h.Registry()),
		"fields":      fields,
		"documents":   documents,
		"theme":       buildThemeContext(r.theme),
		"classes":     r.classes.context(),
		"stylesheets": r.stylesheets,
		"inline_css":  inlineCSS,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) partials() map[string]string {
	if r.theme == nil {
		return nil
	}
	return r.theme.Partials
}

func menu(registry *field.Registry) []map[string]any {
	if registry == nil {
		return nil
	}
	items := registry.Menu()
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"type":  item.Type,
			"label": item.Label,
			"icon":  uischema.SanitizeIcon(item.Icon.SVG),
		})
	}
	return out
}

func documentDumps(snapshot host.Snapshot) (map[string]any, error) {
	dump := func(name string, value any) (string, error) {
		payload, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", fmt.Errorf("vanilla renderer: encode %s: %w", name, err)
		}
		return string(payload), nil
	}
	schemaJSON, err := dump("schema", snapshot.Schema)
	if err != nil {
		return nil, err
	}
	uiJSON, err := dump("ui schema", snapshot.UISchema)
	if err != nil {
		return nil, err
	}
	dataJSON, err := dump("form data", snapshot.Data)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"schema":    schemaJSON,
		"ui_schema": uiJSON,
		"form_data": dataJSON,
	}, nil
}
