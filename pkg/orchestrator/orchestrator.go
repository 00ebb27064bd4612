package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/renderers/html"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits one.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves ThemeName/ThemeVariant of each request.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks seeds partials a theme does not define.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithCatalog resolves request locales.
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithIDGenerator shares one id source across every generated widget.
func WithIDGenerator(ids widget.IDGenerator) Option {
	return func(o *Orchestrator) {
		o.ids = ids
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator builds a widget for each request and renders it with the
// named renderer. The HTML renderer is registered by default.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	catalog         *i18n.Catalog
	ids             widget.IDGenerator
	logger          *slog.Logger
	initialiseErr   error
}

func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one widget to render.
type Request struct {
	// Value is the initial backing field value.
	Value string
	// Config is used as-is when Options is empty.
	Config widget.Config
	// Options are the host option names (type, second, format, spliter,
	// showUnits, i18n) and take precedence over Config.
	Options map[string]any
	// Field overrides the backing field; Value is ignored when set.
	Field    widget.Field
	Renderer string

	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Result carries the rendered output with the widget that produced it.
type Result struct {
	Widget      *widget.Widget
	Output      []byte
	ContentType string
}

// Generate builds the widget, resolves the theme and renders.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil && o.themeSelector != nil && req.ThemeName != "" {
		cfg, err := render.ResolveTheme(o.themeSelector, req.ThemeName, req.ThemeVariant, o.themeFallbacks)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: resolve theme: %w", err)
		}
		opts.Theme = cfg
	}

	w := o.Widget(req)
	output, err := renderer.Render(ctx, w, opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return Result{Widget: w, Output: output, ContentType: renderer.ContentType()}, nil
}

// Widget builds the request widget without rendering it.
func (o *Orchestrator) Widget(req Request) *widget.Widget {
	cfg := req.Config
	if len(req.Options) > 0 {
		cfg = widget.ConfigFromMap(req.Options, o.catalog)
	} else if cfg.Mode == "" {
		cfg = widget.DefaultConfig()
	}
	field := req.Field
	if field == nil {
		field = widget.NewStringField(req.Value)
	}
	return widget.New(field,
		widget.WithConfig(cfg),
		widget.WithIDGenerator(o.ids),
		widget.WithLogger(o.logger),
	)
}

// Registry exposes the renderer registry for additional registrations.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.ids == nil {
		o.ids = widget.NewCounter(widget.DefaultIDPrefix, uint64(time.Now().UnixMilli()))
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = map[string]string{render.PartialWidget: html.DefaultTemplate}
	}
}
