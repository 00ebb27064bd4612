package timepicker

import (
	"log/slog"
	"net/http"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

const (
	defaultRoutePath  = "/api/timepicker"
	defaultMarkupPath = "/api/timepicker/markup"
	defaultValueParam = "value"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath  string
	MarkupPath string
	ValueParam string

	// Defaults is the configuration query parameters are applied over.
	Defaults widget.Config
	// Catalog resolves the locale parameter. Nil uses the built-in tables.
	Catalog *i18n.Catalog
	// Renderer renders the markup route. Nil uses the HTML renderer.
	Renderer render.Renderer
	// Theme is passed to the markup renderer.
	Theme *render.ThemeConfig
	IDs   widget.IDGenerator

	Guard  GuardFunc
	Logger *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:  defaultRoutePath,
		MarkupPath: defaultMarkupPath,
		ValueParam: defaultValueParam,
		Defaults:   widget.DefaultConfig(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}

	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.MarkupPath == "" {
		opts.MarkupPath = defaultMarkupPath
	}
	if opts.ValueParam == "" {
		opts.ValueParam = defaultValueParam
	}
	if opts.Defaults.Mode == "" {
		opts.Defaults = widget.DefaultConfig()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		o.RoutePath = path
	}
}

func WithMarkupPath(path string) OptionFn {
	return func(o *Options) {
		o.MarkupPath = path
	}
}

func WithValueParam(name string) OptionFn {
	return func(o *Options) {
		o.ValueParam = name
	}
}

func WithDefaults(cfg widget.Config) OptionFn {
	return func(o *Options) {
		o.Defaults = cfg
	}
}

func WithCatalog(catalog *i18n.Catalog) OptionFn {
	return func(o *Options) {
		o.Catalog = catalog
	}
}

func WithRenderer(renderer render.Renderer) OptionFn {
	return func(o *Options) {
		o.Renderer = renderer
	}
}

func WithTheme(theme *render.ThemeConfig) OptionFn {
	return func(o *Options) {
		o.Theme = theme
	}
}

// WithIDGenerator shares an id source across markup requests.
func WithIDGenerator(ids widget.IDGenerator) OptionFn {
	return func(o *Options) {
		o.IDs = ids
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		o.Guard = guard
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}
