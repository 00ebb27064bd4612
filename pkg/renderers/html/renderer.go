package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-timepicker/pkg/render"
	rendertemplate "github.com/goliatone/go-timepicker/pkg/render/template"
	"github.com/goliatone/go-timepicker/pkg/render/template/pongo"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// DefaultTemplate or every theme partial that is used.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir searches a directory on disk before the template
// bundle. Files there override bundled templates with the same path.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
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

// WithSanitizer replaces the strict label policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer emits the widget markup: a hidden backing input followed by the
// meridiem radios, selects, separators and unit labels.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = labelSanitizer()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := pongo.New(
			pongo.WithBaseDir(cfg.templatesDir),
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		templates = engine
	}
	return &Renderer{templates: templates, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, w *widget.Widget, opts render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if w == nil {
		return nil, errors.New("html renderer: widget is nil")
	}
	if r.templates == nil {
		return nil, errors.New("html renderer: template renderer is nil")
	}

	name := opts.Theme.Partial(render.PartialWidget, DefaultTemplate)
	result, err := r.templates.RenderTemplate(name, r.templateData(w, opts))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) templateData(w *widget.Widget, opts render.RenderOptions) map[string]any {
	view := w.View()
	cfg := w.Config()

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = view.ID
	}

	selectors := []widget.Selector{view.Hour, view.Minute, view.Second}
	items := make([]map[string]any, 0, len(selectors))
	for idx, sel := range selectors {
		item := map[string]any{
			"control":      string(sel.Control),
			"options":      sel.Options,
			"selected":     sel.Selected,
			"visible":      sel.Visible,
			"unit":         sanitizeText(r.policy, sel.Unit),
			"unit_visible": sel.UnitVisible,
			"separator":    idx > 0,
		}
		if idx > 0 {
			item["separator_visible"] = view.SeparatorVisible[idx-1]
		}
		items = append(items, item)
	}

	return map[string]any{
		"id":      view.ID,
		"name":    name,
		"value":   view.Value,
		"mode":    string(view.Mode),
		"format":  string(cfg.Format),
		"seconds": cfg.Seconds,
		"spliter": timevalue.NormalizeSeparator(cfg.Separator),
		"meridiem": map[string]any{
			"visible":  view.Meridiem.Visible,
			"selected": view.Meridiem.Selected,
			"am":       sanitizeText(r.policy, view.Meridiem.AMLabel),
			"pm":       sanitizeText(r.policy, view.Meridiem.PMLabel),
		},
		"selectors":  items,
		"separator":  sanitizeText(r.policy, view.Separator),
		"attributes": attributeList(opts.Attributes),
		"style":      cssVars(opts.Theme),
	}
}

func attributeList(attrs map[string]string) []map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if validAttrName(key) {
			keys = append(keys, strings.TrimSpace(key))
		}
	}
	sort.Strings(keys)
	out := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, map[string]any{"key": key, "value": attrs[key]})
	}
	return out
}

func cssVars(theme *render.ThemeConfig) string {
	if theme == nil || len(theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(theme.CSSVars))
	for key, value := range theme.CSSVars {
		if validAttrName(strings.TrimPrefix(key, "--")) && validCSSValue(value) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+theme.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
