// Package timepicker is the entry point of the time picker: a backing
// field holding "HH:MM[:SS]" text or milliseconds, decomposed into
// hour/minute/second selectors and an optional AM/PM meridiem.
package timepicker

import (
	"context"

	theme "github.com/goliatone/go-theme"

	tpcomponent "github.com/goliatone/go-timepicker/components/timepicker"
	"github.com/goliatone/go-timepicker/pkg/orchestrator"
	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

type (
	Config        = widget.Config
	Widget        = widget.Widget
	Field         = widget.Field
	Components    = timevalue.Components
	Mode          = timevalue.Mode
	Format        = timevalue.Format
	RenderOptions = render.RenderOptions
	Conversion    = tpcomponent.Conversion
)

const (
	Mode12       = timevalue.Mode12
	Mode24       = timevalue.Mode24
	Mode100      = timevalue.Mode100
	FormatText   = timevalue.FormatText
	FormatNumber = timevalue.FormatNumber
)

// New attaches a widget to field. See widget.New.
func New(field Field, opts ...widget.Option) *Widget {
	return widget.New(field, opts...)
}

// NewConfig builds a configuration from the defaults plus fns.
func NewConfig(fns ...widget.OptionFn) Config {
	return widget.NewConfig(fns...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderHTML renders the widget markup for value with the default HTML
// renderer.
func RenderHTML(ctx context.Context, value string, cfg Config, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	result, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Value:         value,
		Config:        cfg,
		RenderOptions: opts,
	})
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Convert decodes raw with cfg and reports the synchronized value with
// both encodings of the selection.
func Convert(raw string, cfg Config) Conversion {
	return tpcomponent.Convert(raw, cfg)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
