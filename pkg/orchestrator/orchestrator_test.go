package orchestrator

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

type captureRenderer struct {
	options render.RenderOptions
	widget  *widget.Widget
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, w *widget.Widget, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	r.widget = w
	return []byte(w.Value()), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestOrchestrator_DefaultHTMLRenderer(t *testing.T) {
	orch := New(WithIDGenerator(widget.NewCounter("tp", 0)))

	result, err := orch.Generate(context.Background(), Request{Value: "14:05"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("expected html content type, got %q", result.ContentType)
	}
	if !strings.Contains(string(result.Output), `<span id="tp1"`) {
		t.Fatalf("expected widget markup, got:\n%s", result.Output)
	}
	if result.Widget.Value() != "14:05" {
		t.Fatalf("expected 14:05, got %q", result.Widget.Value())
	}
}

func TestOrchestrator_OptionsMapAndTheme(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"tp-gap": "2px"},
		},
	}}
	capture := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(capture)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(capture.Name()),
		WithThemeSelector(selector),
	)
	result, err := orch.Generate(context.Background(), Request{
		Value:        "3723000",
		Options:      map[string]any{"type": "24", "second": true, "format": "number"},
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(result.Output) != "3723000" {
		t.Fatalf("expected 3723000, got %q", result.Output)
	}
	if capture.widget.Config().Mode != timevalue.Mode24 {
		t.Fatalf("expected 24h mode, got %q", capture.widget.Config().Mode)
	}
	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "dark"}) {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}
	cfg := capture.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.CSSVars["--tp-gap"] != "2px" {
		t.Fatalf("expected css var from tokens, got %+v", cfg.CSSVars)
	}
	if got := cfg.Partial(render.PartialWidget, ""); got == "" {
		t.Fatalf("expected fallback widget partial")
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	orch := New()
	if _, err := orch.Generate(context.Background(), Request{Renderer: "missing"}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
	if _, err := orch.Generate(nil, Request{}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}

func TestOrchestrator_FallsBackToFirstRegistered(t *testing.T) {
	capture := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(capture)

	orch := New(WithRegistry(registry))
	if _, err := orch.Generate(context.Background(), Request{Value: "09:00"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.widget == nil {
		t.Fatalf("expected capture renderer to be used")
	}
}
