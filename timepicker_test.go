package timepicker

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-timepicker/pkg/orchestrator"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

func TestRenderHTML(t *testing.T) {
	cfg := NewConfig(widget.WithMode(Mode24), widget.WithSeconds(true))
	out, err := RenderHTML(context.Background(), "07:08:09", cfg, RenderOptions{Name: "at"},
		orchestrator.WithIDGenerator(widget.NewCounter("tp", 0)),
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, fragment := range []string{`name="at" value="07:08:09"`, `id="tp1"`, `<option value="09" selected="selected">09</option>`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected markup to contain %q, got:\n%s", fragment, html)
		}
	}
}

func TestConvert(t *testing.T) {
	got := Convert("25200000", NewConfig(widget.WithFormat(FormatNumber)))
	if got.Value != "25200000" || got.Text != "07:00" || got.Hour24 != 7 {
		t.Fatalf("unexpected conversion: %+v", got)
	}
}

func TestNewSyncsField(t *testing.T) {
	field := widget.NewStringField("9:5")
	w := New(field, widget.WithConfigOptions(widget.WithMode(Mode24)))
	if field.Value() != "00:00" || w.Value() != "00:00" {
		t.Fatalf("expected unparseable value to re-sync as 00:00, got %q", field.Value())
	}
}

func TestEmbeddedAssets(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/timepicker.tmpl"); err != nil {
		t.Fatalf("expected embedded template: %v", err)
	}
	data, err := fs.ReadFile(RuntimeAssetsFS(), "timepicker.js")
	if err != nil {
		t.Fatalf("expected runtime bundle to be readable: %v", err)
	}
	if !strings.Contains(string(data), "data-timepicker-input") {
		t.Fatalf("expected runtime to bind rendered widgets")
	}
}
