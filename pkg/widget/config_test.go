package widget

import (
	"strings"
	"testing"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
)

func TestDefaultConfig(t *testing.T) {
	cfg := NewConfig()
	if cfg.Mode != timevalue.Mode12 || cfg.Seconds || cfg.Format != timevalue.FormatText {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Separator != ":" || cfg.ShowUnits {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Labels != i18n.Default() {
		t.Fatalf("expected default labels, got %#v", cfg.Labels)
	}
}

func TestNewConfig_CoercesInvalidValues(t *testing.T) {
	cfg := NewConfig(WithMode(timevalue.Mode("99")), WithFormat(timevalue.Format("ms")), nil)
	if cfg.Mode != timevalue.Mode12 {
		t.Fatalf("expected invalid mode to fall back to 12, got %q", cfg.Mode)
	}
	if cfg.Format != timevalue.FormatText {
		t.Fatalf("expected invalid format to fall back to time, got %q", cfg.Format)
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{
		"type":      24,
		"second":    "true",
		"format":    "number",
		"spliter":   "-",
		"showUnits": true,
		"i18n":      "zh_CN",
	}, i18n.NewCatalog())

	if cfg.Mode != timevalue.Mode24 || !cfg.Seconds || cfg.Format != timevalue.FormatNumber {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.Separator != "-" || !cfg.ShowUnits {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.Labels.Hour != "小时" || cfg.Locale != "zh_CN" {
		t.Fatalf("expected zh_CN labels, got %#v", cfg.Labels)
	}
}

func TestConfigFromMap_LabelMapping(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{
		"type": "13",
		"i18n": map[string]string{"am": "a.m.", "pm": "p.m."},
	}, nil)

	if cfg.Mode != timevalue.Mode12 {
		t.Fatalf("expected fallback to 12, got %q", cfg.Mode)
	}
	if cfg.Labels.AM != "a.m." || cfg.Labels.Hour != "Hour(s)" {
		t.Fatalf("unexpected labels: %#v", cfg.Labels)
	}
}

func TestConfigFromMap_FalseSpliterHidesSeparator(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{"spliter": false}, nil)
	if cfg.Separator != "" {
		t.Fatalf("expected empty separator, got %q", cfg.Separator)
	}
}

func TestLoadConfig(t *testing.T) {
	doc := `
type: "100"
second: true
spliter: "h"
i18n:
  hour: Hours
`
	cfg, err := LoadConfig(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Mode != timevalue.Mode100 || !cfg.Seconds || cfg.Separator != "h" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.Labels.Hour != "Hours" || cfg.Labels.Minute != "Minute(s)" {
		t.Fatalf("unexpected labels: %#v", cfg.Labels)
	}

	empty, err := LoadConfig(strings.NewReader(""), nil)
	if err != nil {
		t.Fatalf("load empty config: %v", err)
	}
	if empty.Mode != timevalue.Mode12 {
		t.Fatalf("expected defaults for empty document, got %#v", empty)
	}

	if _, err := LoadConfig(strings.NewReader("type: [1"), nil); err == nil {
		t.Fatalf("expected decode error")
	}
}

type mapTranslator map[string]string

func (m mapTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	return m[key], nil
}

func TestWithTranslator(t *testing.T) {
	cfg := NewConfig(WithTranslator(mapTranslator{"second": "Sekunde(n)"}, "de", nil))
	if cfg.Labels.Second != "Sekunde(n)" || cfg.Labels.AM != "AM" {
		t.Fatalf("unexpected labels: %#v", cfg.Labels)
	}
	if cfg.Locale != "de" {
		t.Fatalf("expected locale de, got %q", cfg.Locale)
	}
}
