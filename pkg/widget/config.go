package widget

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
)

// Config is the full widget configuration: how values serialize plus the
// presentation flags the markup needs.
type Config struct {
	timevalue.Layout `yaml:",inline"`

	ShowUnits bool        `json:"showUnits" yaml:"showUnits"`
	Labels    i18n.Labels `json:"i18n" yaml:"-"`
	Locale    string      `json:"locale,omitempty" yaml:"-"`
}

// OptionFn mutates a Config under construction.
type OptionFn func(*Config)

// DefaultConfig mirrors the defaults of the option surface: 12-hour clock,
// no seconds, text output, ":" separator, no unit labels, English labels.
func DefaultConfig() Config {
	return Config{
		Layout: timevalue.Layout{
			Mode:      timevalue.Mode12,
			Format:    timevalue.FormatText,
			Separator: timevalue.DefaultSeparator,
		},
		Labels: i18n.Default(),
		Locale: i18n.DefaultLocale,
	}
}

// NewConfig applies fns over DefaultConfig and normalizes the result.
func NewConfig(fns ...OptionFn) Config {
	cfg := DefaultConfig()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&cfg)
	}
	return cfg.normalize()
}

func (c Config) normalize() Config {
	c.Mode = timevalue.ValidateMode(string(c.Mode))
	c.Format = timevalue.ParseFormat(string(c.Format))
	c.Labels = i18n.Default().Merge(c.Labels)
	return c
}

func WithMode(mode timevalue.Mode) OptionFn {
	return func(c *Config) {
		c.Mode = mode
	}
}

// WithType accepts the raw option token ("12", "24", "100").
func WithType(raw string) OptionFn {
	return func(c *Config) {
		c.Mode = timevalue.ValidateMode(raw)
	}
}

func WithSeconds(enabled bool) OptionFn {
	return func(c *Config) {
		c.Seconds = enabled
	}
}

func WithFormat(format timevalue.Format) OptionFn {
	return func(c *Config) {
		c.Format = format
	}
}

// WithSeparator sets the field separator. An empty separator hides the
// separator markup and serializes with ":".
func WithSeparator(sep string) OptionFn {
	return func(c *Config) {
		c.Separator = sep
	}
}

func WithUnits(show bool) OptionFn {
	return func(c *Config) {
		c.ShowUnits = show
	}
}

func WithLabels(labels i18n.Labels) OptionFn {
	return func(c *Config) {
		c.Labels = labels
		c.Locale = ""
	}
}

// WithLocale selects a built-in table by name. Unknown names fall back to
// the default table.
func WithLocale(name string) OptionFn {
	return WithCatalogLocale(nil, name)
}

// WithCatalogLocale selects a table from catalog by name.
func WithCatalogLocale(catalog *i18n.Catalog, name string) OptionFn {
	return func(c *Config) {
		c.Labels = catalog.Resolve(name)
		c.Locale = strings.TrimSpace(name)
	}
}

// WithTranslator translates labels through a host translator, keeping the
// current labels for keys it cannot resolve.
func WithTranslator(t i18n.Translator, locale string, onMissing i18n.MissingTranslationHandler) OptionFn {
	return func(c *Config) {
		c.Labels = i18n.LabelsFromTranslator(t, locale, i18n.Default().Merge(c.Labels), onMissing)
		c.Locale = strings.TrimSpace(locale)
	}
}

// Option names of the host option surface.
const (
	OptionType      = "type"
	OptionSecond    = "second"
	OptionFormat    = "format"
	OptionSpliter   = "spliter"
	OptionShowUnits = "showUnits"
	OptionI18N      = "i18n"
)

// ConfigFromMap reads the host option names from values. Invalid values
// are substituted with defaults, never rejected. catalog resolves string
// i18n options and may be nil.
func ConfigFromMap(values map[string]any, catalog *i18n.Catalog) Config {
	cfg := DefaultConfig()
	if len(values) == 0 {
		return cfg.normalize()
	}
	if raw, ok := values[OptionType]; ok {
		cfg.Mode = timevalue.ValidateMode(stringify(raw))
	}
	if raw, ok := values[OptionSecond]; ok {
		cfg.Seconds = truthy(raw)
	}
	if raw, ok := values[OptionFormat]; ok {
		cfg.Format = timevalue.ParseFormat(stringify(raw))
	}
	if raw, ok := values[OptionSpliter]; ok {
		if raw == nil || raw == false {
			cfg.Separator = ""
		} else {
			cfg.Separator = stringify(raw)
		}
	}
	if raw, ok := values[OptionShowUnits]; ok {
		cfg.ShowUnits = truthy(raw)
	}
	if raw, ok := values[OptionI18N]; ok {
		switch v := raw.(type) {
		case string:
			cfg.Labels = catalog.Resolve(v)
			cfg.Locale = v
		case map[string]any:
			cfg.Labels = i18n.LabelsFromMap(v)
			cfg.Locale = ""
		case map[string]string:
			m := make(map[string]any, len(v))
			for key, value := range v {
				m[key] = value
			}
			cfg.Labels = i18n.LabelsFromMap(m)
			cfg.Locale = ""
		case i18n.Labels:
			cfg.Labels = v
			cfg.Locale = ""
		}
	}
	return cfg.normalize()
}

// LoadConfig decodes a YAML (or JSON) document using the host option names.
func LoadConfig(r io.Reader, catalog *i18n.Catalog) (Config, error) {
	if r == nil {
		return Config{}, errors.New("widget: missing reader")
	}
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("widget: decode config: %w", err)
	}
	return ConfigFromMap(values, catalog), nil
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
