package timepicker

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

// Conversion is the decoded view of one raw field value.
type Conversion struct {
	Input      string               `json:"input"`
	Field      string               `json:"field"`
	Value      string               `json:"value"`
	Kind       string               `json:"kind"`
	Valid      bool                 `json:"valid"`
	Components timevalue.Components `json:"components"`
	Hour24     int                  `json:"hour24"`
	Text       string               `json:"text"`
	Millis     int64                `json:"millis"`
	Layout     timevalue.Layout     `json:"layout"`
}

// Convert initializes a widget over raw with cfg. Field is what the backing
// field holds after construction: raw itself when recognized, the default
// selection otherwise. Value is the selection serialized in cfg's layout,
// as the next user edit would write it. Valid is false when a decoded hour
// falls outside the mode's selector.
func Convert(raw string, cfg widget.Config, opts ...widget.Option) Conversion {
	field := widget.NewStringField(raw)
	w := widget.New(field, append([]widget.Option{widget.WithConfig(cfg)}, opts...)...)
	cfg = w.Config()
	c := w.Components()
	_, kind := timevalue.Parse(raw, cfg.Mode, cfg.Separator)

	return Conversion{
		Input:      raw,
		Field:      field.Value(),
		Value:      timevalue.Encode(c, cfg.Layout),
		Kind:       kind.String(),
		Valid:      c.Valid(cfg.Mode),
		Components: c,
		Hour24:     c.Hour24(cfg.Mode),
		Text:       timevalue.Text(c, cfg.Mode, cfg.Separator, cfg.Seconds),
		Millis:     timevalue.Millis(c, cfg.Mode),
		Layout:     cfg.Layout,
	}
}

// ConfigFromQuery applies the option query parameters over base. Only
// present parameters override; a malformed boolean is an error.
func ConfigFromQuery(query url.Values, base widget.Config, catalog *i18n.Catalog) (widget.Config, error) {
	fns := []widget.OptionFn{func(c *widget.Config) { *c = base }}

	if query.Has(widget.OptionType) {
		fns = append(fns, widget.WithType(query.Get(widget.OptionType)))
	}
	if query.Has(widget.OptionSecond) {
		enabled, err := parseBool(query.Get(widget.OptionSecond))
		if err != nil {
			return widget.Config{}, fmt.Errorf("timepicker: invalid %s: %w", widget.OptionSecond, err)
		}
		fns = append(fns, widget.WithSeconds(enabled))
	}
	if query.Has(widget.OptionFormat) {
		fns = append(fns, widget.WithFormat(timevalue.ParseFormat(query.Get(widget.OptionFormat))))
	}
	if query.Has(widget.OptionSpliter) {
		fns = append(fns, widget.WithSeparator(query.Get(widget.OptionSpliter)))
	}
	if query.Has(widget.OptionShowUnits) {
		show, err := parseBool(query.Get(widget.OptionShowUnits))
		if err != nil {
			return widget.Config{}, fmt.Errorf("timepicker: invalid %s: %w", widget.OptionShowUnits, err)
		}
		fns = append(fns, widget.WithUnits(show))
	}
	if locale := strings.TrimSpace(query.Get("locale")); locale != "" {
		fns = append(fns, widget.WithCatalogLocale(catalog, locale))
	}
	return widget.NewConfig(fns...), nil
}

func parseBool(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true, nil
	}
	return strconv.ParseBool(raw)
}
