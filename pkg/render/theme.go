package render

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// PartialWidget is the theme template key for the widget markup.
const PartialWidget = "timepicker.widget"

// ThemeConfig is a resolved theme selection flattened for renderers.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Partials map[string]string
	Tokens   map[string]string
	// CSSVars maps "--token" names to token values.
	CSSVars  map[string]string
	AssetURL func(key string) string
}

// Partial returns the template registered for key, or fallback.
func (c *ThemeConfig) Partial(key, fallback string) string {
	if c == nil {
		return fallback
	}
	if value := strings.TrimSpace(c.Partials[key]); value != "" {
		return value
	}
	return fallback
}

// ResolveTheme selects name/variant and merges the manifest with the
// variant overrides. fallbacks seed partials the theme does not define.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*ThemeConfig, error) {
	if selector == nil {
		return nil, errors.New("render: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("render: theme %q not found", name)
	}

	cfg := &ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeStrings(nil, fallbacks),
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	prefix := ""
	files := map[string]string{}
	if manifest := selection.Manifest; manifest != nil {
		cfg.Partials = mergeStrings(cfg.Partials, manifest.Templates)
		cfg.Tokens = mergeStrings(cfg.Tokens, manifest.Tokens)
		prefix = manifest.Assets.Prefix
		files = mergeStrings(files, manifest.Assets.Files)

		if v, ok := manifest.Variants[selection.Variant]; ok {
			cfg.Partials = mergeStrings(cfg.Partials, v.Templates)
			cfg.Tokens = mergeStrings(cfg.Tokens, v.Tokens)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
			files = mergeStrings(files, v.Assets.Files)
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
	return cfg, nil
}

func mergeStrings(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
