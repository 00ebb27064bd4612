package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

// Violation is an x-timepicker extension the binder would silently coerce.
type Violation struct {
	Schema   string `json:"schema"`
	Property string `json:"property"`
	Message  string `json:"message"`
}

func (v Violation) String() string {
	return v.Schema + "." + v.Property + " -> " + v.Message
}

// Lint parses raw and reports extension values that fall back to defaults.
func (b *Binder) Lint(ctx context.Context, raw []byte) ([]Violation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return Lint(doc), nil
}

// Lint checks every x-timepicker extension in doc.
func Lint(doc *openapi3.T) []Violation {
	var out []Violation
	for _, p := range Properties(doc) {
		value, ok := p.Extensions[ExtensionKey]
		if !ok {
			continue
		}
		report := func(format string, args ...any) {
			out = append(out, Violation{Schema: p.Schema, Property: p.Path, Message: fmt.Sprintf(format, args...)})
		}
		if p.Type != "" && p.Type != "string" && p.Type != "integer" && p.Type != "number" {
			report("unsupported property type %q", p.Type)
		}
		switch v := value.(type) {
		case bool:
			if !v {
				report("extension is false; remove it instead")
			}
		case map[string]any:
			lintOptions(v, report)
		default:
			report("extension must be an object or true, got %T", value)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Schema == out[j].Schema {
			return out[i].Property < out[j].Property
		}
		return out[i].Schema < out[j].Schema
	})
	return out
}

func lintOptions(values map[string]any, report func(string, ...any)) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := values[key]
		switch key {
		case widget.OptionType:
			raw := strings.TrimSpace(stringify(value))
			if string(timevalue.ValidateMode(raw)) != raw {
				report("type %q is not one of 12, 24, 100", raw)
			}
		case widget.OptionFormat:
			raw := strings.ToLower(strings.TrimSpace(stringify(value)))
			if raw != string(timevalue.FormatText) && raw != string(timevalue.FormatNumber) {
				report("format %q is not one of time, number", raw)
			}
		case widget.OptionSecond, widget.OptionShowUnits:
			if _, ok := value.(bool); !ok {
				report("%s must be a boolean, got %T", key, value)
			}
		case widget.OptionSpliter:
			switch v := value.(type) {
			case nil, string:
			case bool:
				if v {
					report("spliter true is not a separator")
				}
			default:
				report("spliter must be a string, got %T", value)
			}
		case widget.OptionI18N:
			switch v := value.(type) {
			case string:
			case map[string]any:
				labels := make([]string, 0, len(v))
				for label := range v {
					labels = append(labels, label)
				}
				sort.Strings(labels)
				for _, label := range labels {
					if !isLabelKey(label) {
						report("unknown i18n label %q", label)
					}
				}
			default:
				report("i18n must be a locale name or label map, got %T", value)
			}
		default:
			report("unknown option %q", key)
		}
	}
}

func isLabelKey(key string) bool {
	for _, known := range i18n.Keys {
		if key == known {
			return true
		}
	}
	return false
}
