package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

const maxDepth = 8

// Property is a schema property offered to the registry.
type Property struct {
	Schema      string
	Path        string
	Type        string
	Format      string
	Description string
	Default     any
	Extensions  map[string]any
}

// Binding is a property resolved to a time input.
type Binding struct {
	Schema   string        `json:"schema"`
	Property string        `json:"property"`
	Rule     string        `json:"rule"`
	Config   widget.Config `json:"config"`
	// Default is the schema default rendered as a field value.
	Default string `json:"default,omitempty"`
}

// Widget creates a widget over the binding default.
func (b Binding) Widget(opts ...widget.Option) *widget.Widget {
	all := append([]widget.Option{widget.WithConfig(b.Config)}, opts...)
	return widget.New(widget.NewStringField(b.Default), all...)
}

type Option func(*Binder)

func WithRegistry(reg *Registry) Option {
	return func(b *Binder) {
		if reg != nil {
			b.registry = reg
		}
	}
}

// WithCatalog resolves string i18n entries of x-timepicker maps.
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(b *Binder) {
		b.catalog = catalog
	}
}

// WithValidation validates the document before binding.
func WithValidation(enabled bool) Option {
	return func(b *Binder) {
		b.validate = enabled
	}
}

// Binder turns OpenAPI documents into bindings.
type Binder struct {
	registry *Registry
	catalog  *i18n.Catalog
	validate bool
}

func NewBinder(options ...Option) *Binder {
	b := &Binder{registry: NewRegistry()}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// BindSource loads src and binds it.
func (b *Binder) BindSource(ctx context.Context, src Source, options ...LoaderOption) ([]Binding, error) {
	raw, err := Load(ctx, src, options...)
	if err != nil {
		return nil, err
	}
	return b.Bind(ctx, raw)
}

// Bind parses raw (JSON or YAML) and returns the bindings sorted by schema
// and property path.
func (b *Binder) Bind(ctx context.Context, raw []byte) ([]Binding, error) {
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
	if b.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	props := Properties(doc)
	bindings := make([]Binding, 0, len(props))
	for _, p := range props {
		name, ok := b.registry.Resolve(p)
		if !ok {
			continue
		}
		bindings = append(bindings, Binding{
			Schema:   p.Schema,
			Property: p.Path,
			Rule:     name,
			Config:   b.configFor(name, p),
			Default:  stringify(p.Default),
		})
	}
	return bindings, nil
}

func (b *Binder) configFor(rule string, p Property) widget.Config {
	if rule == RuleExtension {
		if values, ok := p.Extensions[ExtensionKey].(map[string]any); ok {
			return widget.ConfigFromMap(values, b.catalog)
		}
	}
	return formatConfig(p)
}

// formatConfig follows the OpenAPI partial-time shape: 24-hour with seconds.
func formatConfig(p Property) widget.Config {
	fns := []widget.OptionFn{widget.WithMode(timevalue.Mode24), widget.WithSeconds(true)}
	if strings.EqualFold(strings.TrimSpace(p.Format), "time-ms") {
		fns = append(fns, widget.WithFormat(timevalue.FormatNumber))
	}
	return widget.NewConfig(fns...)
}

// Properties flattens every property reachable from components.schemas,
// including nested objects and allOf members, in a stable order.
func Properties(doc *openapi3.T) []Property {
	if doc == nil || doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Property
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		out = collect(out, name, "", ref.Value, 0)
	}
	return out
}

func collect(out []Property, schemaName, prefix string, schema *openapi3.Schema, depth int) []Property {
	if schema == nil || depth > maxDepth {
		return out
	}
	for _, member := range schema.AllOf {
		if member != nil {
			out = collect(out, schemaName, prefix, member.Value, depth+1)
		}
	}

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ref := schema.Properties[key]
		if ref == nil || ref.Value == nil {
			continue
		}
		value := ref.Value
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		out = append(out, Property{
			Schema:      schemaName,
			Path:        path,
			Type:        firstType(value.Type),
			Format:      value.Format,
			Description: value.Description,
			Default:     value.Default,
			Extensions:  value.Extensions,
		})
		if len(value.Properties) > 0 || len(value.AllOf) > 0 {
			out = collect(out, schemaName, path, value, depth+1)
		}
	}
	return out
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
