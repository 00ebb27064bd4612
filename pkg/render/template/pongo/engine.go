package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-timepicker/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
}

// WithBaseDir searches a directory on disk before any WithFS bundle, so
// files there shadow embedded templates of the same name.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension sets the suffix added to template names that lack it.
// Defaults to ".tpl".
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		cfg.extension = "." + strings.TrimPrefix(ext, ".")
	}
}

// Engine renders pongo2 templates with autoescaping on. Templates loaded
// by name are parsed once.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	mu     sync.RWMutex
	parsed map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

func New(options ...Option) (*Engine, error) {
	cfg := config{extension: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: a base dir or fs.FS is required")
	}

	loaders := make([]pongo2.TemplateLoader, 0, 2)
	if cfg.baseDir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: base dir %q: %w", cfg.baseDir, err)
		}
		loaders = append(loaders, local)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	return &Engine{
		set:    pongo2.NewSet("timepicker", loaders...),
		ext:    cfg.extension,
		parsed: map[string]*pongo2.Template{},
	}, nil
}

// RenderTemplate renders the named template, adding the configured
// extension when name has none.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.load(name)
	if err != nil {
		return "", err
	}
	return execute(tmpl, data, out)
}

// RenderString parses and renders content without caching it.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return execute(tmpl, data, out)
}

func (e *Engine) load(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl := e.parsed[name]
	e.mu.RUnlock()
	if tmpl != nil {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load %q: %w", name, err)
	}
	e.mu.Lock()
	e.parsed[name] = tmpl
	e.mu.Unlock()
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, data any, out []io.Writer) (string, error) {
	ctx, err := contextOf(data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("pongo: execute: %w", err)
	}
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func contextOf(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return nil, fmt.Errorf("pongo: template data must be a map, got %T", data)
	}
}
