package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Source identifies where an OpenAPI document lives.
type Source interface {
	Kind() SourceKind
	Location() string
}

type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct{ path string }

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct{ name string }

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source naming a file inside the loader fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct{ raw string }

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL validates raw and returns a Source for it.
func SourceFromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("openapi: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// LoaderOptions configures how Load resolves sources. HTTP stays disabled
// unless a client is supplied or the fallback is enabled.
type LoaderOptions struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
}

type LoaderOption func(*LoaderOptions)

func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client capped at
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Load reads the raw document behind src.
func Load(ctx context.Context, src Source, options ...LoaderOption) ([]byte, error) {
	if src == nil {
		return nil, errors.New("openapi: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := NewLoaderOptions(options...)

	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("openapi: read file %q: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindFS:
		if opts.FileSystem == nil {
			return nil, errors.New("openapi: filesystem is not configured")
		}
		data, err := fs.ReadFile(opts.FileSystem, src.Location())
		if err != nil {
			return nil, fmt.Errorf("openapi: read fs %q: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindURL:
		return loadURL(ctx, src.Location(), opts)
	default:
		return nil, fmt.Errorf("openapi: unsupported source kind %q", src.Kind())
	}
}

func loadURL(ctx context.Context, location string, opts LoaderOptions) ([]byte, error) {
	client := opts.HTTPClient
	if client == nil {
		if !opts.AllowHTTPFallback {
			return nil, errors.New("openapi: HTTP loading is disabled")
		}
		client = &http.Client{Timeout: opts.RequestTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi: fetch %q: %w", location, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("openapi: fetch %q: unexpected status %d", location, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi: read body: %w", err)
	}
	return data, nil
}
