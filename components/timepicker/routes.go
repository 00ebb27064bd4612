package timepicker

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes are the patterns registered on a mux.
type Routes struct {
	Convert string
	Markup  string
}

// MountPath returns the conversion route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// RegisterRoutes registers the conversion and markup handlers under
// basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Routes, error) {
	if mux == nil {
		return Routes{}, fmt.Errorf("timepicker: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	routes := Routes{
		Convert: mountPath(basePath, opts.RoutePath),
		Markup:  mountPath(basePath, opts.MarkupPath),
	}
	if routes.Convert == routes.Markup {
		return Routes{}, fmt.Errorf("timepicker: conversion and markup routes collide at %q", routes.Convert)
	}
	mux.Handle(routes.Convert, HandlerWithOptions(opts))
	mux.Handle(routes.Markup, MarkupHandlerWithOptions(opts))
	return routes, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + routePath
}
