package timepicker

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/renderers/html"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler builds the conversion handler with default options plus any
// overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the conversion handler from a pre-constructed
// Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	logger := loggerOf(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}
		query := r.URL.Query()
		cfg, err := ConfigFromQuery(query, opts.Defaults, opts.Catalog)
		if err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		result := Convert(query.Get(opts.ValueParam), cfg,
			widget.WithIDGenerator(widget.NewCounter(widget.DefaultIDPrefix, 0)),
			widget.WithLogger(logger),
		)
		writeJSON(w, r, http.StatusOK, result)
	})
}

// MarkupHandler builds the markup handler with default options plus any
// overrides.
func MarkupHandler(fns ...OptionFn) http.Handler {
	return MarkupHandlerWithOptions(NewOptions(fns...))
}

func MarkupHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	logger := loggerOf(opts)
	ids := opts.IDs
	if ids == nil {
		ids = widget.NewCounter(widget.DefaultIDPrefix, uint64(time.Now().UnixMilli()))
	}

	var (
		once     sync.Once
		renderer = opts.Renderer
		initErr  error
	)
	resolve := func() (render.Renderer, error) {
		once.Do(func() {
			if renderer != nil {
				return
			}
			renderer, initErr = html.New()
		})
		return renderer, initErr
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}
		rd, err := resolve()
		if err != nil {
			logger.Error("timepicker: markup renderer", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		query := r.URL.Query()
		cfg, err := ConfigFromQuery(query, opts.Defaults, opts.Catalog)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		tp := widget.New(widget.NewStringField(query.Get(opts.ValueParam)),
			widget.WithConfig(cfg),
			widget.WithIDGenerator(ids),
			widget.WithLogger(logger),
		)
		out, err := rd.Render(r.Context(), tp, render.RenderOptions{
			Name:  query.Get("name"),
			Theme: opts.Theme,
		})
		if err != nil {
			logger.Error("timepicker: render markup", "id", tp.ID(), "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", rd.ContentType())
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(out)
	})
}

func admit(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if opts.Guard != nil {
		if err := opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func loggerOf(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
