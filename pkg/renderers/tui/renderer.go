package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

// Name is the registry name of the terminal renderer.
const Name = "tui"

const defaultPageSize = 12

// Renderer implements render.Renderer for terminal sessions. Each answer
// is fed through Widget.Handle, so the backing field is written after
// every prompt exactly as a browser change event would.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	pageSize     int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, plain value
// output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatValue,
		pageSize:     defaultPageSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Render prompts for the meridiem (12-hour mode only), hour, minute and,
// when shown, second. It returns the serialized value in the configured
// output format.
func (r *Renderer) Render(ctx context.Context, w *widget.Widget, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.New("tui: widget is nil")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	view := w.View()
	if view.Meridiem.Visible {
		if err := r.promptMeridiem(ctx, w, view.Meridiem); err != nil {
			return nil, err
		}
	}
	for _, sel := range view.Selectors() {
		if err := r.promptSelector(ctx, w, sel); err != nil {
			return nil, err
		}
	}

	value := w.Value()
	if err := r.driver.Info(ctx, r.theme.InfoPrefix+value); err != nil {
		return nil, fmt.Errorf("tui: info: %w", err)
	}
	return r.serialize(w)
}

func (r *Renderer) promptMeridiem(ctx context.Context, w *widget.Widget, view widget.MeridiemView) error {
	values := []string{timevalue.AM.String(), timevalue.PM.String()}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + view.AMLabel + "/" + view.PMLabel,
		Options:      []string{view.AMLabel, view.PMLabel},
		DefaultIndex: indexOf(values, view.Selected),
	})
	if err != nil {
		return err
	}
	w.Handle(widget.Event{Type: widget.EventChange, Control: widget.ControlMeridiem, Value: pick(values, idx)})
	return nil
}

func (r *Renderer) promptSelector(ctx context.Context, w *widget.Widget, sel widget.Selector) error {
	message := sel.Unit
	if strings.TrimSpace(message) == "" {
		message = string(sel.Control)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + message,
		Options:      sel.Options,
		DefaultIndex: indexOf(sel.Options, sel.Selected),
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}
	w.Handle(widget.Event{Type: widget.EventChange, Control: sel.Control, Value: pick(sel.Options, idx)})
	return nil
}

type jsonResult struct {
	ID         string               `json:"id"`
	Value      string               `json:"value"`
	Components timevalue.Components `json:"components"`
	Hour24     int                  `json:"hour24"`
}

func (r *Renderer) serialize(w *widget.Widget) ([]byte, error) {
	if r.outputFormat != OutputFormatJSON {
		return []byte(w.Value()), nil
	}
	components := w.Components()
	out, err := json.Marshal(jsonResult{
		ID:         w.ID(),
		Value:      w.Value(),
		Components: components,
		Hour24:     components.Hour24(w.Config().Mode),
	})
	if err != nil {
		return nil, fmt.Errorf("tui: encode json: %w", err)
	}
	return out, nil
}

func pick(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return ""
	}
	return options[idx]
}
