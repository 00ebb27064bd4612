package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

type stubDriver struct {
	selectIdx    []int
	selectErr    error
	prompts      []SelectConfig
	infoMessages []string
	selectPos    int
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg)
	if s.selectErr != nil {
		return -1, s.selectErr
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newWidget(value string, fns ...widget.OptionFn) (*widget.Widget, *widget.StringField) {
	field := widget.NewStringField(value)
	w := widget.New(field,
		widget.WithConfigOptions(fns...),
		widget.WithIDGenerator(widget.NewCounter("tp", 0)),
	)
	return w, field
}

func TestRenderer_TwelveHourFlow(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1, 7, 30}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	w, field := newWidget("")

	out, err := r.Render(context.Background(), w, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "19:30" {
		t.Fatalf("expected 19:30, got %q", out)
	}
	if field.Value() != "19:30" {
		t.Fatalf("expected field to hold 19:30, got %q", field.Value())
	}

	var messages []string
	for _, p := range driver.prompts {
		messages = append(messages, p.Message)
	}
	if diff := cmp.Diff([]string{"AM/PM", "Hour(s)", "Minute(s)"}, messages); diff != "" {
		t.Fatalf("prompt mismatch (-want +got):\n%s", diff)
	}
	if len(driver.prompts[1].Options) != 12 {
		t.Fatalf("expected 12 hour options, got %d", len(driver.prompts[1].Options))
	}
	if diff := cmp.Diff([]string{"19:30"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_SecondsJSONOutput(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{23, 59, 58}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatJSON))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	w, _ := newWidget("08:15:10",
		widget.WithMode(timevalue.Mode24),
		widget.WithSeconds(true),
	)

	if got := driver.prompts; len(got) != 0 {
		t.Fatalf("expected no prompts before render, got %d", len(got))
	}
	out, err := r.Render(context.Background(), w, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(driver.prompts) != 3 {
		t.Fatalf("expected 3 prompts without meridiem, got %d", len(driver.prompts))
	}
	if driver.prompts[0].DefaultIndex != 8 {
		t.Fatalf("expected hour default index 8, got %d", driver.prompts[0].DefaultIndex)
	}

	var result jsonResult
	if err := json.Unmarshal(out, &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	expected := jsonResult{
		ID:         w.ID(),
		Value:      "23:59:58",
		Components: timevalue.Components{Hour: 23, Minute: 59, Second: 58},
		Hour24:     23,
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("expected json content type, got %q", r.ContentType())
	}
}

func TestRenderer_UnknownAnswerKeepsSelection(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{-1, 5}}
	r, _ := New(WithPromptDriver(driver))
	w, _ := newWidget("10:20", widget.WithMode(timevalue.Mode24))

	out, err := r.Render(context.Background(), w, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "10:05" {
		t.Fatalf("expected 10:05, got %q", out)
	}
}

func TestRenderer_Aborted(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	r, _ := New(WithPromptDriver(driver))
	w, field := newWidget("10:20", widget.WithMode(timevalue.Mode24))

	_, err := r.Render(context.Background(), w, render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if field.Value() != "10:20" {
		t.Fatalf("expected field to keep 10:20, got %q", field.Value())
	}
}

func TestRenderer_Preconditions(t *testing.T) {
	r, _ := New(WithPromptDriver(&stubDriver{}))
	if _, err := r.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil widget")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w, _ := newWidget("")
	if _, err := r.Render(ctx, w, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
