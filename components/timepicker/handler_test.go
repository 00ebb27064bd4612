package timepicker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

func decodeConversion(t *testing.T, rec *httptest.ResponseRecorder) Conversion {
	t.Helper()
	var payload Conversion
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestHandler_ConvertsTextValue(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=13:45&type=12", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	got := decodeConversion(t, rec)
	expected := Conversion{
		Input:      "13:45",
		Field:      "13:45",
		Value:      "13:45",
		Kind:       timevalue.KindText.String(),
		Valid:      true,
		Components: timevalue.Components{Hour: 1, Minute: 45, Meridiem: timevalue.PM},
		Hour24:     13,
		Text:       "13:45",
		Millis:     49500000,
		Layout: timevalue.Layout{
			Mode:      timevalue.Mode12,
			Format:    timevalue.FormatText,
			Separator: ":",
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("conversion mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_NumberFormatWithSeconds(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=3723000&type=24&second=true&format=number", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	got := decodeConversion(t, rec)
	if got.Value != "3723000" {
		t.Fatalf("expected value 3723000, got %q", got.Value)
	}
	if got.Text != "01:02:03" {
		t.Fatalf("expected text 01:02:03, got %q", got.Text)
	}
	if got.Kind != timevalue.KindNumber.String() {
		t.Fatalf("expected number kind, got %q", got.Kind)
	}
}

func TestHandler_RecognizedValueKeepsField(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=12:30:15&type=24&format=number", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	got := decodeConversion(t, rec)
	if got.Field != "12:30:15" {
		t.Fatalf("expected field to keep 12:30:15, got %q", got.Field)
	}
	if got.Value != "45015000" {
		t.Fatalf("expected value 45015000, got %q", got.Value)
	}
}

func TestHandler_ReportsHourOverflow(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=90000000&type=24", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	got := decodeConversion(t, rec)
	if got.Valid {
		t.Fatalf("expected 25h to be reported invalid, got %+v", got)
	}
	if got.Components.Hour != 25 || got.Field != "90000000" {
		t.Fatalf("expected hour 25 with field untouched, got %+v", got)
	}
}

func TestHandler_CustomSeparatorAndFallback(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=garbage&type=24&spliter=.", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	got := decodeConversion(t, rec)
	if got.Value != "00.00" || got.Field != "00.00" {
		t.Fatalf("expected 00.00 written to the field, got value %q field %q", got.Value, got.Field)
	}
	if got.Kind != timevalue.KindNone.String() {
		t.Fatalf("expected none kind, got %q", got.Kind)
	}
}

func TestHandler_InvalidBooleanIsBadRequest(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=10:00&second=maybe", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := Handler(WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized}
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker?value=10:00", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodPost, "/api/timepicker", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("expected Allow header, got %q", allow)
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	h := Handler()
	req := httptest.NewRequest(http.MethodHead, "/api/timepicker?value=10:00", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestMarkupHandler_RendersLocalizedWidget(t *testing.T) {
	h := MarkupHandler(WithIDGenerator(widget.NewCounter("tp", 0)))
	req := httptest.NewRequest(http.MethodGet, "/api/timepicker/markup?value=08:30&locale=zh_CN&showUnits=true&name=start", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content-type, got %q", ct)
	}
	body := rec.Body.String()
	for _, fragment := range []string{`id="tp1"`, `name="start" value="08:30"`, "上午", "小时"} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected markup to contain %q, got:\n%s", fragment, body)
		}
	}
}

func TestConfigFromQuery_UsesDefaultsAndCatalog(t *testing.T) {
	catalog := i18n.NewCatalog()
	if err := catalog.Register("fr", i18n.Labels{Hour: "Heure"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	base := widget.NewConfig(widget.WithMode(timevalue.Mode24), widget.WithSeconds(true))

	cfg, err := ConfigFromQuery(map[string][]string{"locale": {"fr"}}, base, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != timevalue.Mode24 || !cfg.Seconds {
		t.Fatalf("expected defaults to be preserved, got %+v", cfg.Layout)
	}
	if cfg.Labels.Hour != "Heure" || cfg.Labels.AM != "AM" {
		t.Fatalf("expected catalog labels, got %+v", cfg.Labels)
	}

	cfg, err = ConfigFromQuery(map[string][]string{"type": {"7"}, "spliter": {""}}, base, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != timevalue.Mode12 {
		t.Fatalf("expected invalid type to coerce to 12, got %q", cfg.Mode)
	}
	if cfg.Separator != "" {
		t.Fatalf("expected empty separator, got %q", cfg.Separator)
	}
}
