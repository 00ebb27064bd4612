package widget

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-timepicker/pkg/timevalue"
)

// State is the lifecycle position of a widget.
type State int

const (
	StateUninitialized State = iota
	StateSynchronized
)

func (s State) String() string {
	if s == StateSynchronized {
		return "synchronized"
	}
	return "uninitialized"
}

// Option configures widget construction.
type Option func(*settings)

type settings struct {
	config Config
	ids    IDGenerator
	logger *slog.Logger
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = cfg.normalize()
	}
}

// WithConfigOptions applies config option functions on top of the current
// configuration.
func WithConfigOptions(fns ...OptionFn) Option {
	return func(s *settings) {
		for _, fn := range fns {
			if fn != nil {
				fn(&s.config)
			}
		}
		s.config = s.config.normalize()
	}
}

// WithIDGenerator injects the id source. Widgets rendered into the same
// document must share one generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *settings) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// Widget keeps a selection and a backing field in sync. It is not safe for
// concurrent use; every host notification is handled synchronously.
type Widget struct {
	id     string
	cfg    Config
	field  Field
	sel    timevalue.Components
	state  State
	logger *slog.Logger
}

// New decodes the field value into a selection, leaving the widget
// synchronized. The field is written only when its value is not
// recognized; the default selection is serialized in that case. A nil
// field is replaced with an empty StringField.
func New(field Field, opts ...Option) *Widget {
	s := settings{config: DefaultConfig().normalize()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.ids == nil {
		s.ids = NewCounter(DefaultIDPrefix, uint64(time.Now().UnixMilli()))
	}
	if s.logger == nil {
		s.logger = slog.New(discardHandler{})
	}
	if field == nil {
		field = NewStringField("")
	}

	w := &Widget{
		id:     s.ids.NextID(),
		cfg:    s.config,
		field:  field,
		sel:    timevalue.Zero(s.config.Mode),
		logger: s.logger,
	}
	w.init()
	return w
}

func (w *Widget) init() {
	raw := w.field.Value()
	if _, kind := timevalue.Parse(raw, w.cfg.Mode, w.cfg.Separator); kind == timevalue.KindNone {
		w.logger.Debug("timepicker: unrecognized value, using selection", "id", w.id, "raw", raw)
		w.Sync()
		return
	}
	// A recognized value is left as stored until the selection changes.
	w.sel = timevalue.Decode(raw, w.cfg.Mode, w.cfg.Separator, w.sel)
	w.state = StateSynchronized
}

func (w *Widget) ID() string { return w.id }

func (w *Widget) Config() Config { return w.cfg }

func (w *Widget) State() State { return w.state }

// Components returns a copy of the current selection.
func (w *Widget) Components() timevalue.Components { return w.sel }

// Value returns the serialized value last written to the field.
func (w *Widget) Value() string { return w.field.Value() }

// Sync encodes the selection and writes it to the backing field.
func (w *Widget) Sync() string {
	value := timevalue.Encode(w.sel, w.cfg.Layout)
	w.field.SetValue(value)
	w.state = StateSynchronized
	w.logger.Debug("timepicker: sync", "id", w.id, "value", value)
	return value
}

// SetHour selects hour when it lies in the mode domain, then syncs.
func (w *Widget) SetHour(hour int) string {
	if w.cfg.Mode.ValidHour(hour) {
		w.sel.Hour = hour
	}
	return w.Sync()
}

func (w *Widget) SetMinute(minute int) string {
	if timevalue.ValidSexagesimal(minute) {
		w.sel.Minute = minute
	}
	return w.Sync()
}

func (w *Widget) SetSecond(second int) string {
	if timevalue.ValidSexagesimal(second) {
		w.sel.Second = second
	}
	return w.Sync()
}

// SetMeridiem is ignored outside the 12-hour mode.
func (w *Widget) SetMeridiem(m timevalue.Meridiem) string {
	if w.cfg.Mode.HasMeridiem() && w.cfg.Mode.ValidMeridiem(m) {
		w.sel.Meridiem = m
	}
	return w.Sync()
}

// Select applies every in-domain field of c, then syncs once.
func (w *Widget) Select(c timevalue.Components) string {
	mode := w.cfg.Mode
	if mode.ValidHour(c.Hour) {
		w.sel.Hour = c.Hour
	}
	if timevalue.ValidSexagesimal(c.Minute) {
		w.sel.Minute = c.Minute
	}
	if timevalue.ValidSexagesimal(c.Second) {
		w.sel.Second = c.Second
	}
	if mode.HasMeridiem() && mode.ValidMeridiem(c.Meridiem) {
		w.sel.Meridiem = c.Meridiem
	}
	return w.Sync()
}

// Handle applies a host notification. Values that do not match an option
// of the control leave the selection unchanged; the field is re-synced
// either way.
func (w *Widget) Handle(ev Event) string {
	switch ev.Control {
	case ControlMeridiem:
		if m, ok := timevalue.ParseMeridiem(ev.Value); ok {
			return w.SetMeridiem(m)
		}
	case ControlHour:
		if n, ok := optionValue(ev.Value); ok {
			return w.SetHour(n)
		}
	case ControlMinute:
		if n, ok := optionValue(ev.Value); ok {
			return w.SetMinute(n)
		}
	case ControlSecond:
		if n, ok := optionValue(ev.Value); ok {
			return w.SetSecond(n)
		}
	}
	w.logger.Debug("timepicker: ignored event", "id", w.id, "control", string(ev.Control), "value", ev.Value)
	return w.Sync()
}

func optionValue(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
