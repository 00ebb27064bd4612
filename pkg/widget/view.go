package widget

import "github.com/goliatone/go-timepicker/pkg/timevalue"

// Selector describes one rendered select control.
type Selector struct {
	Control     Control
	Options     []string
	Selected    string
	Unit        string
	Visible     bool
	UnitVisible bool
}

// MeridiemView describes the AM/PM radio pair.
type MeridiemView struct {
	Visible  bool
	Selected string
	AMLabel  string
	PMLabel  string
}

// View is the presentation snapshot of a widget: everything a renderer
// needs to draw the controls without touching the codec.
type View struct {
	ID        string
	Value     string
	Mode      timevalue.Mode
	Meridiem  MeridiemView
	Hour      Selector
	Minute    Selector
	Second    Selector
	Separator string
	// SeparatorVisible covers the hour/minute and minute/second separators.
	SeparatorVisible [2]bool
}

// View snapshots the current selection.
func (w *Widget) View() View {
	cfg := w.cfg
	hasSep := cfg.Separator != ""

	selected := ""
	if cfg.Mode.HasMeridiem() {
		selected = w.sel.Meridiem.String()
	}

	return View{
		ID:    w.id,
		Value: w.field.Value(),
		Mode:  cfg.Mode,
		Meridiem: MeridiemView{
			Visible:  cfg.Mode.HasMeridiem(),
			Selected: selected,
			AMLabel:  cfg.Labels.AM,
			PMLabel:  cfg.Labels.PM,
		},
		Hour: Selector{
			Control:     ControlHour,
			Options:     timevalue.Options(cfg.Mode.HourOptions()),
			Selected:    timevalue.Pad(w.sel.Hour),
			Unit:        cfg.Labels.Hour,
			Visible:     true,
			UnitVisible: cfg.ShowUnits,
		},
		Minute: Selector{
			Control:     ControlMinute,
			Options:     timevalue.Options(60),
			Selected:    timevalue.Pad(w.sel.Minute),
			Unit:        cfg.Labels.Minute,
			Visible:     true,
			UnitVisible: cfg.ShowUnits,
		},
		Second: Selector{
			Control:     ControlSecond,
			Options:     timevalue.Options(60),
			Selected:    timevalue.Pad(w.sel.Second),
			Unit:        cfg.Labels.Second,
			Visible:     cfg.Seconds,
			UnitVisible: cfg.ShowUnits && cfg.Seconds,
		},
		Separator:        cfg.Separator,
		SeparatorVisible: [2]bool{hasSep, hasSep && cfg.Seconds},
	}
}

// Selectors returns the visible selectors in display order.
func (v View) Selectors() []Selector {
	out := make([]Selector, 0, 3)
	for _, s := range []Selector{v.Hour, v.Minute, v.Second} {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}
