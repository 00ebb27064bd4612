package widget

// Control identifies one of the rendered selectors.
type Control string

const (
	ControlMeridiem Control = "ampm"
	ControlHour     Control = "hour"
	ControlMinute   Control = "minute"
	ControlSecond   Control = "second"
)

// EventType is the host notification that triggered a sync.
type EventType string

const (
	EventClick  EventType = "click"
	EventChange EventType = "change"
	EventBlur   EventType = "blur"
)

// Event carries a host notification: which control fired and the option
// value it currently shows ("07", "am", ...).
type Event struct {
	Type    EventType
	Control Control
	Value   string
}
