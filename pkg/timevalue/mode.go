package timevalue

import "strings"

// Mode selects the hour domain of the picker.
type Mode string

const (
	// Mode12 is a 12-hour clock: hours 00-11 plus an AM/PM meridiem.
	Mode12 Mode = "12"
	// Mode24 is a 24-hour clock: hours 00-23, no meridiem.
	Mode24 Mode = "24"
	// Mode100 is a plain two digit counter: hours 00-99, no meridiem.
	Mode100 Mode = "100"
)

// ValidateMode accepts "12", "24" and "100". Anything else yields Mode12.
func ValidateMode(requested string) Mode {
	switch Mode(strings.TrimSpace(requested)) {
	case Mode24:
		return Mode24
	case Mode100:
		return Mode100
	default:
		return Mode12
	}
}

// HourOptions reports how many hour values the selector offers.
func (m Mode) HourOptions() int {
	switch m {
	case Mode24:
		return 24
	case Mode100:
		return 100
	default:
		return 12
	}
}

// MaxHour is the largest selectable hour.
func (m Mode) MaxHour() int {
	return m.HourOptions() - 1
}

func (m Mode) HasMeridiem() bool {
	return m == Mode12
}

// ValidHour reports whether hour is one of the selectable hours.
func (m Mode) ValidHour(hour int) bool {
	return hour >= 0 && hour <= m.MaxHour()
}

// ValidMeridiem reports whether meridiem fits the mode: AM or PM on a
// 12-hour clock, MeridiemNone otherwise.
func (m Mode) ValidMeridiem(meridiem Meridiem) bool {
	if m.HasMeridiem() {
		return meridiem == AM || meridiem == PM
	}
	return meridiem == MeridiemNone
}

// ValidSexagesimal reports whether n is a minute or second in [0,59].
func ValidSexagesimal(n int) bool {
	return n >= 0 && n <= 59
}

func (m Mode) String() string {
	return string(ValidateMode(string(m)))
}

// Format selects the serialized representation written to the backing field.
type Format string

const (
	FormatText   Format = "time"
	FormatNumber Format = "number"
)

// ParseFormat maps "number" to FormatNumber and everything else to FormatText.
func ParseFormat(requested string) Format {
	if strings.EqualFold(strings.TrimSpace(requested), string(FormatNumber)) {
		return FormatNumber
	}
	return FormatText
}

// Meridiem marks the half of the day for Mode12 selections.
type Meridiem int

const (
	MeridiemNone Meridiem = iota
	AM
	PM
)

// ParseMeridiem accepts "am" and "pm" in any case.
func ParseMeridiem(raw string) (Meridiem, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "am":
		return AM, true
	case "pm":
		return PM, true
	default:
		return MeridiemNone, false
	}
}

func (m Meridiem) String() string {
	switch m {
	case AM:
		return "am"
	case PM:
		return "pm"
	default:
		return ""
	}
}

func (m Meridiem) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Meridiem) UnmarshalText(text []byte) error {
	parsed, _ := ParseMeridiem(string(text))
	*m = parsed
	return nil
}
