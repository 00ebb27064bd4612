package i18n

import "strings"

// Label keys understood by Labels.Get and the Translator seam.
const (
	KeyAM     = "am"
	KeyPM     = "pm"
	KeyHour   = "hour"
	KeyMinute = "minute"
	KeySecond = "second"
)

// Keys lists every label key in display order.
var Keys = []string{KeyAM, KeyPM, KeyHour, KeyMinute, KeySecond}

// Labels holds the user-visible strings of one locale.
type Labels struct {
	AM     string `json:"am" yaml:"am"`
	PM     string `json:"pm" yaml:"pm"`
	Hour   string `json:"hour" yaml:"hour"`
	Minute string `json:"minute" yaml:"minute"`
	Second string `json:"second" yaml:"second"`
}

// Get returns the label stored under key, or "" for unknown keys.
func (l Labels) Get(key string) string {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case KeyAM:
		return l.AM
	case KeyPM:
		return l.PM
	case KeyHour:
		return l.Hour
	case KeyMinute:
		return l.Minute
	case KeySecond:
		return l.Second
	default:
		return ""
	}
}

func (l *Labels) set(key, value string) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case KeyAM:
		l.AM = value
	case KeyPM:
		l.PM = value
	case KeyHour:
		l.Hour = value
	case KeyMinute:
		l.Minute = value
	case KeySecond:
		l.Second = value
	}
}

// Merge returns l with every non-empty value of other applied on top.
func (l Labels) Merge(other Labels) Labels {
	for _, key := range Keys {
		if value := other.Get(key); strings.TrimSpace(value) != "" {
			l.set(key, value)
		}
	}
	return l
}

// LabelsFromMap reads label keys from a loosely typed mapping, as supplied by
// host option maps or decoded YAML. Unknown keys and non-string values are
// ignored.
func LabelsFromMap(values map[string]any) Labels {
	var out Labels
	for key, raw := range values {
		if str, ok := raw.(string); ok {
			out.set(key, str)
		}
	}
	return out
}

// IsZero reports whether no label is set.
func (l Labels) IsZero() bool {
	return l == Labels{}
}
