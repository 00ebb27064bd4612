package timevalue

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// DefaultSeparator joins text fields when no separator is configured.
const DefaultSeparator = ":"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Components is the decomposed selection: one value per selector.
type Components struct {
	Hour     int      `json:"hour"`
	Minute   int      `json:"minute"`
	Second   int      `json:"second"`
	Meridiem Meridiem `json:"meridiem,omitempty"`
}

// Zero returns the default selection for mode: 00:00:00, AM on a 12-hour clock.
func Zero(mode Mode) Components {
	c := Components{}
	if mode.HasMeridiem() {
		c.Meridiem = AM
	}
	return c
}

// Hour24 returns the hour as written to the backing field: PM hours in
// Mode12 are shifted by twelve.
func (c Components) Hour24(mode Mode) int {
	if mode.HasMeridiem() && c.Meridiem == PM {
		return c.Hour + 12
	}
	return c.Hour
}

// Valid reports whether every field lies inside the selector domains of mode.
func (c Components) Valid(mode Mode) bool {
	return mode.ValidHour(c.Hour) &&
		ValidSexagesimal(c.Minute) &&
		ValidSexagesimal(c.Second) &&
		mode.ValidMeridiem(c.Meridiem)
}

// Layout is the serialization half of the widget configuration.
type Layout struct {
	Mode      Mode   `json:"type" yaml:"type"`
	Seconds   bool   `json:"second" yaml:"second"`
	Format    Format `json:"format" yaml:"format"`
	Separator string `json:"spliter" yaml:"spliter"`
}

// Kind reports which serialized form Parse recognized.
type Kind int

const (
	KindNone Kind = iota
	KindText
	KindTextSeconds
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextSeconds:
		return "text-seconds"
	case KindNumber:
		return "number"
	default:
		return "none"
	}
}

var (
	numberPattern = regexp.MustCompile(`^\d+$`)
	textPatterns  sync.Map // separator -> *regexp.Regexp
)

func textPattern(separator string) *regexp.Regexp {
	if cached, ok := textPatterns.Load(separator); ok {
		return cached.(*regexp.Regexp)
	}
	sep := regexp.QuoteMeta(separator)
	re := regexp.MustCompile(`^(\d\d)` + sep + `(\d\d)(?:` + sep + `(\d\d))?$`)
	actual, _ := textPatterns.LoadOrStore(separator, re)
	return actual.(*regexp.Regexp)
}

// NormalizeSeparator substitutes DefaultSeparator for an empty separator.
func NormalizeSeparator(separator string) string {
	if separator == "" {
		return DefaultSeparator
	}
	return separator
}

// Parse recognizes raw as text or milliseconds. Unrecognized input returns
// KindNone with zero components; callers decide what to fall back to.
func Parse(raw string, mode Mode, separator string) (Components, Kind) {
	mode = ValidateMode(string(mode))
	separator = NormalizeSeparator(separator)

	if match := textPattern(separator).FindStringSubmatch(raw); match != nil {
		c := Components{
			Hour:   atoi(match[1]),
			Minute: atoi(match[2]),
		}
		kind := KindText
		if match[3] != "" {
			c.Second = atoi(match[3])
			kind = KindTextSeconds
		}
		return splitMeridiem(c, mode), kind
	}

	if numberPattern.MatchString(raw) {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Components{}, KindNone
		}
		total := ms / msPerSecond
		c := Components{
			Second: int(total % 60),
			Minute: int((total / 60) % 60),
			Hour:   int(total / 3600),
		}
		return splitMeridiem(c, mode), KindNumber
	}

	return Components{}, KindNone
}

// Decode applies raw onto current. Unrecognized input keeps current as is,
// and text without a seconds group keeps current.Second.
func Decode(raw string, mode Mode, separator string, current Components) Components {
	parsed, kind := Parse(raw, mode, separator)
	switch kind {
	case KindNone:
		return current
	case KindText:
		parsed.Second = current.Second
		return parsed
	default:
		return parsed
	}
}

// Encode serializes c according to layout. c is never modified.
func Encode(c Components, layout Layout) string {
	if ParseFormat(string(layout.Format)) == FormatNumber {
		return strconv.FormatInt(Millis(c, layout.Mode), 10)
	}
	return Text(c, layout.Mode, layout.Separator, layout.Seconds)
}

// Text renders zero padded hour and minute, plus seconds when requested.
func Text(c Components, mode Mode, separator string, seconds bool) string {
	separator = NormalizeSeparator(separator)
	var b strings.Builder
	b.WriteString(Pad(c.Hour24(ValidateMode(string(mode)))))
	b.WriteString(separator)
	b.WriteString(Pad(c.Minute))
	if seconds {
		b.WriteString(separator)
		b.WriteString(Pad(c.Second))
	}
	return b.String()
}

// Millis always includes seconds, regardless of whether they are displayed.
func Millis(c Components, mode Mode) int64 {
	h := int64(c.Hour24(ValidateMode(string(mode))))
	return int64(c.Second)*msPerSecond + int64(c.Minute)*msPerMinute + h*msPerHour
}

// Pad renders n with a leading zero below ten.
func Pad(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Options lists the padded selector values 00 through count-1.
func Options(count int) []string {
	if count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = Pad(i)
	}
	return out
}

func splitMeridiem(c Components, mode Mode) Components {
	if !mode.HasMeridiem() {
		c.Meridiem = MeridiemNone
		return c
	}
	c.Meridiem = AM
	if c.Hour > 11 {
		c.Meridiem = PM
		c.Hour -= 12
	}
	return c
}

func atoi(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
