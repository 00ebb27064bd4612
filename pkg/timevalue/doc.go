// Package timevalue converts between a serialized time-of-day value and the
// discrete hour/minute/second selections (plus an optional AM/PM meridiem)
// shown by the timepicker widget.
//
// Two serialized forms are understood: text ("HH:MM" or "HH:MM:SS", using a
// configurable separator) and a non-negative integer count of milliseconds.
// Nothing in this package returns an error; malformed input is reported
// through Kind and callers substitute defaults.
package timevalue
