// Package week buckets calendar dates into Monday-keyed weeks.
package week

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the date-only ISO form used for keys.
const Layout = "2006-01-02"

// Days is the number of tracked days in a week, Monday first.
const Days = 7

// Key identifies a calendar week by the ISO date of its Monday.
type Key string

func (k Key) String() string { return string(k) }

// Time returns the Monday of k at midnight UTC. ok is false for malformed keys.
func (k Key) Time() (t time.Time, ok bool) {
	t, err := time.Parse(Layout, strings.TrimSpace(string(k)))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether k parses and already names a Monday.
func (k Key) Valid() bool {
	t, ok := k.Time()
	return ok && t.Weekday() == time.Monday
}

// Shift is shorthand for Shift(k, delta).
func (k Key) Shift(delta int) Key { return Shift(k, delta) }

// Days returns the seven dates (Monday..Sunday) of the week.
func (k Key) Days() []time.Time {
	start, ok := k.Time()
	if !ok {
		return nil
	}
	out := make([]time.Time, Days)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// KeyOf returns the key of the week containing t, evaluated in t's location.
// Sunday belongs to the week that started six days earlier.
func KeyOf(t time.Time) Key {
	y, m, d := t.Date()
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
	return Key(monday.Format(Layout))
}

// Current returns the key for the week containing now.
func Current() Key {
	return KeyOf(time.Now())
}

// Shift moves k by delta whole weeks and re-derives the Monday.
// A malformed key is resolved to the current week first.
func Shift(k Key, delta int) Key {
	t, ok := k.Time()
	if !ok {
		t, _ = Current().Time()
	}
	return KeyOf(t.AddDate(0, 0, 7*delta))
}

// Parse accepts any YYYY-MM-DD date and returns the key of its week.
func Parse(s string) (Key, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return KeyOf(t), nil
}

// Label renders the Monday–Sunday span, e.g. "Jun 10 – Jun 16".
func Label(k Key) string {
	start, ok := k.Time()
	if !ok {
		return string(k)
	}
	end := start.AddDate(0, 0, Days-1)
	return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2"))
}

// ShortLabel renders only the Monday, e.g. "Jun 10".
func ShortLabel(k Key) string {
	start, ok := k.Time()
	if !ok {
		return string(k)
	}
	return start.Format("Jan 2")
}
