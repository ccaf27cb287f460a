package journal

import (
	"math"
	"strconv"
	"strings"
)

// ParseClock converts "7" or "7:30" plus a meridiem into fractional hours on
// a 24h clock. ok is false when the hour or minutes are not numeric.
func ParseClock(value string, m Meridiem) (hours float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	h, ok := leadingInt(parts[0])
	if !ok {
		return 0, false
	}
	min := 0
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		min, ok = leadingInt(parts[1])
		if !ok {
			return 0, false
		}
	}
	if m == PM && h < 12 {
		h += 12
	}
	if m == AM && h == 12 {
		h = 0
	}
	return float64(h) + float64(min)/60, true
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SleepHours derives hours slept from bed and wake times, wrapping past
// midnight and rounding to one decimal.
func SleepHours(wake string, wakeM Meridiem, bed string, bedM Meridiem) (string, bool) {
	if strings.TrimSpace(wake) == "" || strings.TrimSpace(bed) == "" {
		return "", false
	}
	w, ok := ParseClock(wake, wakeM)
	if !ok {
		return "", false
	}
	b, ok := ParseClock(bed, bedM)
	if !ok {
		return "", false
	}
	diff := w - b
	if diff < 0 {
		diff += 24
	}
	rounded := math.Floor(diff*10+0.5) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64), true
}

// Recalculate refreshes Hours from the wake and bed times. Hours is left
// untouched when the times are incomplete or unparseable.
func (e *SleepEntry) Recalculate() bool {
	h, ok := SleepHours(e.Wake, e.WakeMeridiem, e.Bed, e.BedMeridiem)
	if !ok {
		return false
	}
	e.Hours = h
	return true
}

// Logged reports whether the night counts as tracked.
func (e SleepEntry) Logged() bool {
	return e.Hours != "" && e.Hours != "0"
}

// HoursValue parses Hours. Non-positive or unparseable values are not ok.
func (e SleepEntry) HoursValue() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(e.Hours), 64)
	if err != nil || f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
