package journal

import (
	"sort"
	"strings"
	"time"

	"habitjournal/internal/week"
)

// NewTask returns a task with every day unset.
func NewTask(text string) Task {
	return Task{Text: text, Days: make([]DayStatus, Days)}
}

// DefaultSleepEntry is an unlogged night: wake AM, bed PM.
func DefaultSleepEntry() SleepEntry {
	return SleepEntry{WakeMeridiem: AM, BedMeridiem: PM}
}

// NewWeekRecord returns the record a never-visited week starts with.
func NewWeekRecord() *WeekRecord {
	rec := Normalize(WeekRecord{})
	return &rec
}

// Normalize returns a copy of rec that satisfies every shape invariant of
// the model. It never mutates rec and Normalize(Normalize(r)) == Normalize(r).
func Normalize(rec WeekRecord) WeekRecord {
	out := WeekRecord{WeekOf: rec.WeekOf}

	if rec.Tasks == nil {
		out.Tasks = []Task{NewTask("")}
	} else {
		out.Tasks = make([]Task, len(rec.Tasks))
		for i, t := range rec.Tasks {
			out.Tasks[i] = normalizeTask(t)
		}
	}

	out.Trackers = normalizeTrackers(rec.Trackers)
	return out
}

func normalizeTask(t Task) Task {
	days := make([]DayStatus, Days)
	for i := 0; i < Days && i < len(t.Days); i++ {
		if t.Days[i].IsValid() {
			days[i] = t.Days[i]
		}
	}
	return Task{Text: t.Text, Days: days}
}

func normalizeTrackers(t Trackers) Trackers {
	out := t

	out.Water = make([]bool, Days)
	if len(t.Water) == Days {
		copy(out.Water, t.Water)
	}

	out.Sleep = make([]SleepEntry, Days)
	for i := range out.Sleep {
		out.Sleep[i] = DefaultSleepEntry()
	}
	if len(t.Sleep) == Days {
		for i, e := range t.Sleep {
			out.Sleep[i] = normalizeSleepEntry(e)
		}
	}

	if !out.Mood.IsValid() {
		out.Mood = MoodUnset
	}

	out.Appointments = make([]Appointment, len(t.Appointments))
	copy(out.Appointments, t.Appointments)

	if out.FocusSessions < 0 {
		out.FocusSessions = 0
	}
	return out
}

func normalizeSleepEntry(e SleepEntry) SleepEntry {
	e.WakeMeridiem = Meridiem(strings.ToUpper(strings.TrimSpace(string(e.WakeMeridiem))))
	if !e.WakeMeridiem.IsValid() {
		e.WakeMeridiem = AM
	}
	e.BedMeridiem = Meridiem(strings.ToUpper(strings.TrimSpace(string(e.BedMeridiem))))
	if !e.BedMeridiem.IsValid() {
		e.BedMeridiem = PM
	}
	return e
}

// NormalizeState repairs an AppState in place after loading: nil records are
// dropped, every record is normalized, an unparseable current week falls back
// to the week of now, and the current week's record is ensured.
func NormalizeState(st *AppState, now time.Time) {
	if st.Weeks == nil {
		st.Weeks = map[week.Key]*WeekRecord{}
	}
	for k, rec := range st.Weeks {
		if rec == nil {
			delete(st.Weeks, k)
			continue
		}
		*rec = Normalize(*rec)
	}

	if _, ok := st.CurrentWeek.Time(); !ok {
		st.CurrentWeek = week.KeyOf(now)
	}
	st.Profile.UnlockedThemes = normalizeThemes(st.Profile.UnlockedThemes)
	st.Record(st.CurrentWeek)
}

func normalizeThemes(themes []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SortedKeys returns the week keys of st in chronological order.
func (s *AppState) SortedKeys() []week.Key {
	keys := make([]week.Key, 0, len(s.Weeks))
	for k := range s.Weeks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
