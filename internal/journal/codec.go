package journal

import (
	"encoding/json"
	"strconv"
	"strings"

	"habitjournal/internal/week"
)

// Decoding is deliberately forgiving: a field whose JSON shape is wrong is
// decoded as absent and left for Normalize to heal.

func lenient[T any](raw json.RawMessage) (T, bool) {
	var v T
	if len(raw) == 0 {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

func lenientString(raw json.RawMessage) string {
	if s, ok := lenient[string](raw); ok {
		return s
	}
	if f, ok := lenient[float64](raw); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

func lenientInt(raw json.RawMessage) int {
	if f, ok := lenient[float64](raw); ok {
		return int(f)
	}
	if s, ok := lenient[string](raw); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}

func objectFields(b []byte) (map[string]json.RawMessage, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		return nil, false
	}
	return raw, true
}

func (s DayStatus) MarshalJSON() ([]byte, error) {
	if s == StatusNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *DayStatus) UnmarshalJSON(b []byte) error {
	v, _ := lenient[string](b)
	*s = DayStatus(v)
	return nil
}

func (m Mood) MarshalJSON() ([]byte, error) {
	if m == MoodUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	v, _ := lenient[string](b)
	*m = Mood(v)
	return nil
}

func (e *SleepEntry) UnmarshalJSON(b []byte) error {
	*e = SleepEntry{}
	raw, ok := objectFields(b)
	if !ok {
		return nil
	}
	e.Wake = lenientString(raw["wake"])
	e.WakeMeridiem = Meridiem(lenientString(raw["wakeAmPm"]))
	e.Bed = lenientString(raw["bed"])
	e.BedMeridiem = Meridiem(lenientString(raw["bedAmPm"]))
	e.Hours = lenientString(raw["hours"])
	return nil
}

func (t *Task) UnmarshalJSON(b []byte) error {
	*t = Task{}
	raw, ok := objectFields(b)
	if !ok {
		return nil
	}
	t.Text = lenientString(raw["text"])
	t.Days, _ = lenient[[]DayStatus](raw["days"])
	return nil
}

func (t Trackers) MarshalJSON() ([]byte, error) {
	type plain Trackers
	out := struct {
		plain
		Weather *string `json:"weather"`
	}{plain: plain(t)}
	if t.Weather != "" {
		w := t.Weather
		out.Weather = &w
	}
	return json.Marshal(out)
}

func (t *Trackers) UnmarshalJSON(b []byte) error {
	*t = Trackers{}
	raw, ok := objectFields(b)
	if !ok {
		return nil
	}
	t.Water, _ = lenient[[]bool](raw["water"])
	t.Sleep, _ = lenient[[]SleepEntry](raw["sleep"])
	t.Food, _ = lenient[Food](raw["food"])
	t.Mood, _ = lenient[Mood](raw["mood"])
	t.Weather = lenientString(raw["weather"])
	t.UniqueEvent = lenientString(raw["uniqueEvent"])
	if fr, ok := objectFields(raw["fitness"]); ok {
		t.Fitness = Fitness{Type: lenientString(fr["type"]), Duration: lenientString(fr["duration"])}
	}
	if items, ok := lenient[[]json.RawMessage](raw["appointments"]); ok {
		t.Appointments = make([]Appointment, 0, len(items))
		for _, item := range items {
			ar, ok := objectFields(item)
			if !ok {
				continue
			}
			t.Appointments = append(t.Appointments, Appointment{
				Time:  lenientString(ar["time"]),
				Event: lenientString(ar["event"]),
			})
		}
	}
	t.FocusSessions = lenientInt(raw["focusSessions"])
	return nil
}

func (r *WeekRecord) UnmarshalJSON(b []byte) error {
	*r = WeekRecord{}
	raw, ok := objectFields(b)
	if !ok {
		return nil
	}
	r.Tasks, _ = lenient[[]Task](raw["tasks"])
	r.Trackers, _ = lenient[Trackers](raw["trackers"])
	r.WeekOf = lenientString(raw["weekOf"])
	return nil
}

func (p *Profile) UnmarshalJSON(b []byte) error {
	*p = DefaultProfile()
	raw, ok := objectFields(b)
	if !ok {
		return nil
	}
	p.XP = lenientInt(raw["xp"])
	if v, present := raw["level"]; present {
		p.Level = lenientInt(v)
	}
	p.StreakDays = lenientInt(raw["streakDays"])
	p.LongestStreak = lenientInt(raw["longestStreak"])
	p.UnlockedThemes, _ = lenient[[]string](raw["unlockedThemes"])
	return nil
}

// DecodeState parses a current-schema blob. ok is false when the payload is
// not a JSON object, which callers treat the same as an absent blob.
func DecodeState(blob []byte) (st *AppState, ok bool) {
	raw, ok := objectFields(blob)
	if !ok {
		return nil, false
	}
	st = &AppState{
		CurrentWeek: week.Key(lenientString(raw["currentWeek"])),
		Profile:     DefaultProfile(),
	}
	if _, present := raw["profile"]; present {
		st.Profile, _ = lenient[Profile](raw["profile"])
	}
	st.Weeks, _ = lenient[map[week.Key]*WeekRecord](raw["weeks"])
	return st, true
}

// DecodeLegacyRecord parses a single-week legacy blob.
func DecodeLegacyRecord(blob []byte) (rec WeekRecord, ok bool) {
	if _, ok := objectFields(blob); !ok {
		return WeekRecord{}, false
	}
	rec, ok = lenient[WeekRecord](blob)
	return rec, ok
}

// EncodeState serializes st in the current schema.
func EncodeState(st *AppState) ([]byte, error) {
	return json.Marshal(st)
}
