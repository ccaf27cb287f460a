// Package journal holds the weekly habit-journal data model and the
// normalization rules that heal legacy or partial records.
package journal

import (
	"fmt"
	"strings"

	"habitjournal/internal/week"
)

// Days is the number of day slots in every per-day sequence.
const Days = week.Days

type DayStatus string

const (
	StatusNone          DayStatus = ""
	StatusCheck         DayStatus = "check"
	StatusCross         DayStatus = "x"
	StatusNotApplicable DayStatus = "na"
)

// statusCycle is the fixed toggle order; Next wraps from the last back to the first.
var statusCycle = []DayStatus{StatusNone, StatusCheck, StatusCross, StatusNotApplicable}

func (s DayStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusCheck, StatusCross, StatusNotApplicable:
		return true
	default:
		return false
	}
}

// Next returns the status that follows s in the toggle cycle.
// Unknown statuses restart the cycle at none.
func (s DayStatus) Next() DayStatus {
	for i, st := range statusCycle {
		if st == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusNone
}

func (s DayStatus) String() string {
	if s == StatusNone {
		return "none"
	}
	return string(s)
}

// ParseDayStatus accepts the wire names plus a few friendly aliases.
func ParseDayStatus(input string) (DayStatus, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "", "none", "clear", "-":
		return StatusNone, nil
	case "check", "done", "yes", "y", "ok":
		return StatusCheck, nil
	case "x", "cross", "miss", "missed", "no", "n":
		return StatusCross, nil
	case "na", "n/a", "skip":
		return StatusNotApplicable, nil
	default:
		return StatusNone, ParseError{Kind: "day status", Input: input}
	}
}

type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

func (m Meridiem) IsValid() bool { return m == AM || m == PM }

// ParseMeridiem defaults to fallback when input is empty.
func ParseMeridiem(input string, fallback Meridiem) (Meridiem, error) {
	s := Meridiem(strings.TrimSpace(strings.ToUpper(input)))
	if s == "" {
		return fallback, nil
	}
	if !s.IsValid() {
		return "", ParseError{Kind: "meridiem", Input: input}
	}
	return s, nil
}

type Mood string

const (
	MoodUnset Mood = ""
	MoodRad   Mood = "rad"
	MoodGood  Mood = "good"
	MoodMeh   Mood = "meh"
	MoodBad   Mood = "bad"
	MoodAwful Mood = "awful"
)

// Moods lists the settable moods, best first.
var Moods = []Mood{MoodRad, MoodGood, MoodMeh, MoodBad, MoodAwful}

func (m Mood) IsValid() bool {
	switch m {
	case MoodRad, MoodGood, MoodMeh, MoodBad, MoodAwful:
		return true
	default:
		return false
	}
}

// Score maps a mood onto 5 (rad) .. 1 (awful); unset is 0.
func (m Mood) Score() int {
	for i, v := range Moods {
		if v == m {
			return len(Moods) - i
		}
	}
	return 0
}

func (m Mood) String() string {
	if m == MoodUnset {
		return "none"
	}
	return string(m)
}

func ParseMood(input string) (Mood, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" || s == "none" {
		return MoodUnset, nil
	}
	m := Mood(s)
	if !m.IsValid() {
		return MoodUnset, ParseError{Kind: "mood", Input: input}
	}
	return m, nil
}

type Task struct {
	Text string      `json:"text"`
	Days []DayStatus `json:"days"`
}

type SleepEntry struct {
	Wake         string   `json:"wake"`
	WakeMeridiem Meridiem `json:"wakeAmPm"`
	Bed          string   `json:"bed"`
	BedMeridiem  Meridiem `json:"bedAmPm"`
	Hours        string   `json:"hours"`
}

type Food struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
	Snack     bool `json:"snack"`
}

// Meals lists the meal names in display order.
var Meals = []string{"breakfast", "lunch", "dinner", "snack"}

// Count returns how many meals are logged.
func (f Food) Count() int {
	n := 0
	for _, v := range []bool{f.Breakfast, f.Lunch, f.Dinner, f.Snack} {
		if v {
			n++
		}
	}
	return n
}

// Set flips the named meal. Unknown names return a ParseError.
func (f *Food) Set(meal string, on bool) error {
	switch strings.TrimSpace(strings.ToLower(meal)) {
	case "breakfast":
		f.Breakfast = on
	case "lunch":
		f.Lunch = on
	case "dinner":
		f.Dinner = on
	case "snack":
		f.Snack = on
	default:
		return ParseError{Kind: "meal", Input: meal}
	}
	return nil
}

// Get reports the named meal; unknown names are false.
func (f Food) Get(meal string) bool {
	switch strings.TrimSpace(strings.ToLower(meal)) {
	case "breakfast":
		return f.Breakfast
	case "lunch":
		return f.Lunch
	case "dinner":
		return f.Dinner
	case "snack":
		return f.Snack
	default:
		return false
	}
}

type Fitness struct {
	Type     string `json:"type"`
	Duration string `json:"duration"`
}

type Appointment struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

type Trackers struct {
	Water         []bool        `json:"water"`
	Sleep         []SleepEntry  `json:"sleep"`
	Food          Food          `json:"food"`
	Mood          Mood          `json:"mood"`
	Weather       string        `json:"weather"`
	UniqueEvent   string        `json:"uniqueEvent"`
	Fitness       Fitness       `json:"fitness"`
	Appointments  []Appointment `json:"appointments"`
	FocusSessions int           `json:"focusSessions,omitempty"`
}

type WeekRecord struct {
	Tasks    []Task   `json:"tasks"`
	Trackers Trackers `json:"trackers"`
	WeekOf   string   `json:"weekOf"`
}

type Profile struct {
	XP             int      `json:"xp"`
	Level          int      `json:"level"`
	StreakDays     int      `json:"streakDays"`
	LongestStreak  int      `json:"longestStreak"`
	UnlockedThemes []string `json:"unlockedThemes"`
}

// DefaultProfile is the profile of a brand-new or migrated journal.
func DefaultProfile() Profile {
	return Profile{Level: 1, UnlockedThemes: []string{}}
}

// HasTheme reports whether name is in the unlocked set.
func (p Profile) HasTheme(name string) bool {
	for _, t := range p.UnlockedThemes {
		if t == name {
			return true
		}
	}
	return false
}

type AppState struct {
	CurrentWeek week.Key                  `json:"currentWeek"`
	Profile     Profile                   `json:"profile"`
	Weeks       map[week.Key]*WeekRecord `json:"weeks"`
}

// NewAppState returns a fresh state with one empty record at current.
func NewAppState(current week.Key) *AppState {
	st := &AppState{
		CurrentWeek: current,
		Profile:     DefaultProfile(),
		Weeks:       map[week.Key]*WeekRecord{},
	}
	st.Weeks[current] = NewWeekRecord()
	return st
}

// Record returns the normalized record for key, creating an empty one on
// first access.
func (s *AppState) Record(key week.Key) *WeekRecord {
	if s.Weeks == nil {
		s.Weeks = map[week.Key]*WeekRecord{}
	}
	rec, ok := s.Weeks[key]
	if !ok || rec == nil {
		rec = NewWeekRecord()
		s.Weeks[key] = rec
		return rec
	}
	*rec = Normalize(*rec)
	return rec
}

// Current is Record(s.CurrentWeek).
func (s *AppState) Current() *WeekRecord {
	return s.Record(s.CurrentWeek)
}

// ParseError reports user input that does not name a known value.
type ParseError struct {
	Kind  string
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Input)
}
