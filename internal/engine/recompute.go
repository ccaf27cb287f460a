package engine

import (
	"habitjournal/internal/journal"
)

// Engine derives the profile from the week history.
type Engine struct {
	// FocusSessionXP is awarded per completed focus session. Zero keeps
	// focus sessions out of the XP total.
	FocusSessionXP int
}

// Result reports what a recompute changed.
type Result struct {
	XP          int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      int
	NewThemes   []string
}

// WeekXP is the XP earned by a single week.
func (e Engine) WeekXP(rec *journal.WeekRecord) int {
	if rec == nil {
		return 0
	}
	xp := rec.CheckCount() * XPPerCheck

	t := rec.Trackers
	for _, filled := range t.Water {
		if filled {
			xp += XPPerWaterDay
		}
	}
	xp += t.Food.Count() * XPPerMeal
	for _, night := range t.Sleep {
		if night.Logged() {
			xp += XPPerSleepDay
		}
	}
	if t.Mood.IsValid() {
		xp += XPForMood
	}
	if t.Weather != "" {
		xp += XPForWeather
	}
	if t.FocusSessions > 0 {
		xp += t.FocusSessions * e.FocusSessionXP
	}
	return xp
}

// TotalXP sums WeekXP over every stored week.
func (e Engine) TotalXP(st *journal.AppState) int {
	total := 0
	for _, rec := range st.Weeks {
		total += e.WeekXP(rec)
	}
	return total
}

// Streak counts consecutive stored weeks, newest first, that have at least
// one checked task day.
func Streak(st *journal.AppState) int {
	keys := st.SortedKeys()
	n := 0
	for i := len(keys) - 1; i >= 0; i-- {
		rec := st.Weeks[keys[i]]
		if rec == nil || rec.CheckCount() == 0 {
			break
		}
		n++
	}
	return n
}

// Recompute rebuilds xp, level and streak from scratch, ratchets the longest
// streak and unlocks themes. It is idempotent on unchanged data.
func (e Engine) Recompute(st *journal.AppState) Result {
	p := &st.Profile
	before := p.Level

	p.XP = e.TotalXP(st)
	p.Level = LevelForXP(p.XP)
	p.StreakDays = Streak(st)
	if p.StreakDays > p.LongestStreak {
		p.LongestStreak = p.StreakDays
	}
	if p.UnlockedThemes == nil {
		p.UnlockedThemes = []string{}
	}

	return Result{
		XP:          p.XP,
		LevelBefore: before,
		LevelAfter:  p.Level,
		LevelUp:     p.Level > before && before >= 1,
		Streak:      p.StreakDays,
		NewThemes:   unlockThemes(p, p.Level),
	}
}
