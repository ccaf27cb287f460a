// Package stats summarizes recent weeks of the journal.
package stats

import (
	"math"

	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/week"
)

// DefaultWeeks is how many stored weeks a summary covers by default.
const DefaultWeeks = 8

type WeekSummary struct {
	Key   week.Key
	Label string

	// AvgSleep is the mean of the positive sleep hours, one decimal; 0 when
	// no night was logged.
	AvgSleep    float64
	SleepNights int

	// MoodScore is 5 (rad) .. 1 (awful), 0 when unset.
	MoodScore int

	// Completion is the percentage of task days that are checked.
	Completion int
	Checks     int

	WaterDays     int
	Meals         int
	FocusSessions int
	XP            int
}

type Summary struct {
	Weeks []WeekSummary

	// Means over the weeks that have data for the field.
	AvgSleep      float64
	AvgMood       float64
	AvgCompletion float64
	TotalXP       int
}

// Summarize covers the newest n stored weeks in chronological order.
func Summarize(st *journal.AppState, n int, eng engine.Engine) Summary {
	if n <= 0 {
		n = DefaultWeeks
	}
	keys := st.SortedKeys()
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}

	var (
		out                   Summary
		sleepSum, moodSum     float64
		sleepWeeks, moodWeeks int
		completionSum         float64
		taskWeeks             int
	)
	for _, k := range keys {
		rec := st.Weeks[k]
		if rec == nil {
			continue
		}
		ws := SummarizeWeek(k, rec, eng)
		out.Weeks = append(out.Weeks, ws)
		out.TotalXP += ws.XP

		if ws.SleepNights > 0 {
			sleepSum += ws.AvgSleep
			sleepWeeks++
		}
		if ws.MoodScore > 0 {
			moodSum += float64(ws.MoodScore)
			moodWeeks++
		}
		if len(rec.Tasks) > 0 {
			completionSum += float64(ws.Completion)
			taskWeeks++
		}
	}
	if sleepWeeks > 0 {
		out.AvgSleep = round1(sleepSum / float64(sleepWeeks))
	}
	if moodWeeks > 0 {
		out.AvgMood = round1(moodSum / float64(moodWeeks))
	}
	if taskWeeks > 0 {
		out.AvgCompletion = round1(completionSum / float64(taskWeeks))
	}
	return out
}

func SummarizeWeek(k week.Key, rec *journal.WeekRecord, eng engine.Engine) WeekSummary {
	ws := WeekSummary{
		Key:           k,
		Label:         week.ShortLabel(k),
		MoodScore:     rec.Trackers.Mood.Score(),
		Meals:         rec.Trackers.Food.Count(),
		FocusSessions: rec.Trackers.FocusSessions,
		XP:            eng.WeekXP(rec),
		Checks:        rec.CheckCount(),
	}

	var hours float64
	for _, night := range rec.Trackers.Sleep {
		if h, ok := night.HoursValue(); ok {
			hours += h
			ws.SleepNights++
		}
	}
	if ws.SleepNights > 0 {
		ws.AvgSleep = round1(hours / float64(ws.SleepNights))
	}

	total := 0
	for _, t := range rec.Tasks {
		total += len(t.Days)
	}
	if total > 0 {
		ws.Completion = int(math.Round(float64(ws.Checks) / float64(total) * 100))
	}

	for _, filled := range rec.Trackers.Water {
		if filled {
			ws.WaterDays++
		}
	}
	return ws
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
