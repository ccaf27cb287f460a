package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/week"
)

func TestSummarizeWeek(t *testing.T) {
	rec := journal.NewWeekRecord()
	rec.AddTask("Read")
	require.NoError(t, rec.SetDay(0, 0, journal.StatusCheck))
	require.NoError(t, rec.SetDay(0, 1, journal.StatusCheck))
	require.NoError(t, rec.SetDay(1, 1, journal.StatusCheck))
	require.NoError(t, rec.SetDay(1, 2, journal.StatusCross))
	rec.Trackers.Sleep[0].Hours = "7.5"
	rec.Trackers.Sleep[1].Hours = "8"
	rec.Trackers.Sleep[2].Hours = "0"
	rec.Trackers.Sleep[3].Hours = "late"
	rec.Trackers.Water[4] = true
	rec.Trackers.Mood = journal.MoodMeh
	rec.Trackers.Food = journal.Food{Lunch: true}

	ws := SummarizeWeek("2024-06-10", rec, engine.Engine{})
	assert.Equal(t, "Jun 10", ws.Label)
	assert.Equal(t, 7.8, ws.AvgSleep)
	assert.Equal(t, 2, ws.SleepNights)
	assert.Equal(t, 3, ws.MoodScore)
	assert.Equal(t, 3, ws.Checks)
	assert.Equal(t, 21, ws.Completion) // 3 of 14
	assert.Equal(t, 1, ws.WaterDays)
	assert.Equal(t, 1, ws.Meals)
	assert.Equal(t, 30+30+5+5+5, ws.XP) // any non-"0" hours text counts as a logged night
}

func TestSummarizeKeepsNewestWeeks(t *testing.T) {
	st := journal.NewAppState("2024-01-01")
	for i := 1; i < 12; i++ {
		k := week.Shift("2024-01-01", i)
		rec := st.Record(k)
		rec.Trackers.Mood = journal.MoodGood
		rec.Trackers.Sleep[0].Hours = fmt.Sprint(6 + i%3)
	}

	sum := Summarize(st, 0, engine.Engine{})
	require.Len(t, sum.Weeks, DefaultWeeks)
	assert.Equal(t, week.Shift("2024-01-01", 4), sum.Weeks[0].Key)
	assert.Equal(t, week.Shift("2024-01-01", 11), sum.Weeks[DefaultWeeks-1].Key)
	assert.Equal(t, 4.0, sum.AvgMood)
	assert.Equal(t, 0.0, sum.AvgCompletion)

	sum = Summarize(st, 3, engine.Engine{})
	require.Len(t, sum.Weeks, 3)
	// weeks 9, 10, 11 log 6, 7 and 8 hours
	assert.Equal(t, 7.0, sum.AvgSleep)
	assert.Equal(t, 3*(5+10), sum.TotalXP)
}

func TestSummarizeEmptyWeeks(t *testing.T) {
	st := journal.NewAppState("2024-06-10")
	sum := Summarize(st, 4, engine.Engine{})
	require.Len(t, sum.Weeks, 1)
	assert.Zero(t, sum.AvgSleep)
	assert.Zero(t, sum.AvgMood)
	assert.Zero(t, sum.Weeks[0].Completion)
}
