package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitjournal/internal/config"
	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/pomodoro"
	"habitjournal/internal/storage"
)

func newTestBoard(t *testing.T) boardModel {
	t.Helper()
	svc, err := engine.Open(context.Background(), storage.NewMemoryStore(), engine.Options{
		Logger: zerolog.Nop(),
		Now:    func() time.Time { return time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	timer := pomodoro.New(time.Second, time.Second)
	return newBoardModel(context.Background(), svc, timer, config.DefaultConfig().KeyBindings)
}

func press(t *testing.T, m boardModel, keys ...string) boardModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(boardModel)
	}
	return m
}

func TestBoardCyclesSelectedDay(t *testing.T) {
	m := press(t, newTestBoard(t), "right", "right", " ")
	assert.Equal(t, journal.StatusCheck, m.rec.Tasks[0].Days[2])
	assert.Equal(t, 10, m.svc.Profile().XP)

	m = press(t, m, " ")
	assert.Equal(t, journal.StatusCross, m.rec.Tasks[0].Days[2])
	assert.Equal(t, 0, m.svc.Profile().XP)
}

func TestBoardWaterRow(t *testing.T) {
	m := press(t, newTestBoard(t), "down", "down", " ")
	require.Equal(t, m.waterRow(), m.row, "cursor stops on the water row")
	assert.True(t, m.rec.Trackers.Water[0])

	m = press(t, m, "w")
	assert.False(t, m.rec.Trackers.Water[0])
}

func TestBoardNavigatesWeeks(t *testing.T) {
	m := press(t, newTestBoard(t), "]")
	assert.Equal(t, "2024-06-17", m.svc.CurrentWeek().String())
	m = press(t, m, "[", "[")
	assert.Equal(t, "2024-06-03", m.svc.CurrentWeek().String())
	m = press(t, m, "t")
	assert.Equal(t, "2024-06-10", m.svc.CurrentWeek().String())
}

func TestBoardFocusTimerCompletesSession(t *testing.T) {
	m := press(t, newTestBoard(t), "p")
	require.True(t, m.timer.Running())

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(boardModel)
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	assert.Equal(t, 1, m.rec.Trackers.FocusSessions)
	assert.Equal(t, pomodoro.PhaseBreak, m.timer.Phase())

	m = press(t, m, "R")
	assert.False(t, m.timer.Running())
	assert.Equal(t, pomodoro.PhaseWork, m.timer.Phase())
}

func TestBoardIgnoresOwnWrites(t *testing.T) {
	m := press(t, newTestBoard(t), " ")
	m.lastLog = "kept"
	next, _ := m.Update(fileChangedMsg{path: "x"})
	assert.Equal(t, "kept", next.(boardModel).lastLog)

	m.lastSave = time.Now().Add(-time.Minute)
	next, _ = m.Update(fileChangedMsg{path: "x"})
	assert.Contains(t, next.(boardModel).lastLog, "reloaded")
}

func TestBoardView(t *testing.T) {
	m := newTestBoard(t)
	_, err := m.svc.AddTask(context.Background(), "Meditate every single morning before coffee")
	require.NoError(t, err)
	m.refresh()

	view := m.View()
	for _, want := range []string{"Habit Journal", "Jun 10 – Jun 16", "Mon", "Sun", "Water", "Sleep", "LVL 1", "Meditate"} {
		assert.Contains(t, view, want)
	}
	assert.False(t, strings.Contains(view, "Meditate every single morning before coffee"), "long task names are truncated")
}

func TestCellWidth(t *testing.T) {
	for _, s := range []string{"", "abc", "a very long task name indeed"} {
		assert.Equal(t, 8, len([]rune(cell(s, 8))), "cell(%q)", s)
	}
}

func TestCellPadsEmptyInput(t *testing.T) {
	assert.Equal(t, strings.Repeat(" ", 8), cell("", 8))
}

func TestGridHeaderLinesUpWithDays(t *testing.T) {
	m := newTestBoard(t)
	header := strings.SplitN(m.renderGrid(), "\n", 2)[0]
	indent := taskColWidth + 2
	require.Greater(t, len(header), indent)
	assert.Equal(t, strings.Repeat(" ", indent), header[:indent])
	assert.True(t, strings.HasPrefix(strings.TrimLeft(header, " "), "Mon"))
}
