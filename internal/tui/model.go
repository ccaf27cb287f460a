package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/pomodoro"
	"habitjournal/internal/ui"
	"habitjournal/internal/week"
)

const (
	taskColWidth = 22
	dayColWidth  = 4
	// Change notifications this soon after our own save are echoes of it.
	selfWriteWindow = time.Second
)

// boardModel drives the service from Update only; the service is not safe
// for concurrent use, so no service call happens inside a tea.Cmd.
type boardModel struct {
	ctx   context.Context
	svc   *engine.Service
	timer *pomodoro.Timer
	keys  map[string]string // key -> action

	width  int
	height int

	rec journal.WeekRecord
	row int // task rows, then the water row
	col int // day, 0 = Monday

	lastSave time.Time
	lastLog  string
	err      error
}

type tickMsg time.Time

type fileChangedMsg struct{ path string }

func newBoardModel(ctx context.Context, svc *engine.Service, timer *pomodoro.Timer, bindings map[string]string) boardModel {
	keys := map[string]string{}
	for action, key := range bindings {
		keys[key] = action
	}
	m := boardModel{
		ctx:     ctx,
		svc:     svc,
		timer:   timer,
		keys:    keys,
		lastLog: "Loaded.",
	}
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *boardModel) refresh() {
	rec, err := m.svc.Current()
	if err != nil {
		m.err = err
		return
	}
	m.rec = rec
	if m.row > m.waterRow() {
		m.row = m.waterRow()
	}
}

func (m boardModel) waterRow() int { return len(m.rec.Tasks) }

// apply runs one service call and records its outcome in the footer.
func (m *boardModel) apply(done string, fn func() (engine.Result, error)) {
	res, err := fn()
	if err != nil {
		m.lastLog = "Error: " + err.Error()
		m.refresh()
		return
	}
	m.lastSave = time.Now()
	m.lastLog = done
	if res.LevelUp {
		m.lastLog = fmt.Sprintf("%s  %s level %d → %d", done, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
	if len(res.NewThemes) > 0 {
		m.lastLog += "  " + ui.IconSparkle + " unlocked " + strings.Join(res.NewThemes, ", ")
	}
	m.refresh()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.timer != nil {
			switch m.timer.Tick(time.Second) {
			case pomodoro.EventWorkDone:
				m.apply(ui.IconTomato+" Focus session complete, take a break.", func() (engine.Result, error) {
					return m.svc.CompleteFocusSession(m.ctx)
				})
			case pomodoro.EventBreakDone:
				m.lastLog = "Break over, back to work."
			}
		}
		return m, tick()

	case fileChangedMsg:
		if time.Since(m.lastSave) < selfWriteWindow {
			return m, nil
		}
		m.reload("Journal changed on disk, reloaded.")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *boardModel) reload(done string) {
	if err := m.svc.Reload(m.ctx); err != nil {
		m.lastLog = "Reload failed: " + err.Error()
		return
	}
	m.lastLog = done
	m.refresh()
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
		return m, nil
	case "down", "j":
		if m.row < m.waterRow() {
			m.row++
		}
		return m, nil
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
		return m, nil
	case "right", "l":
		if m.col < week.Days-1 {
			m.col++
		}
		return m, nil
	}

	day := m.col
	switch m.keys[k] {
	case "quit":
		return m, tea.Quit
	case "cycle":
		if m.row == m.waterRow() {
			m.apply("Water toggled.", func() (engine.Result, error) { return m.svc.ToggleWater(m.ctx, day) })
			return m, nil
		}
		row := m.row
		m.apply("Day updated.", func() (engine.Result, error) {
			_, res, err := m.svc.CycleDay(m.ctx, row, day)
			return res, err
		})
	case "water":
		m.apply("Water toggled.", func() (engine.Result, error) { return m.svc.ToggleWater(m.ctx, day) })
	case "prev_week":
		m.apply("Previous week.", func() (engine.Result, error) { return m.svc.Navigate(m.ctx, -1) })
	case "next_week":
		m.apply("Next week.", func() (engine.Result, error) { return m.svc.Navigate(m.ctx, 1) })
	case "today":
		m.apply("This week.", func() (engine.Result, error) { return m.svc.Today(m.ctx) })
	case "focus":
		if m.timer != nil {
			if m.timer.Toggle() {
				m.lastLog = "Focus timer running."
			} else {
				m.lastLog = "Focus timer paused."
			}
		}
	case "focus_reset":
		if m.timer != nil {
			m.timer.Reset()
			m.lastLog = "Focus timer reset."
		}
	case "reload":
		m.reload(fmt.Sprintf("Reloaded at %s.", time.Now().Format("15:04:05")))
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	sections := []string{
		m.renderHeader(),
		m.renderGrid(),
		m.renderTrackers(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (m boardModel) renderHeader() string {
	p := m.svc.Profile()
	prog := engine.ProgressFor(p.XP)
	key := m.svc.CurrentWeek()

	title := ui.Heading(ui.IconJournal, "Habit Journal")
	weekLine := ui.H2.Render(week.Label(key))
	if m.rec.WeekOf != "" {
		weekLine += " " + ui.Muted.Render(m.rec.WeekOf)
	}
	stats := fmt.Sprintf("LVL %d %s %d XP  %s %d (best %d)",
		prog.Level, ui.ProgressBar(prog.Fraction(), 20), p.XP, ui.IconFire, p.StreakDays, p.LongestStreak)
	return title + "  " + weekLine + "\n" + stats + "  " + m.renderTimer()
}

func (m boardModel) renderTimer() string {
	if m.timer == nil {
		return ""
	}
	state := "⏸"
	if m.timer.Running() {
		state = "▶"
	}
	return fmt.Sprintf("%s %s %s %s", ui.IconTomato, m.timer.Phase(), m.timer, state)
}

func (m boardModel) renderGrid() string {
	var b strings.Builder
	b.WriteString(cell("", taskColWidth+2))
	for i, name := range journal.DayNames {
		label := padding.String(name, dayColWidth)
		if i == m.col {
			label = ui.Key.Render(label)
		}
		b.WriteString(label)
	}
	b.WriteString("\n")

	for i, t := range m.rec.Tasks {
		text := t.Text
		if text == "" {
			text = ui.Muted.Render("(untitled)")
		}
		cells := make([]string, len(t.Days))
		for d, s := range t.Days {
			cells[d] = ui.DayCell(s)
		}
		b.WriteString(m.gridRow(i, text, cells))
		b.WriteString("\n")
	}

	water := make([]string, len(m.rec.Trackers.Water))
	for d, on := range m.rec.Trackers.Water {
		water[d] = ui.Bool(on)
	}
	b.WriteString(m.gridRow(m.waterRow(), ui.IconWater+" Water", water))
	b.WriteString("\n")

	sleep := make([]string, len(m.rec.Trackers.Sleep))
	for d, night := range m.rec.Trackers.Sleep {
		sleep[d] = ui.Muted.Render("·")
		if night.Logged() {
			sleep[d] = night.Hours
		}
	}
	b.WriteString(m.gridRow(-1, ui.IconSleep+" Sleep", sleep))
	return b.String()
}

func (m boardModel) gridRow(row int, label string, cells []string) string {
	cursor := "  "
	if row == m.row {
		cursor = ui.Gold.Render("> ")
	}
	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(cell(label, taskColWidth))
	for d, c := range cells {
		c = cell(c, dayColWidth)
		if row == m.row && d == m.col {
			c = ui.SelectedRow.Render(c)
		}
		b.WriteString(c)
	}
	return b.String()
}

// cell fits s into exactly width terminal columns. padding.String leaves
// empty input empty, so the fill is computed here.
func cell(s string, width int) string {
	s = truncate.StringWithTail(s, uint(width-1), "…")
	if gap := width - ansi.PrintableRuneWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func (m boardModel) renderTrackers() string {
	tr := m.rec.Trackers
	var meals []string
	for _, meal := range journal.Meals {
		mark := ui.Bool(tr.Food.Get(meal))
		meals = append(meals, mark+" "+meal)
	}

	weather := tr.Weather
	if weather == "" {
		weather = ui.Muted.Render("—")
	}
	lines := []string{
		ui.LabelValue("Mood", ui.MoodIcon(tr.Mood)+" "+tr.Mood.String()) + "   " + ui.LabelValue("Weather", weather),
		ui.LabelValue(ui.IconFood+" Meals", strings.Join(meals, "  ")),
	}
	if tr.Fitness.Type != "" || tr.Fitness.Duration != "" {
		lines = append(lines, ui.LabelValue("Fitness", strings.TrimSpace(tr.Fitness.Type+" "+tr.Fitness.Duration)))
	}
	if tr.UniqueEvent != "" {
		lines = append(lines, ui.LabelValue("Event", m.wrap(tr.UniqueEvent, 7)))
	}
	for _, a := range tr.Appointments {
		lines = append(lines, "  "+ui.Key.Render(a.Time)+" "+m.wrap(a.Event, len(a.Time)+3))
	}
	if tr.FocusSessions > 0 {
		lines = append(lines, ui.LabelValue(ui.IconTomato+" Focus sessions", tr.FocusSessions))
	}
	return strings.Join(lines, "\n")
}

// wrap word-wraps s to the window width minus indent.
func (m boardModel) wrap(s string, indent int) string {
	width := 72
	if m.width > 0 {
		width = m.width
	}
	width -= indent
	if width < 20 {
		width = 20
	}
	return strings.ReplaceAll(wordwrap.String(s, width), "\n", "\n"+strings.Repeat(" ", indent))
}

func (m boardModel) renderFooter() string {
	help := ui.Muted.Render("←↓↑→/hjkl move · space cycle · w water · [ ] week · t today · p focus · R reset · r reload · q quit")
	return help + "\n" + m.lastLog
}
