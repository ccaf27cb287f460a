package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitjournal/internal/journal"
)

// Journal look (CLI + TUI): a palette per unlockable theme and the styles
// built from it.

const (
	IconJournal = "📓"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconWater   = "💧"
	IconSleep   = "😴"
	IconFood    = "🍽"
	IconTomato  = "🍅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconLock    = "🔒"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Good    lipgloss.Color
	Warn    lipgloss.Color
	Bad     lipgloss.Color
	Muted   lipgloss.Color
	Gold    lipgloss.Color
}

var Palettes = map[string]Palette{
	"classic":  {Primary: "63", Accent: "205", Good: "42", Warn: "214", Bad: "196", Muted: "244", Gold: "220"},
	"midnight": {Primary: "69", Accent: "141", Good: "79", Warn: "179", Bad: "167", Muted: "240", Gold: "229"},
	"forest":   {Primary: "28", Accent: "107", Good: "34", Warn: "136", Bad: "124", Muted: "101", Gold: "178"},
	"sakura":   {Primary: "175", Accent: "218", Good: "150", Warn: "216", Bad: "161", Muted: "182", Gold: "224"},
	"retro":    {Primary: "46", Accent: "51", Good: "46", Warn: "226", Bad: "201", Muted: "34", Gold: "226"},
	"gilded":   {Primary: "178", Accent: "220", Good: "143", Warn: "208", Bad: "160", Muted: "137", Gold: "226"},
}

var (
	Title lipgloss.Style
	H2    lipgloss.Style
	Muted lipgloss.Style
	Key   lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style
	Gold  lipgloss.Style

	Panel       lipgloss.Style
	SelectedRow lipgloss.Style

	BadgeLevelUp string

	current = "classic"
)

func init() {
	UseTheme("classic")
}

// UseTheme rebuilds the styles from the named palette. Unknown names keep
// the current theme and return false.
func UseTheme(name string) bool {
	p, ok := Palettes[name]
	if !ok {
		return false
	}
	current = name

	Title = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	H2 = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	Muted = lipgloss.NewStyle().Foreground(p.Muted)
	Key = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	Good = lipgloss.NewStyle().Bold(true).Foreground(p.Good)
	Warn = lipgloss.NewStyle().Bold(true).Foreground(p.Warn)
	Bad = lipgloss.NewStyle().Bold(true).Foreground(p.Bad)
	Gold = lipgloss.NewStyle().Bold(true).Foreground(p.Gold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.Muted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(p.Gold).Background(p.Primary)

	BadgeLevelUp = Gold.Render("LEVEL UP")
	return true
}

// CurrentTheme names the palette in use.
func CurrentTheme() string { return current }

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// DayGlyph is the bare one-cell mark for a day status.
func DayGlyph(s journal.DayStatus) string {
	switch s {
	case journal.StatusCheck:
		return "✓"
	case journal.StatusCross:
		return "✗"
	case journal.StatusNotApplicable:
		return "–"
	default:
		return "·"
	}
}

// DayCell renders a day status with its color.
func DayCell(s journal.DayStatus) string {
	g := DayGlyph(s)
	switch s {
	case journal.StatusCheck:
		return Good.Render(g)
	case journal.StatusCross:
		return Bad.Render(g)
	default:
		return Muted.Render(g)
	}
}

func MoodIcon(m journal.Mood) string {
	switch m {
	case journal.MoodRad:
		return "🤩"
	case journal.MoodGood:
		return "🙂"
	case journal.MoodMeh:
		return "😐"
	case journal.MoodBad:
		return "🙁"
	case journal.MoodAwful:
		return "😫"
	default:
		return "·"
	}
}

// Bool renders a tracker flag.
func Bool(on bool) string {
	if on {
		return Good.Render("●")
	}
	return Muted.Render("○")
}

// ProgressBar draws fraction (0..1) as a bar of width cells.
func ProgressBar(fraction float64, width int) string {
	if width < 3 {
		width = 3
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + Gold.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled)) + "]"
}
