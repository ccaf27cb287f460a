package root

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/ui"
	"habitjournal/internal/week"
)

// parseIndex turns a 1-based index typed by the user into a 0-based one.
func parseIndex(kind, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, journal.ParseError{Kind: kind, Input: s}
	}
	return n - 1, nil
}

func printXP(w io.Writer, res engine.Result) {
	if res.XP == 0 {
		return
	}
	fmt.Fprintln(w, ui.Muted.Render(fmt.Sprintf("%d XP · level %d · streak %d", res.XP, res.LevelAfter, res.Streak)))
}

func printWeek(w io.Writer, key week.Key, rec journal.WeekRecord) {
	title := week.Label(key)
	if rec.WeekOf != "" {
		title += "  " + ui.Muted.Render("("+rec.WeekOf+")")
	}
	fmt.Fprintln(w, ui.Heading(ui.IconJournal, title))

	fmt.Fprintf(w, "%-4s %-28s", "", "")
	for _, d := range journal.DayNames {
		fmt.Fprintf(w, " %-3s", d)
	}
	fmt.Fprintln(w)
	if days := key.Days(); days != nil {
		fmt.Fprintf(w, "%-4s %-28s", "", "")
		for _, d := range days {
			fmt.Fprintf(w, " %-3s", ui.Muted.Render(d.Format("2")))
		}
		fmt.Fprintln(w)
	}

	if len(rec.Tasks) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("  No tasks. Add one with `hj task add` or `hj task template`."))
	}
	for i, t := range rec.Tasks {
		text := t.Text
		if len([]rune(text)) > 28 {
			text = string([]rune(text)[:27]) + "…"
		}
		fmt.Fprintf(w, "%3d. %-28s", i+1, text)
		for _, s := range t.Days {
			fmt.Fprintf(w, "  %s ", ui.DayCell(s))
		}
		fmt.Fprintln(w)
	}

	tr := rec.Trackers
	fmt.Fprintf(w, "%-4s %-28s", "", ui.IconWater+" Water")
	for _, on := range tr.Water {
		fmt.Fprintf(w, "  %s ", ui.Bool(on))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-4s %-28s", "", ui.IconSleep+" Sleep")
	for _, s := range tr.Sleep {
		h := s.Hours
		if h == "" {
			h = "·"
		}
		fmt.Fprintf(w, " %-3s", h)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	var meals []string
	for _, m := range journal.Meals {
		if tr.Food.Get(m) {
			meals = append(meals, m)
		}
	}
	fmt.Fprintln(w, ui.LabelValue(ui.IconFood+" Meals", orDash(strings.Join(meals, ", "))))
	fmt.Fprintln(w, ui.LabelValue("Mood", ui.MoodIcon(tr.Mood)+" "+tr.Mood.String()))
	fmt.Fprintln(w, ui.LabelValue("Weather", orDash(tr.Weather)))
	fmt.Fprintln(w, ui.LabelValue("Highlight", orDash(tr.UniqueEvent)))
	fitness := strings.TrimSpace(strings.Join([]string{tr.Fitness.Type, tr.Fitness.Duration}, " "))
	fmt.Fprintln(w, ui.LabelValue("Fitness", orDash(fitness)))
	if tr.FocusSessions > 0 {
		fmt.Fprintln(w, ui.LabelValue(ui.IconTomato+" Focus", tr.FocusSessions))
	}
	if len(tr.Appointments) > 0 {
		fmt.Fprintln(w, ui.H2.Render("Appointments"))
		for i, a := range tr.Appointments {
			fmt.Fprintf(w, "  %d. %-8s %s\n", i+1, a.Time, a.Event)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return ui.Muted.Render("–")
	}
	return s
}
