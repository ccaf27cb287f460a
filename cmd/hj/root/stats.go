package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habitjournal/internal/stats"
	"habitjournal/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recent weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, e, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			n := weeks
			if !cmd.Flags().Changed("weeks") {
				n = e.cfg.StatsWeeks
			}
			sum := stats.Summarize(svc.State(), n, svc.Engine())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, fmt.Sprintf("Last %d weeks", len(sum.Weeks))))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%-8s %6s %5s %6s %6s %6s %6s %5s", "Week", "Sleep", "Mood", "Tasks", "Water", "Meals", "Focus", "XP")))
			for _, w := range sum.Weeks {
				mood := "–"
				if w.MoodScore > 0 {
					mood = fmt.Sprint(w.MoodScore)
				}
				sleep := "–"
				if w.SleepNights > 0 {
					sleep = fmt.Sprintf("%.1f", w.AvgSleep)
				}
				fmt.Fprintf(out, "%-8s %6s %5s %5d%% %4d/7 %4d/4 %6d %5d\n",
					w.Label, sleep, mood, w.Completion, w.WaterDays, w.Meals, w.FocusSessions, w.XP)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("Avg sleep", fmt.Sprintf("%.1f h", sum.AvgSleep)))
			fmt.Fprintln(out, ui.LabelValue("Avg mood", fmt.Sprintf("%.1f / 5", sum.AvgMood)))
			fmt.Fprintln(out, ui.LabelValue("Avg tasks", fmt.Sprintf("%.0f%%", sum.AvgCompletion)))
			fmt.Fprintln(out, ui.LabelValue("XP", sum.TotalXP))
			return nil
		},
	}
	cmd.Flags().IntVarP(&weeks, "weeks", "w", stats.DefaultWeeks, "How many stored weeks to cover")
	return cmd
}
