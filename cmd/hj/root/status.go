package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habitjournal/internal/engine"
	"habitjournal/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak, themes and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p := svc.Profile()
			prog := engine.ProgressFor(p.XP)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Habit Journal"))
			fmt.Fprintln(out, ui.LabelValue("Level", prog.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d  (%d to level %d)", p.XP, prog.Remaining(), prog.Level+1)))
			fmt.Fprintln(out, "  "+ui.ProgressBar(prog.Fraction(), 30))
			fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Streak", fmt.Sprintf("%d weeks (longest %d)", p.StreakDays, p.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Week", svc.CurrentWeek()))

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render("Themes"))
			for _, name := range engine.ThemeNames() {
				if name == engine.DefaultTheme || p.HasTheme(name) {
					fmt.Fprintf(out, "  %s %s\n", ui.Good.Render("●"), name)
					continue
				}
				fmt.Fprintf(out, "  %s %s\n", ui.IconLock, ui.Muted.Render(fmt.Sprintf("%s (level %d)", name, engine.ThemeUnlockLevels[name])))
			}

			fmt.Fprintln(out)
			checker := engine.NewAchievementChecker(svc.State())
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("Achievements %d/%d", checker.CountEarned(), checker.CountTotal())))
			for _, a := range checker.GetAchievements() {
				switch {
				case a.Earned:
					fmt.Fprintf(out, "  %s %s %s\n", a.Icon, ui.Gold.Render(a.Name), ui.Muted.Render(a.Description))
				case showAll:
					fmt.Fprintf(out, "  %s %s %s\n", ui.IconLock, ui.Muted.Render(a.Name), ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Also list locked achievements")
	return cmd
}
