package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitjournal/internal/engine"
	"habitjournal/internal/ui"
	"habitjournal/internal/week"
)

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show or change the current week",
		Args:  cobra.NoArgs,
		RunE:  runWeekShow,
	}

	show := &cobra.Command{
		Use:   "show [week]",
		Short: "Print a week (default: the current week)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWeekShow,
	}

	nav := func(use, short string, move func(ctx context.Context, svc *engine.Service) (engine.Result, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, _, cleanup, err := openService(ctx, cmd)
				if err != nil {
					return err
				}
				defer cleanup()
				if _, err := move(ctx, svc); err != nil {
					return err
				}
				return showCurrent(cmd, svc)
			},
		}
	}

	next := nav("next", "Move to the following week", func(ctx context.Context, svc *engine.Service) (engine.Result, error) {
		return svc.Navigate(ctx, 1)
	})
	prev := nav("prev", "Move to the previous week", func(ctx context.Context, svc *engine.Service) (engine.Result, error) {
		return svc.Navigate(ctx, -1)
	})
	today := nav("today", "Jump to this week", func(ctx context.Context, svc *engine.Service) (engine.Result, error) {
		return svc.Today(ctx)
	})

	goTo := &cobra.Command{
		Use:   "goto <YYYY-MM-DD>",
		Short: "Jump to the week containing a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := svc.GoTo(ctx, week.Key(args[0])); err != nil {
				return err
			}
			return showCurrent(cmd, svc)
		},
	}

	label := &cobra.Command{
		Use:   "label <text>",
		Short: "Set the free-text label of the current week",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := svc.SetWeekLabel(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Label saved"))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()
			st := svc.State()
			eng := svc.Engine()
			for _, k := range st.SortedKeys() {
				rec, err := svc.Record(k)
				if err != nil {
					return err
				}
				marker := " "
				if k == st.CurrentWeek {
					marker = ui.Key.Render("›")
				}
				fmt.Fprintf(out, "%s %s  %3d XP  %d tasks  %s\n", marker, k, eng.WeekXP(&rec), len(rec.Tasks), ui.Muted.Render(rec.WeekOf))
			}
			return nil
		},
	}

	cmd.AddCommand(show, next, prev, today, goTo, label, list)
	return cmd
}

func runWeekShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, _, cleanup, err := openService(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		return showCurrent(cmd, svc)
	}
	key, err := week.Parse(args[0])
	if err != nil {
		return err
	}
	rec, err := svc.Record(key)
	if err != nil {
		return err
	}
	printWeek(cmd.OutOrStdout(), key, rec)
	return nil
}

func showCurrent(cmd *cobra.Command, svc *engine.Service) error {
	rec, err := svc.Current()
	if err != nil {
		return err
	}
	printWeek(cmd.OutOrStdout(), svc.CurrentWeek(), rec)
	return nil
}
