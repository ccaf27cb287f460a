package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/ui"
)

// runOnService opens the journal, runs fn and closes the store.
func runOnService(cmd *cobra.Command, fn func(ctx context.Context, svc *engine.Service) error) error {
	ctx := context.Background()
	svc, _, cleanup, err := openService(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, svc)
}

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks of the current week",
	}

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				text := strings.Join(args, " ")
				res, err := svc.AddTask(ctx, text)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s Added task: %s\n", ui.IconPlus, ui.Title.Render(strings.TrimSpace(text)))
				printXP(out, res)
				return nil
			})
		},
	}

	rm := &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"remove"},
		Short:   "Remove task n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex("task", args[0])
			if err != nil {
				return err
			}
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				if _, err := svc.RemoveTask(ctx, i); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Removed task %d\n", ui.IconDone, i+1)
				return nil
			})
		},
	}

	rename := &cobra.Command{
		Use:   "rename <n> <text>",
		Short: "Rename task n",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex("task", args[0])
			if err != nil {
				return err
			}
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				if _, err := svc.RenameTask(ctx, i, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Renamed task %d\n", ui.IconDone, i+1)
				return nil
			})
		},
	}

	move := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a task to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("task", args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex("task", args[1])
			if err != nil {
				return err
			}
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				if _, err := svc.MoveTask(ctx, from, to); err != nil {
					return err
				}
				return showCurrent(cmd, svc)
			})
		},
	}

	mark := &cobra.Command{
		Use:   "mark <n> <day> [status]",
		Short: "Set a task day to check, x, na or none (cycles when status is omitted)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex("task", args[0])
			if err != nil {
				return err
			}
			day, err := journal.ParseDay(args[1])
			if err != nil {
				return err
			}
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				out := cmd.OutOrStdout()
				var (
					status journal.DayStatus
					res    engine.Result
				)
				if len(args) == 3 {
					if status, err = journal.ParseDayStatus(args[2]); err != nil {
						return err
					}
					res, err = svc.SetDay(ctx, i, day, status)
				} else {
					status, res, err = svc.CycleDay(ctx, i, day)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Task %d %s: %s %s\n", i+1, journal.DayNames[day], ui.DayCell(status), status)
				printXP(out, res)
				return nil
			})
		},
	}

	template := &cobra.Command{
		Use:   "template [name]",
		Short: "Append a task template (lists templates without a name)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Templates"))
				for _, name := range journal.TemplateNames() {
					fmt.Fprintf(out, "  %s  %s\n", ui.Key.Render(name), ui.Muted.Render(strings.Join(journal.Templates[name], ", ")))
				}
				return nil
			}
			name := strings.Join(args, " ")
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				if _, err := svc.ApplyTemplate(ctx, name); err != nil {
					return err
				}
				return showCurrent(cmd, svc)
			})
		},
	}

	cmd.AddCommand(add, rm, rename, move, mark, template)
	return cmd
}
