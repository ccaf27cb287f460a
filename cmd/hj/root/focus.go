package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"habitjournal/internal/pomodoro"
	"habitjournal/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var (
		work, brk time.Duration
		count     int
	)

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a pomodoro timer; finished work phases count as focus sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, e, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("work") {
				work = e.cfg.WorkDuration
			}
			if !cmd.Flags().Changed("break") {
				brk = e.cfg.BreakDuration
			}
			timer := pomodoro.New(work, brk)
			out := cmd.OutOrStdout()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			done := 0
			var saveErr error
			fmt.Fprintf(out, "%s Focus %s / break %s. Ctrl+C to stop.\n", ui.IconTomato, pomodoro.Format(work), pomodoro.Format(brk))
			err = pomodoro.Run(ctx, timer, time.Second, func(ev pomodoro.Event) {
				switch ev {
				case pomodoro.EventWorkDone:
					done++
					res, err := svc.CompleteFocusSession(ctx)
					if err != nil {
						saveErr = err
						cancel()
						return
					}
					fmt.Fprintf(out, "\r%s Session %d done. Take a break.\n", ui.IconDone, done)
					printXP(out, res)
					if count > 0 && done >= count {
						cancel()
						return
					}
				case pomodoro.EventBreakDone:
					fmt.Fprintf(out, "\r%s Break over. Back to work.\n", ui.IconTomato)
				}
				fmt.Fprintf(out, "\r%-5s %s ", timer.Phase(), timer)
			})
			fmt.Fprintln(out)
			if saveErr != nil {
				return saveErr
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Sessions", done))
			return nil
		},
	}
	cmd.Flags().DurationVar(&work, "work", pomodoro.DefaultWork, "Work phase length")
	cmd.Flags().DurationVar(&brk, "break", pomodoro.DefaultBreak, "Break phase length")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Stop after n work sessions (0 runs until interrupted)")
	return cmd
}
