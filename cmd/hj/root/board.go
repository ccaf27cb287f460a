package root

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"habitjournal/internal/pomodoro"
	"habitjournal/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var (
		theme   string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive weekly board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, e, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if theme != "" {
				applyTheme(svc, theme, e.log)
			}
			return tui.RunBoard(ctx, svc, cmd.OutOrStdout(), tui.Options{
				Timer:    pomodoro.New(e.cfg.WorkDuration, e.cfg.BreakDuration),
				Bindings: e.cfg.KeyBindings,
				Watch:    e.cfg.Watch && !noWatch,
				Logger:   e.log,
			})
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "Color theme (must be unlocked)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when the data changes on disk")
	return cmd
}
