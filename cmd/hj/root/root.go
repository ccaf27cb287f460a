package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"habitjournal/internal/ui"
)

const Version = "0.1.0"

type globalFlags struct {
	configPath string
	dataPath   string
	backend    string
	logLevel   string
}

var flags globalFlags

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hj",
		Short:         "Habit Journal: a weekly habit tracker with levels and streaks",
		Long:          "hj keeps a weekly journal of tasks, sleep, water, meals and mood, and turns it into XP, levels and streaks.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: search $HJ_CONFIG, XDG and home)")
	pf.StringVar(&flags.dataPath, "data", "", "Data file (sqlite) or directory (file backend)")
	pf.StringVar(&flags.backend, "backend", "", "Storage backend: sqlite, file or memory")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newStatusCmd(),
		newWeekCmd(),
		newTaskCmd(),
		newTrackCmd(),
		newStatsCmd(),
		newFocusCmd(),
		newBoardCmd(),
		newDBCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hj v%s\n", Version)
		},
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
