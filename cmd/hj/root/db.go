package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"habitjournal/internal/config"
	"habitjournal/internal/engine"
	"habitjournal/internal/logging"
	"habitjournal/internal/storage"
	"habitjournal/internal/ui"
)

// env is the resolved configuration shared by every command.
type env struct {
	cfg     *config.Config
	log     zerolog.Logger
	backend storage.Backend
	path    string
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	log, err := logging.Stderr(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	backend, err := storage.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	path := flags.dataPath
	if path == "" {
		path, err = storage.ResolveDBPath(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		// The file backend wants a directory; derive it from the default file.
		if backend == storage.BackendFile && cfg.DataPath == "" && os.Getenv(storage.DataPathEnv) == "" {
			path = strings.TrimSuffix(path, ".db")
		}
	}
	return &env{cfg: cfg, log: log, backend: backend, path: path}, nil
}

// cliNotifier prints gamification events as they happen.
type cliNotifier struct {
	out io.Writer
}

func (n cliNotifier) LevelUp(from, to int) {
	fmt.Fprintf(n.out, "%s %s level %d → %d\n", ui.IconTrophy, ui.BadgeLevelUp, from, to)
}

func (n cliNotifier) ThemeUnlocked(name string) {
	fmt.Fprintf(n.out, "%s Theme unlocked: %s\n", ui.IconSparkle, ui.Gold.Render(name))
}

func openService(ctx context.Context, cmd *cobra.Command) (*engine.Service, *env, func(), error) {
	e, err := loadEnv()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := storage.Open(ctx, e.backend, e.path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}

	svc, err := engine.Open(ctx, store, engine.Options{
		Engine:   engine.Engine{FocusSessionXP: e.cfg.FocusBonusXP},
		Logger:   e.log,
		Notifier: cliNotifier{out: cmd.OutOrStdout()},
	})
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	applyTheme(svc, e.cfg.Theme, e.log)
	return svc, e, cleanup, nil
}

// applyTheme switches to theme when it is unlocked, otherwise stays classic.
func applyTheme(svc *engine.Service, theme string, log zerolog.Logger) {
	if err := engine.CanUseTheme(svc.Profile(), theme); err != nil {
		log.Warn().Err(err).Msg("using classic theme")
		ui.UseTheme(engine.DefaultTheme)
		return
	}
	if theme == "" {
		theme = engine.DefaultTheme
	}
	ui.UseTheme(theme)
}

func newDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db",
		Short: "Show where the journal is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			store, err := storage.Open(context.Background(), e.backend, e.path)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Backend", e.backend))
			path := ui.Muted.Render("(in memory)")
			if located, ok := store.(interface{ Path() string }); ok {
				path = located.Path()
			}
			fmt.Fprintln(out, ui.LabelValue("Path", path))
			source := e.cfg.Source
			if source == "" {
				source = ui.Muted.Render("(defaults)")
			}
			fmt.Fprintln(out, ui.LabelValue("Config", source))
			return nil
		},
	}
}
