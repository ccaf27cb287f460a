package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"habitjournal/internal/engine"
	"habitjournal/internal/pomodoro"
	"habitjournal/internal/storage"
)

type Options struct {
	Timer    *pomodoro.Timer
	Bindings map[string]string
	// Watch reloads the board when the data file changes on disk.
	Watch  bool
	Logger zerolog.Logger
}

func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer, opts Options) error {
	m := newBoardModel(ctx, svc, opts.Timer, opts.Bindings)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))

	if w, ok := svc.Store().(storage.Watchable); ok && opts.Watch {
		fw, err := storage.NewWatcher(opts.Logger, storage.DefaultDebounce, func(path string) {
			p.Send(fileChangedMsg{path: path})
		})
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("file watching disabled")
		} else {
			defer fw.Close()
			if err := fw.Add(w.WatchPath(engine.StateKey)); err != nil {
				opts.Logger.Warn().Err(err).Msg("file watching disabled")
			}
		}
	}

	_, err := p.Run()
	return err
}
