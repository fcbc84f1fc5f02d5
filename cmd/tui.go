package cmd

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/logging"
	"github.com/twiced-technology-gmbh/flowdo/internal/tui"
	"github.com/twiced-technology-gmbh/flowdo/internal/watcher"
)

func runTUI(_ *cobra.Command, _ []string) error {
	// Resolve the directory first so logs go to a file, not the screen.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	fileLogger, closer, err := logging.OpenFile(filepath.Join(cfg.Dir(), tuiLogFileName), level)
	if err != nil {
		logger.Warn("file logging disabled", "err", err)
		fileLogger = logging.Discard()
	} else {
		defer closer.Close()
	}

	s, err := openSession(fileLogger)
	if err != nil {
		return err
	}
	defer s.Close()

	model := tui.New(s.app, tui.Options{
		Name:        s.cfg.Name,
		Priority:    item.ParsePriority(s.cfg.Defaults.Priority),
		ShowCreated: s.cfg.ShowCreated(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startTUIWatcher(ctx, s.cfg.Dir(), p, fileLogger)

	_, err = p.Run()
	return err
}

func startTUIWatcher(ctx context.Context, dir string, p *tea.Program, l *log.Logger) {
	w, err := watcher.New([]string{dir}, func() {
		p.Send(tui.ReloadMsg{})
	}, watcher.WithIgnore(dataDirIgnore()))
	if err != nil {
		l.Warn("live reload disabled", "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		l.Warn("file watcher", "err", err)
	})
}
