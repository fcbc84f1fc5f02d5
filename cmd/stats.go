package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/activity"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
	"github.com/twiced-technology-gmbh/flowdo/internal/watcher"
)

// tuiLogFileName receives log output while the TUI owns the terminal.
const tuiLogFileName = "flowdo.log"

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"summary"},
	Short:   "Show list statistics",
	Long: `Displays item counts: active, done and total, broken down by priority.

Use --watch to keep the display live-updating whenever the list changes on disk
(e.g. from another terminal). Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolP("watch", "w", false, "live-update on file changes")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := renderStats(s); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); !watch {
		return nil
	}
	return watchStats(s)
}

func renderStats(s *session) error {
	stats := view.Summarize(s.app.Items())

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, stats)
	case output.FormatCompact:
		output.StatsCompact(os.Stdout, s.cfg.Name, stats)
	default:
		output.StatsTable(os.Stdout, s.cfg.Name, stats)
	}
	return nil
}

func watchStats(s *session) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	w, err := watcher.New([]string{s.cfg.Dir()}, func() {
		mu.Lock()
		defer mu.Unlock()
		s.app.Reload()
		clearScreen()
		if renderErr := renderStats(s); renderErr != nil {
			logger.Warn("rendering stats", "err", renderErr)
		}
	}, watcher.WithIgnore(dataDirIgnore()))
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer w.Close()

	fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl+C to stop)")

	w.Run(ctx, func(watchErr error) {
		logger.Warn("file watcher", "err", watchErr)
	})

	return nil
}

// dataDirIgnore skips files flowdo writes that do not hold items.
func dataDirIgnore() func(string) bool {
	return watcher.IgnoreNames(activity.FileName, tuiLogFileName, "flowdo.db-shm")
}

// clearScreen sends ANSI escape codes to clear the terminal and move the
// cursor to the top-left corner.
func clearScreen() {
	fmt.Fprint(os.Stdout, "\033[2J\033[H")
}
