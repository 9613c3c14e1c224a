package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mmcdole/dextrack/internal/adapter/source"
	"github.com/mmcdole/dextrack/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive milestone board",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errors.WithHint(errors.New("the TUI needs an interactive terminal"), "use 'dextrack progress' or 'dextrack milestones' instead")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var changes <-chan struct{}
	if current.cfg.Collection.Watch {
		ch, err := source.Watch(ctx, current.source.Path(), current.logger)
		if err != nil {
			// keep running without live reload
			current.logger.Warn("snapshot watch unavailable", "error", err)
		} else {
			changes = ch
		}
	}

	model := tui.New(ctx, current.progress, current.profiles, tui.Options{
		DefaultTab: current.cfg.UI.DefaultTab,
		ShowLocked: current.cfg.UI.ShowLocked,
		Changes:    changes,
		Logger:     current.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	current.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		current.logger.Error("TUI error", "error", err)
		return errors.Wrap(err, "TUI error")
	}
	return nil
}
