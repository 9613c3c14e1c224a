package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/service"
)

const statusTimeout = 4 * time.Second

// Evaluator is the progression surface the TUI drives
type Evaluator interface {
	Evaluate(ctx context.Context) (service.Evaluation, error)
	Claim(ctx context.Context, id string) (service.ClaimResult, error)
	ClaimAll(ctx context.Context) ([]service.ClaimResult, error)
}

// ProfileLoader supplies the header identity
type ProfileLoader interface {
	Load() (domain.Profile, error)
}

func evaluateCmd(ctx context.Context, ev Evaluator, profiles ProfileLoader) tea.Cmd {
	return func() tea.Msg {
		eval, err := ev.Evaluate(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "evaluate"}
		}
		var p domain.Profile
		if profiles != nil {
			if p, err = profiles.Load(); err != nil {
				return ErrMsg{Err: err, Context: "load profile"}
			}
		}
		return EvaluatedMsg{Eval: eval, Profile: p}
	}
}

func claimCmd(ctx context.Context, ev Evaluator, id string) tea.Cmd {
	return func() tea.Msg {
		res, err := ev.Claim(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "claim " + id}
		}
		return ClaimedMsg{Results: []service.ClaimResult{res}}
	}
}

func claimAllCmd(ctx context.Context, ev Evaluator) tea.Cmd {
	return func() tea.Msg {
		res, err := ev.ClaimAll(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "claim all"}
		}
		return ClaimedMsg{Results: res}
	}
}

// waitForChange blocks on the snapshot watcher
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return watchClosedMsg{}
		}
		return SnapshotChangedMsg{}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
