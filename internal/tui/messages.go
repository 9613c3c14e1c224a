package tui

import (
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// EvaluatedMsg carries a fresh evaluation and the profile it belongs to
type EvaluatedMsg struct {
	Eval    service.Evaluation
	Profile domain.Profile
}

// ClaimedMsg signals that one or more milestones were claimed
type ClaimedMsg struct {
	Results []service.ClaimResult
}

// SnapshotChangedMsg signals the collection file changed on disk
type SnapshotChangedMsg struct{}

// watchClosedMsg signals the change channel closed
type watchClosedMsg struct{}

// ClearStatusMsg clears the status line if it is still showing message Seq
type ClearStatusMsg struct {
	Seq int
}
