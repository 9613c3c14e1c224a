package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
	"github.com/mmcdole/dextrack/internal/service"
	"github.com/mmcdole/dextrack/internal/tui/components"
)

// Layout proportions for category tabs
const (
	ListColumnPercent = 45
	MinColumnWidth    = 24

	// Tab bar + footer line
	ChromeHeight = 2
)

type tabSpec struct {
	name     string
	category domain.Category // empty for the overview
}

var tabs = []tabSpec{
	{name: "Overview"},
	{name: "Regions", category: domain.CategoryRegion},
	{name: "National", category: domain.CategoryNational},
	{name: "Vault", category: domain.CategoryVault},
	{name: "Types", category: domain.CategoryType},
}

// Options configures the TUI
type Options struct {
	DefaultTab string // "overview" or a category name
	ShowLocked bool
	Changes    <-chan struct{} // snapshot change notifications, may be nil
	Logger     *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	ctx       context.Context
	evaluator Evaluator
	profiles  ProfileLoader
	changes   <-chan struct{}
	logger    *slog.Logger

	keys     KeyMap
	help     help.Model
	showHelp bool

	// Data
	tab     int
	eval    service.Evaluation
	profile domain.Profile
	loaded  bool

	// UI Components
	list      *components.MilestoneList
	inspector *components.Inspector
	dashboard *components.Dashboard

	// Dimensions
	width  int
	height int

	// Status line
	status      string
	statusIsErr bool
	statusSeq   int
}

// New creates the root model
func New(ctx context.Context, ev Evaluator, profiles ProfileLoader, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		ctx:       ctx,
		evaluator: ev,
		profiles:  profiles,
		changes:   opts.Changes,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		tab:       tabIndex(opts.DefaultTab),
		list:      components.NewMilestoneList(opts.ShowLocked),
		inspector: components.NewInspector(),
		dashboard: components.NewDashboard(),
	}
}

func tabIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, t := range tabs {
		if name == strings.ToLower(t.name) || (t.category != "" && name == string(t.category)) {
			return i
		}
	}
	return 0
}

// Init starts the first evaluation and the snapshot watcher
func (m Model) Init() tea.Cmd {
	return tea.Batch(evaluateCmd(m.ctx, m.evaluator, m.profiles), waitForChange(m.changes))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case EvaluatedMsg:
		m.eval = msg.Eval
		m.profile = msg.Profile
		m.loaded = true
		m.refreshViews()
		return m, nil

	case ClaimedMsg:
		cmd := m.setStatus(claimSummary(msg.Results), false)
		return m, tea.Batch(cmd, evaluateCmd(m.ctx, m.evaluator, m.profiles))

	case ErrMsg:
		m.logger.Error("tui operation failed", "context", msg.Context, "error", msg.Err)
		text := msg.Error()
		if hint := errors.FlattenHints(msg.Err); hint != "" {
			text += " (" + hint + ")"
		}
		return m, m.setStatus(text, true)

	case SnapshotChangedMsg:
		m.logger.Debug("collection snapshot changed, re-evaluating")
		return m, tea.Batch(evaluateCmd(m.ctx, m.evaluator, m.profiles), waitForChange(m.changes))

	case watchClosedMsg:
		m.changes = nil
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterActive() {
		cmd := m.list.Update(msg)
		m.syncInspector()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab((m.tab + 1) % len(tabs))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab((m.tab + len(tabs) - 1) % len(tabs))
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, evaluateCmd(m.ctx, m.evaluator, m.profiles)

	case key.Matches(msg, m.keys.ClaimAll):
		return m, claimAllCmd(m.ctx, m.evaluator)
	}

	if m.onOverview() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Claim):
		v, ok := m.list.Selected()
		if !ok {
			return m, nil
		}
		switch v.Status {
		case domain.StatusClaimed:
			return m, m.setStatus(v.Title+" is already claimed", false)
		case domain.StatusLocked:
			return m, m.setStatus(v.Title+" is still locked", true)
		}
		return m, claimCmd(m.ctx, m.evaluator, v.ID)

	case key.Matches(msg, m.keys.Filter):
		return m, m.list.StartFilter()

	case key.Matches(msg, m.keys.Escape):
		m.list.ClearFilter()
		m.syncInspector()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLocked):
		m.list.ToggleLocked()
		m.syncInspector()
		return m, nil
	}

	cmd := m.list.Update(msg)
	m.syncInspector()
	return m, cmd
}

func (m *Model) onOverview() bool {
	return tabs[m.tab].category == ""
}

func (m *Model) switchTab(i int) {
	m.tab = i
	m.list.ClearFilter()
	m.refreshViews()
}

// setStatus shows text in the footer and schedules its removal
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusIsErr = isErr
	return clearStatusAfter(m.statusSeq)
}

func (m *Model) refreshViews() {
	counts := milestone.Counts(m.eval.Milestones)
	m.dashboard.SetData(components.DashboardData{
		Profile:           m.profile,
		Dex:               m.eval.Dex,
		Vault:             m.eval.Vault,
		MostCaughtSpecies: m.eval.MostCaughtSpecies,
		MostCaughtCount:   m.eval.MostCaughtCount,
		Unlocks:           m.eval.State.Unlocks,
		Claimable:         counts[domain.StatusClaimable],
		Claimed:           counts[domain.StatusClaimed],
		Total:             len(m.eval.Milestones),
	})

	if !m.onOverview() {
		tab := tabs[m.tab]
		views := make([]domain.MilestoneView, 0, len(m.eval.Milestones))
		for _, v := range m.eval.Milestones {
			if v.Category == tab.category {
				views = append(views, v)
			}
		}
		m.list.SetItems(tab.name, views)
	}
	m.syncInspector()
}

func (m *Model) syncInspector() {
	v, ok := m.list.Selected()
	m.inspector.SetMilestone(v, ok, m.eval.Signals())
}

func (m *Model) layout() {
	bodyHeight := m.height - ChromeHeight
	if m.showHelp {
		bodyHeight -= len(m.keys.FullHelp()[0])
	}
	bodyHeight = max(bodyHeight, 3)

	m.dashboard.SetSize(m.width, bodyHeight)

	listWidth := max(m.width*ListColumnPercent/100, MinColumnWidth)
	m.list.SetSize(listWidth, bodyHeight)
	m.inspector.SetSize(max(m.width-listWidth, MinColumnWidth), bodyHeight)
}

func claimSummary(results []service.ClaimResult) string {
	var fresh []service.ClaimResult
	for _, r := range results {
		if !r.AlreadyClaimed {
			fresh = append(fresh, r)
		}
	}
	switch len(fresh) {
	case 0:
		if len(results) == 1 {
			return results[0].Milestone.Title + " was already claimed"
		}
		return "Nothing to claim"
	case 1:
		return fmt.Sprintf("Claimed %s · %s", fresh[0].Milestone.Title, fresh[0].Milestone.Reward)
	default:
		return fmt.Sprintf("Claimed %d milestones", len(fresh))
	}
}
