package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/search"
	"github.com/mmcdole/dextrack/internal/tui/styles"
)

// Layout constants for bordered panels
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Title line plus scroll indicators
	ListChromeLines = 3
)

// MilestoneList is a scrollable, filterable list of milestone views.
type MilestoneList struct {
	views   []domain.MilestoneView
	results []search.Result // filtered projection of views

	showLocked bool

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool
	title   string

	// Filter state
	filterActive bool
	filterInput  textinput.Model
}

// NewMilestoneList creates an empty list.
func NewMilestoneList(showLocked bool) *MilestoneList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &MilestoneList{showLocked: showLocked, filterInput: ti, focused: true}
}

// SetItems replaces the list contents, keeping the selection on the same id when possible.
func (l *MilestoneList) SetItems(title string, views []domain.MilestoneView) {
	selected, hadSelection := l.Selected()
	l.title = title
	l.views = views
	l.refresh()

	if hadSelection {
		for i, r := range l.results {
			if r.View.ID == selected.ID {
				l.cursor = i
				break
			}
		}
	}
	l.ensureVisible()
}

// ShowLocked reports whether locked milestones are listed.
func (l *MilestoneList) ShowLocked() bool { return l.showLocked }

// ToggleLocked flips locked visibility.
func (l *MilestoneList) ToggleLocked() {
	l.showLocked = !l.showLocked
	l.refresh()
}

// FilterActive reports whether the filter input has focus.
func (l *MilestoneList) FilterActive() bool { return l.filterActive }

// FilterQuery returns the current filter text.
func (l *MilestoneList) FilterQuery() string { return l.filterInput.Value() }

// StartFilter focuses the filter input.
func (l *MilestoneList) StartFilter() tea.Cmd {
	l.filterActive = true
	l.recalcMaxVisible()
	return l.filterInput.Focus()
}

// ClearFilter drops the query and leaves filter mode.
func (l *MilestoneList) ClearFilter() {
	l.filterActive = false
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
	l.refresh()
}

// CommitFilter leaves filter mode but keeps the query applied.
func (l *MilestoneList) CommitFilter() {
	l.filterActive = false
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

func (l *MilestoneList) refresh() {
	visible := make([]domain.MilestoneView, 0, len(l.views))
	for _, v := range l.views {
		if v.Status == domain.StatusLocked && !l.showLocked {
			continue
		}
		visible = append(visible, v)
	}
	l.results = search.NewMilestoneIndex(visible).Filter(l.filterInput.Value())

	if l.cursor >= len(l.results) {
		l.cursor = len(l.results) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

// Len returns the number of visible rows.
func (l *MilestoneList) Len() int { return len(l.results) }

// Selected returns the milestone under the cursor.
func (l *MilestoneList) Selected() (domain.MilestoneView, bool) {
	if l.cursor < 0 || l.cursor >= len(l.results) {
		return domain.MilestoneView{}, false
	}
	return l.results[l.cursor].View, true
}

// Update handles navigation keys and, while filtering, text input.
func (l *MilestoneList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if l.filterActive {
		switch keyMsg.String() {
		case "esc":
			l.ClearFilter()
			return nil
		case "enter":
			l.CommitFilter()
			return nil
		}
		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.cursor, l.offset = 0, 0
		l.refresh()
		return cmd
	}

	count := len(l.results)
	if count == 0 {
		return nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if l.cursor < count-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = count - 1
	case "ctrl+d":
		l.cursor += max(l.maxVisible/2, 1)
		if l.cursor >= count {
			l.cursor = count - 1
		}
	case "ctrl+u":
		l.cursor -= max(l.maxVisible/2, 1)
		if l.cursor < 0 {
			l.cursor = 0
		}
	}
	l.ensureVisible()
	return nil
}

// SetSize sets the outer dimensions including the border.
func (l *MilestoneList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

func (l *MilestoneList) SetFocused(focused bool) { l.focused = focused }

func (l *MilestoneList) recalcMaxVisible() {
	l.maxVisible = l.height - BorderHeight - ListChromeLines
	// Reserve space for filter bar when active or applied
	if l.filterActive || l.filterInput.Value() != "" {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *MilestoneList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *MilestoneList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	inner := l.width - frameW

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", l.title, len(l.results))))
	b.WriteString("\n")

	if l.filterActive || l.filterInput.Value() != "" {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	if l.offset > 0 {
		b.WriteString(styles.DimStyle.Render("↑ more"))
	}
	b.WriteString("\n")

	if len(l.results) == 0 {
		b.WriteString(styles.DimStyle.Render("  nothing here yet"))
	}

	end := min(l.offset+l.maxVisible, len(l.results))
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(l.results[i], i == l.cursor, inner))
		b.WriteString("\n")
	}

	if end < len(l.results) {
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}

	return style.
		Width(max(inner, 0)).
		Height(max(l.height-frameH, 0)).
		Render(b.String())
}

func (l *MilestoneList) renderRow(r search.Result, selected bool, width int) string {
	indicator := StatusIndicator(r.View.Status)
	title := highlight(r.View.Title, r.MatchedIndexes)
	row := fmt.Sprintf("%s %s", indicator, title)
	if selected {
		row = fmt.Sprintf("%s %s", StatusChar(r.View.Status), r.View.Title)
		return styles.SelectedItemStyle.Width(max(width, 0)).Render(row)
	}
	return styles.NormalItemStyle.Render(row)
}

// StatusChar returns the unstyled status glyph.
func StatusChar(s domain.MilestoneStatus) string {
	switch s {
	case domain.StatusClaimed:
		return styles.ClaimedChar
	case domain.StatusClaimable:
		return styles.ClaimableChar
	default:
		return styles.LockedChar
	}
}

// StatusIndicator returns the pre-rendered status glyph.
func StatusIndicator(s domain.MilestoneStatus) string {
	switch s {
	case domain.StatusClaimed:
		return styles.ClaimedCheck
	case domain.StatusClaimable:
		return styles.ClaimableStar
	default:
		return styles.LockedDot
	}
}

// highlight renders matched byte positions of the lower-cased title in the match style.
func highlight(title string, matched []int) string {
	if len(matched) == 0 {
		return title
	}
	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}
	var b strings.Builder
	lower := strings.ToLower(title)
	if len(lower) != len(title) {
		return title
	}
	for i, r := range title {
		if hits[i] {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
