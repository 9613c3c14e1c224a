package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
	"github.com/mmcdole/dextrack/internal/tui/styles"
)

// Inspector shows the selected milestone's details and progress toward it.
type Inspector struct {
	view    domain.MilestoneView
	has     bool
	signals milestone.Signals
	width   int
	height  int
}

func NewInspector() *Inspector { return &Inspector{} }

func (i *Inspector) SetMilestone(v domain.MilestoneView, ok bool, s milestone.Signals) {
	i.view, i.has, i.signals = v, ok, s
}

func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

func (i *Inspector) View() string {
	var b strings.Builder
	if !i.has {
		b.WriteString(styles.DimStyle.Render("No milestone selected"))
	} else {
		v := i.view
		b.WriteString(styles.TitleStyle.Render(v.Title))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(v.ID + " · " + string(v.Category)))
		b.WriteString("\n\n")
		b.WriteString(styles.SubtitleStyle.Render(v.Description))
		b.WriteString("\n\n")
		b.WriteString("Reward  " + styles.RewardStyle.Render(v.Reward.String()))
		b.WriteString("\n")
		b.WriteString("Status  " + StatusIndicator(v.Status) + " " + string(v.Status))
		b.WriteString("\n")

		if current, goal := milestone.Progress(v.Rule, i.signals); goal > 0 {
			b.WriteString(fmt.Sprintf("Progress  %d / %d", min(current, goal), goal))
			b.WriteString("\n")
		}
		if v.Status == domain.StatusClaimable {
			b.WriteString("\n")
			b.WriteString(styles.KeyHintStyle.Render("enter") + styles.DimStyle.Render(" to claim"))
		}
	}

	style := styles.InactiveBorder
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(i.width-frameW, 0)).
		Height(max(i.height-frameH, 0)).
		Render(b.String())
}
