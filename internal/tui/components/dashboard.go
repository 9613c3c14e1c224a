package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/mmcdole/dextrack/internal/dex"
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/progression"
	"github.com/mmcdole/dextrack/internal/tui/styles"
)

const (
	labelWidth   = 10
	countWidth   = 11
	minBarWidth  = 10
	topRegionMax = 3
)

// DashboardData is everything the overview panel renders.
type DashboardData struct {
	Profile           domain.Profile
	Dex               domain.ProgressSnapshot
	Vault             domain.VaultStats
	MostCaughtSpecies int
	MostCaughtCount   int
	Unlocks           domain.Unlocks
	Claimable         int
	Claimed           int
	Total             int
}

// Dashboard renders national and per-region progress bars plus vault stats.
type Dashboard struct {
	data   DashboardData
	bar    progress.Model
	width  int
	height int
}

// NewDashboard creates an empty dashboard.
func NewDashboard() *Dashboard {
	bar := progress.New(
		progress.WithGradient(string(styles.DexRed), string(styles.Gold)),
		progress.WithoutPercentage(),
	)
	return &Dashboard{bar: bar}
}

func (d *Dashboard) SetData(data DashboardData) { d.data = data }

func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.bar.Width = max(width-BorderWidth-labelWidth-countWidth-4, minBarWidth)
}

func (d *Dashboard) View() string {
	var b strings.Builder
	p := d.data

	b.WriteString(styles.TitleStyle.Render(p.Profile.Name))
	b.WriteString(styles.DimStyle.Render(" · "))
	b.WriteString(styles.RewardStyle.Render(p.Profile.Title))
	b.WriteString("\n\n")

	b.WriteString(d.row(p.Dex.National()))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%*s seen %d", labelWidth, "", p.Dex.NationalSeen)))
	b.WriteString("\n\n")

	for _, r := range p.Dex.Regions {
		b.WriteString(d.row(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf(
		"Vault  %d stored · %d species · %d shiny",
		p.Vault.TotalStored, p.Vault.UniqueSpecies, p.Vault.ShinyCount)))
	b.WriteString("\n")
	if p.MostCaughtCount > 0 {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf(
			"Most stored  #%04d ×%d", p.MostCaughtSpecies, p.MostCaughtCount)))
		b.WriteString("\n")
	}

	if top := dex.TopRegions(p.Dex, topRegionMax); len(top) > 0 {
		names := make([]string, len(top))
		for i, r := range top {
			names[i] = fmt.Sprintf("%s %d%%", r.Name, r.CaughtPercent)
		}
		b.WriteString(styles.SubtitleStyle.Render("Best regions  " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	if unlocked := progression.UnlockedKeys(p.Unlocks); len(unlocked) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("Unlocked  " + strings.Join(unlocked, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d ready to claim   %s %d claimed   %s %d total",
		styles.ClaimableStar, p.Claimable, styles.ClaimedCheck, p.Claimed, styles.LockedDot, p.Total))

	style := styles.InactiveBorder
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(d.width-frameW, 0)).
		Height(max(d.height-frameH, 0)).
		Render(b.String())
}

func (d *Dashboard) row(r domain.RangeProgress) string {
	label := fmt.Sprintf("%-*s", labelWidth, r.Name)
	if r.Complete() {
		label = styles.SuccessStyle.Render(label)
	}
	count := fmt.Sprintf("%4d/%-4d%3d%%", r.Caught, r.Total, r.CaughtPercent)
	return label + " " + d.bar.ViewAs(float64(r.CaughtPercent)/100) + " " + styles.DimStyle.Render(count)
}
