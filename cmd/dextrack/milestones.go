package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
)

var milestonesCmd = &cobra.Command{
	Use:     "milestones",
	Aliases: []string{"ms"},
	Short:   "List milestones and their status",
	Long: `List catalog milestones with locked/claimable/claimed status.

Examples:
  dextrack milestones
  dextrack milestones --category type --status claimable
  dextrack milestones --search "water mastery"`,
	RunE: runMilestones,
}

var (
	msCategory string
	msStatus   string
	msSearch   string
)

func init() {
	milestonesCmd.Flags().StringVarP(&msCategory, "category", "c", "", "Filter by category: region, national, vault, type")
	milestonesCmd.Flags().StringVarP(&msStatus, "status", "s", "", "Filter by status: locked, claimable, claimed")
	milestonesCmd.Flags().StringVarP(&msSearch, "search", "q", "", "Fuzzy search titles and ids")
	milestonesCmd.Flags().BoolP("json", "j", false, "Output milestones as JSON")
}

func parseFilter(category, status string) (milestone.Filter, error) {
	f := milestone.Filter{
		Category: domain.Category(strings.ToLower(strings.TrimSpace(category))),
		Status:   domain.MilestoneStatus(strings.ToLower(strings.TrimSpace(status))),
	}
	if f.Category != "" {
		valid := false
		for _, c := range domain.Categories() {
			valid = valid || c == f.Category
		}
		if !valid {
			return f, errors.Newf("unknown category %q", category)
		}
	}
	switch f.Status {
	case "", domain.StatusLocked, domain.StatusClaimable, domain.StatusClaimed:
	default:
		return f, errors.Newf("unknown status %q", status)
	}
	return f, nil
}

func runMilestones(cmd *cobra.Command, args []string) error {
	filter, err := parseFilter(msCategory, msStatus)
	if err != nil {
		return err
	}
	ev, views, err := current.progress.Milestones(cmd.Context(), filter, msSearch)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, views)
	}
	if len(views) == 0 {
		pterm.Info.Println("No milestones match.")
		return nil
	}

	signals := ev.Signals()

	data := pterm.TableData{{"", "ID", "Title", "Reward", "Progress"}}
	for _, v := range views {
		progress := ""
		if cur, goal := milestone.Progress(v.Rule, signals); goal > 0 {
			progress = fmt.Sprintf("%d/%d", min(cur, goal), goal)
		}
		data = append(data, []string{statusGlyph(v.Status), v.ID, v.Title, v.Reward.String(), progress})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func statusGlyph(s domain.MilestoneStatus) string {
	switch s {
	case domain.StatusClaimed:
		return pterm.Green("✓")
	case domain.StatusClaimable:
		return pterm.Yellow("★")
	default:
		return pterm.Gray("○")
	}
}
