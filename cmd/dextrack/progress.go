package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mmcdole/dextrack/internal/dex"
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
	"github.com/mmcdole/dextrack/internal/progression"
	"github.com/mmcdole/dextrack/internal/search"
)

const barWidth = 20

var progressCmd = &cobra.Command{
	Use:   "progress [region]",
	Short: "Show national, regional and vault progress",
	Long: `Show caught/seen counts per dex range and vault statistics.

An optional region name narrows the output; partial names are matched fuzzily.

Examples:
  dextrack progress
  dextrack progress sinnoh
  dextrack progress kan --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolP("json", "j", false, "Output progress as JSON")
}

func runProgress(cmd *cobra.Command, args []string) error {
	ev, err := current.progress.Evaluate(cmd.Context())
	if err != nil {
		return err
	}
	profile, err := current.profiles.Load()
	if err != nil {
		return err
	}

	rows := append([]domain.RangeProgress{ev.Dex.National()}, ev.Dex.Regions...)
	if len(args) == 1 {
		r, ok := search.MatchRegion(args[0], append([]domain.Range{dex.National}, dex.Regions()...))
		if !ok {
			return errors.Newf("unknown region %q", args[0])
		}
		rows = rows[:0]
		if r.ID == domain.NationalRangeID {
			rows = append(rows, ev.Dex.National())
		} else if p, ok := ev.Dex.Region(r.ID); ok {
			rows = append(rows, p)
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, map[string]any{
			"profile":  profile,
			"ranges":   rows,
			"vault":    ev.Vault,
			"types":    ev.Types,
			"unlocks":  ev.State.Unlocks,
			"counters": ev.State.Counters,
		})
	}

	pterm.DefaultHeader.WithFullWidth().Printf("%s · %s", profile.Name, profile.Title)

	data := pterm.TableData{{"Range", "Caught", "Seen", "Total", "%", ""}}
	for _, r := range rows {
		data = append(data, []string{
			r.Name,
			fmt.Sprint(r.Caught),
			fmt.Sprint(r.Seen),
			fmt.Sprint(r.Total),
			fmt.Sprintf("%d%%", r.CaughtPercent),
			bar(r.CaughtPercent),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	pterm.Println()
	pterm.Info.Printf("Vault: %d stored, %d species, %d shiny\n",
		ev.Vault.TotalStored, ev.Vault.UniqueSpecies, ev.Vault.ShinyCount)
	if ev.MostCaughtCount > 0 {
		pterm.Info.Printf("Most stored: #%04d (%d)\n", ev.MostCaughtSpecies, ev.MostCaughtCount)
	}
	if top := dex.TopRegions(ev.Dex, 3); len(top) > 0 && top[0].CaughtPercent > 0 {
		names := make([]string, 0, len(top))
		for _, r := range top {
			names = append(names, fmt.Sprintf("%s %d%%", r.Name, r.CaughtPercent))
		}
		pterm.Info.Printf("Best regions: %s\n", strings.Join(names, ", "))
	}

	if unlocked := progression.UnlockedKeys(ev.State.Unlocks); len(unlocked) > 0 {
		pterm.Info.Printf("Unlocked: %s\n", strings.Join(unlocked, ", "))
	}

	counts := milestone.Counts(ev.Milestones)
	if n := counts[domain.StatusClaimable]; n > 0 {
		pterm.Success.Printf("%d milestone(s) ready to claim. Run 'dextrack claim --all'.\n", n)
	}
	return nil
}

func bar(percent int) string {
	filled := percent * barWidth / 100
	return pterm.Red(strings.Repeat("█", filled)) + pterm.Gray(strings.Repeat("░", barWidth-filled))
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
