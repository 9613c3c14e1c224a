package main

import (
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mmcdole/dextrack/internal/service"
)

var claimCmd = &cobra.Command{
	Use:   "claim [milestone-id]",
	Short: "Claim a milestone reward",
	Long: `Claim a satisfied milestone and apply its reward.

Claiming an already-claimed milestone does nothing.

Examples:
  dextrack claim kanto_50
  dextrack claim --all`,
	Args: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if all && len(args) > 0 {
			return errors.New("pass either a milestone id or --all, not both")
		}
		if !all && len(args) != 1 {
			return errors.New("a milestone id is required (or --all)")
		}
		return nil
	},
	RunE: runClaim,
}

func init() {
	claimCmd.Flags().Bool("all", false, "Claim every claimable milestone")
}

func runClaim(cmd *cobra.Command, args []string) error {
	if all, _ := cmd.Flags().GetBool("all"); all {
		results, err := current.progress.ClaimAll(cmd.Context())
		for _, r := range results {
			printClaim(r)
		}
		if err != nil {
			return err
		}
		if len(results) == 0 {
			pterm.Info.Println("Nothing to claim.")
		}
		return nil
	}

	res, err := current.progress.Claim(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printClaim(res)
	return nil
}

func printClaim(r service.ClaimResult) {
	if r.AlreadyClaimed {
		pterm.Info.Printf("%s is already claimed\n", r.Milestone.Title)
		return
	}
	pterm.Success.Printf("Claimed %s: %s\n", r.Milestone.Title, r.Milestone.Reward)
}
