package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Inspect rewards waiting to be delivered",
	Long: `Badge, title and Pokémon rewards are queued as grants when a milestone is
claimed. The inventory lists pending grants and acknowledges each one after
handing it out.`,
}

var grantsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pending grants",
	RunE: func(cmd *cobra.Command, args []string) error {
		grants, err := current.progress.PendingGrants()
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd, grants)
		}
		if len(grants) == 0 {
			pterm.Info.Println("No pending grants.")
			return nil
		}
		data := pterm.TableData{{"ID", "Milestone", "Reward", "Created"}}
		for _, g := range grants {
			data = append(data, []string{g.ID, g.MilestoneID, g.Reward.String(), g.CreatedAt.Format("2006-01-02 15:04")})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var grantsAckCmd = &cobra.Command{
	Use:   "ack <grant-id>...",
	Short: "Acknowledge delivered grants",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range args {
			if err := current.progress.AckGrant(id); err != nil {
				return err
			}
			pterm.Success.Printf("Acknowledged %s\n", id)
		}
		return nil
	},
}

func init() {
	grantsListCmd.Flags().BoolP("json", "j", false, "Output grants as JSON")
	grantsCmd.AddCommand(grantsListCmd)
	grantsCmd.AddCommand(grantsAckCmd)
}
