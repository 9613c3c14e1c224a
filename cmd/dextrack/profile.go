package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the trainer profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the trainer profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := current.profiles.Load()
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd, p)
		}
		pterm.Printf("%s %s\n", pterm.Gray("Name: "), p.Name)
		pterm.Printf("%s %s\n", pterm.Gray("Title:"), p.Title)
		return nil
	},
}

var (
	profileName  string
	profileTitle string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the trainer name and/or title",
	Long: `Update the trainer profile. Only the flags you pass are changed.

Examples:
  dextrack profile set --name Red
  dextrack profile set --title "Kanto Champion"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := current.profiles.Update(profileName, profileTitle)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Profile saved: %s · %s\n", p.Name, p.Title)
		return nil
	},
}

func init() {
	profileShowCmd.Flags().BoolP("json", "j", false, "Output profile as JSON")
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Trainer name")
	profileSetCmd.Flags().StringVar(&profileTitle, "title", "", "Trainer title")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
