package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show dextrack version information",
	Run: func(cmd *cobra.Command, args []string) {
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			_ = printJSON(cmd, map[string]string{
				"version":  Version,
				"go":       runtime.Version(),
				"platform": runtime.GOOS + "/" + runtime.GOARCH,
			})
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dextrack %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", runtime.Version())
	},
}

func init() {
	versionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
