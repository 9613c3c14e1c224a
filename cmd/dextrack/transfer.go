package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <count>",
	Short: "Record duplicate Pokémon transferred out of the vault",
	Long: `Add to the duplicates-transferred counter that drives the dup_* milestones.

Fractions are rounded down; zero or negative counts are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		state, err := current.progress.AddDuplicatesTransferred(amount)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Duplicates transferred: %d\n", state.Counters.DuplicatesTransferred)
		return nil
	},
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.WithHint(errors.Newf("invalid count %q", s), "pass a number such as 10")
	}
	return amount, nil
}
