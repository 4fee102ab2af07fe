package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear the no-assignments notice flag",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current flag",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				state, err := app.stateService.Show(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), state.Label())
				return err
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Clear the flag so the next empty run notifies again",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.stateService.Reset(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "flag cleared (%s)\n", app.statePath)
				return err
			},
		},
	)

	return cmd
}
