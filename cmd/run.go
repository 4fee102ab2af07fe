package cmd

import "github.com/spf13/cobra"

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Collect deadlines once and deliver notifications",
		Long:  "run performs one scheduled pass: sign in, collect assignments due within a week, publish them to the visualizer and post them to the webhook. Failures are posted to the webhook before the command exits non-zero.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runService.Execute(cmd.Context())
		},
	}
}
