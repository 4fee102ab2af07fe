package cmd

import "github.com/spf13/cobra"

// skipWireAnnotation marks commands that run without configuration.
const skipWireAnnotation = "kadai/skip-wire"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "kadai",
		Short:         "manaba assignment deadline notifier",
		Long:          "kadai signs in to manaba through the university Shibboleth IdP, collects assignments due within a week, and posts them to a Discord webhook and the deadline visualizer.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsWiring(cmd) {
				return nil
			}

			wired, err := wireApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newCheckCmd(app),
		newStateCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}

func needsWiring(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipWireAnnotation] == "true" {
			return false
		}
	}
	return cmd.Name() != "help" && cmd.Name() != "completion"
}
