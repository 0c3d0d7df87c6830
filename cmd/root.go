package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ct",
		Short:         "chanterm (ct): a terminal client for on-chain chat",
		Long:          "ct (chanterm) is a terminal chat client for an account-abstraction chat chain: it connects a local wallet through an ERC-4337 bundler, joins channels registered on-chain, and streams messages from the chain's directory indexer.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVar(&app.profileOverride, "profile", "", "profile to use for this invocation (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&app.verbose, "verbose", false, "log at debug level")

	// Running bare `ct` opens the chat session.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runChat(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newChannelsCmd(app),
		newProfileCmd(app),
		newTailCmd(app),
		newDoctorCmd(app),
		newManCmd(),
	)

	return rootCmd
}
