package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chanterm/internal/adapters/render/term"
	"github.com/bnema/chanterm/internal/domain"
)

func newChannelsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List channels known to the directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := a.activeProfile(cmd.Context())
			if err != nil {
				return err
			}
			dir := a.directoryFor(profile)

			var channels []domain.ChannelRef
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching channels...", func(ctx context.Context) error {
				var fetchErr error
				channels, fetchErr = dir.ListChannels(ctx)
				return fetchErr
			})
			if err != nil {
				return fmt.Errorf("list channels: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(channels)
			}

			rendered, err := term.RenderChannels(channels)
			if err != nil {
				return fmt.Errorf("render channels: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
