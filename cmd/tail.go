package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chanterm/internal/adapters/render/term"
	"github.com/bnema/chanterm/internal/domain"
)

// newTailCmd shows a channel's recent messages without opening a
// session. The directory serves them when reachable; otherwise the
// local transcript cache answers for channels seen before.
func newTailCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tail <#channel>",
		Short: "Show recent messages in a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > 200 {
				return fmt.Errorf("count must be between 1 and 200")
			}
			name, err := domain.NormalizeChannelName(args[0])
			if err != nil {
				return err
			}

			profile, err := a.activeProfile(cmd.Context())
			if err != nil {
				return err
			}
			dir := a.directoryFor(profile)

			var (
				messages  []domain.Message
				fromCache bool
			)
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching messages...", func(ctx context.Context) error {
				ref, err := dir.GetChannel(ctx, name)
				if err != nil {
					return err
				}

				messages, err = dir.ListMessages(ctx, ref.ID, count)
				if err == nil {
					return nil
				}

				cached, cacheErr := a.readCachedTail(ctx, ref.ID, count)
				if cacheErr != nil || len(cached) == 0 {
					return err
				}
				messages = cached
				fromCache = true
				return nil
			})
			if err != nil {
				return fmt.Errorf("tail %s: %w", domain.DisplayChannelName(name), err)
			}

			out := cmd.OutOrStdout()
			if fromCache {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "directory unreachable, showing cached transcript")
			}
			if len(messages) == 0 {
				_, _ = fmt.Fprintf(out, "no messages in %s yet\n", domain.DisplayChannelName(name))
				return nil
			}

			formatter := term.NewFormatter()
			for _, msg := range messages {
				_, _ = fmt.Fprintln(out, formatter.Message(msg, domain.Address("")))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 20, "number of messages to show")

	return cmd
}

func (a *app) readCachedTail(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	store, err := a.openTranscript()
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return store.Recent(ctx, channelID, limit)
}
