package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/application"
)

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, a)
		},
	}
}

func runChat(cmd *cobra.Command, a *app) error {
	profile, err := a.activeProfile(cmd.Context())
	if err != nil {
		return err
	}

	// The session owns the terminal, so logs go to the state file.
	logger, err := a.sessionLogger()
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	transcript, err := a.openTranscript()
	if err != nil {
		return fmt.Errorf("open transcript cache: %w", err)
	}
	defer func() { _ = transcript.Close() }()

	bundler := a.bundlerFor(profile)
	wallet := a.walletFor(profile)
	submitter := application.NewSubmitter(bundler, wallet, nil, logger, application.SubmitterConfig{})

	interpreter := application.NewInterpreter(profile, application.InterpreterDeps{
		Bundler:    bundler,
		Directory:  a.directoryFor(profile),
		Wallet:     wallet,
		Submitter:  submitter,
		Runtime:    a.runtime,
		Transcript: transcript,
		Log:        logger,
	})

	model := newChatModel(cmd.Context(), chatSession{
		profile:     profile,
		interpreter: interpreter,
		feed:        a.feedFor(profile, logger),
		transcript:  transcript,
		log:         logger,
	})

	logger.Info("session starting", zap.String("profile", string(profile.Name)))

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run chat session: %w", err)
	}

	logger.Info("session ended")
	return nil
}
