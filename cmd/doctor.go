package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chanterm/internal/domain"
)

// newDoctorCmd probes everything a chat session depends on: the
// profile, the bundler, the directory, and the key store. Each probe
// prints one ok/FAIL line; any failure makes the command exit
// non-zero.
func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check connectivity to the configured chain services",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			healthy := true

			report := func(name string, err error, okDetail string) {
				if err != nil {
					healthy = false
					_, _ = fmt.Fprintf(out, "%-10s FAIL  %v\n", name, err)
					return
				}
				_, _ = fmt.Fprintf(out, "%-10s ok    %s\n", name, okDetail)
			}

			profile, err := a.activeProfile(ctx)
			report("profile", err, fmt.Sprintf("%s (chain %s)", profile.Name, profile.ChainID))
			if err != nil {
				return errors.New("doctor found problems")
			}

			report("bundler", probeBundler(ctx, a, profile), profile.BundlerURL)

			count, err := probeDirectory(ctx, a, profile)
			report("directory", err, fmt.Sprintf("%s (%d channels)", profile.DirectoryURL, count))

			detail, err := probeKeystore(ctx, a, profile)
			report("keystore", err, detail)

			if !healthy {
				return errors.New("doctor found problems")
			}
			return nil
		},
	}
}

func probeBundler(ctx context.Context, a *app, profile domain.Profile) error {
	chainID, err := a.bundlerFor(profile).ChainID(ctx)
	if err != nil {
		return err
	}
	if profile.ChainID != "" && chainID != profile.ChainID {
		return fmt.Errorf("reports chain %s, profile expects %s", chainID, profile.ChainID)
	}
	return nil
}

func probeDirectory(ctx context.Context, a *app, profile domain.Profile) (int, error) {
	channels, err := a.directoryFor(profile).ListChannels(ctx)
	if err != nil {
		return 0, err
	}
	return len(channels), nil
}

// probeKeystore checks the secret store without provisioning a key;
// a missing owner key is healthy, connect creates it on demand.
func probeKeystore(ctx context.Context, a *app, profile domain.Profile) (string, error) {
	_, err := a.secrets.Get(ctx, "wallet/"+string(profile.Name)+"/owner")
	switch {
	case err == nil:
		return "owner key present", nil
	case errors.Is(err, domain.ErrSecretNotFound):
		return "no owner key yet ('connect' provisions one)", nil
	default:
		return "", err
	}
}
