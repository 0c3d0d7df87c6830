package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/chanterm/internal/domain"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage chain profiles",
	}

	cmd.AddCommand(
		newProfileSetCmd(a),
		newProfileShowCmd(a),
		newProfileListCmd(a),
		newProfileUseCmd(a),
		newProfileRmCmd(a),
	)

	return cmd
}

func newProfileSetCmd(a *app) *cobra.Command {
	var (
		chainID      string
		bundlerURL   string
		directoryURL string
		feedURL      string
		entryPoint   string
		registry     string
	)

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or replace a chain profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryPointAddr, err := domain.ParseAddress(entryPoint)
			if err != nil {
				return fmt.Errorf("parse entrypoint: %w", err)
			}
			registryAddr, err := domain.ParseAddress(registry)
			if err != nil {
				return fmt.Errorf("parse registry: %w", err)
			}

			profile := domain.Profile{
				Name:         domain.ProfileName(args[0]),
				ChainID:      chainID,
				BundlerURL:   bundlerURL,
				DirectoryURL: directoryURL,
				FeedURL:      feedURL,
				EntryPoint:   entryPointAddr,
				Registry:     registryAddr,
				UpdatedAt:    a.now().UTC(),
			}

			if err := a.profiles.Save(cmd.Context(), profile); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "profile %s saved\n", profile.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&chainID, "chain-id", "", "chain identifier the bundler must report")
	cmd.Flags().StringVar(&bundlerURL, "bundler-url", "", "JSON-RPC endpoint of the ERC-4337 bundler")
	cmd.Flags().StringVar(&directoryURL, "directory-url", "", "base URL of the directory indexer")
	cmd.Flags().StringVar(&feedURL, "feed-url", "", "websocket URL of the live message feed (optional)")
	cmd.Flags().StringVar(&entryPoint, "entrypoint", "", "entrypoint contract address")
	cmd.Flags().StringVar(&registry, "registry", "", "chat registry contract address")

	_ = cmd.MarkFlagRequired("chain-id")
	_ = cmd.MarkFlagRequired("bundler-url")
	_ = cmd.MarkFlagRequired("directory-url")
	_ = cmd.MarkFlagRequired("entrypoint")
	_ = cmd.MarkFlagRequired("registry")

	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a profile (the active one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.activeProfileName()
			if len(args) == 1 {
				name = domain.ProfileName(args[0])
			}

			profile, err := a.profiles.GetByName(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("load profile %s: %w", name, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profile)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:       %s\n", profile.Name)
			fmt.Fprintf(out, "chain:      %s\n", profile.ChainID)
			fmt.Fprintf(out, "bundler:    %s\n", profile.BundlerURL)
			fmt.Fprintf(out, "directory:  %s\n", profile.DirectoryURL)
			if profile.FeedURL != "" {
				fmt.Fprintf(out, "feed:       %s\n", profile.FeedURL)
			}
			fmt.Fprintf(out, "entrypoint: %s\n", profile.EntryPoint)
			fmt.Fprintf(out, "registry:   %s\n", profile.Registry)
			if !profile.UpdatedAt.IsZero() {
				fmt.Fprintf(out, "updated:    %s\n", profile.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := a.profiles.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}

			active := a.activeProfileName()
			for _, profile := range profiles {
				marker := " "
				if profile.Name == active {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\tchain %s\t%s\n", marker, profile.Name, profile.ChainID, profile.BundlerURL)
			}

			return nil
		},
	}
}

func newProfileUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Make a profile the default for future invocations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.ProfileName(args[0])
			if _, err := a.profiles.GetByName(cmd.Context(), name); err != nil {
				return fmt.Errorf("load profile %s: %w", name, err)
			}

			if err := writeConfigValue(a.configDir, configKeyProfile, string(name)); err != nil {
				return fmt.Errorf("update config: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "active profile is now %s\n", name)
			return err
		},
	}
}

func newProfileRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a profile and its saved session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.ProfileName(args[0])
			if err := a.profiles.Delete(cmd.Context(), name); err != nil {
				return fmt.Errorf("delete profile %s: %w", name, err)
			}
			if err := a.runtime.Clear(cmd.Context(), name); err != nil {
				return fmt.Errorf("clear runtime for %s: %w", name, err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "profile %s removed\n", name)
			return err
		},
	}
}

// writeConfigValue rewrites one key in config.toml, keeping whatever
// else the file holds.
func writeConfigValue(configDir string, key string, value string) error {
	path := filepath.Join(configDir, "config.toml")

	settings := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("decode config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("read config file: %w", err)
	}
	settings[key] = value

	encoded, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, encoded, 0o644)
}
