package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/adapters/bundler/jsonrpc"
	"github.com/bnema/chanterm/internal/adapters/directory"
	sqlitehistory "github.com/bnema/chanterm/internal/adapters/history/sqlite"
	tomlrepo "github.com/bnema/chanterm/internal/adapters/repo/toml"
	chainstore "github.com/bnema/chanterm/internal/adapters/secrets/chain"
	"github.com/bnema/chanterm/internal/adapters/wallet/keystore"
	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/logging"
	"github.com/bnema/chanterm/internal/ports"
)

const (
	configKeyProfile     = "profile"
	configKeyLogPath     = "log.path"
	configKeyHistoryPath = "history.path"

	defaultProfileName = "local"
)

type app struct {
	config     *viper.Viper
	configDir  string
	profiles   ports.ProfileRepository
	runtime    ports.RuntimeRepository
	secrets    ports.SecretStore
	httpClient *http.Client
	now        func() time.Time

	profileOverride string
	verbose         bool
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "chanterm")
	stateDir := filepath.Join(homeDir, ".local", "state", "chanterm")

	config := viper.New()
	config.SetEnvPrefix("CT")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	config.SetDefault(configKeyProfile, defaultProfileName)
	config.SetDefault(configKeyLogPath, filepath.Join(stateDir, "ct.log"))
	config.SetDefault(configKeyHistoryPath, filepath.Join(stateDir, "history.db"))

	// NewRepository reads ~/.config/chanterm/config.toml into this
	// viper instance; the runtime repository and the keys above share
	// the loaded values.
	profiles, err := tomlrepo.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	runtime, err := tomlrepo.NewRuntimeRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire runtime repository: %w", err)
	}

	secrets, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(configDir, "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		config:     config,
		configDir:  configDir,
		profiles:   profiles,
		runtime:    runtime,
		secrets:    secrets,
		httpClient: http.DefaultClient,
		now:        time.Now,
	}, nil
}

// activeProfileName resolves which profile this invocation targets:
// the --profile flag wins, then CT_PROFILE, then the config file.
func (a *app) activeProfileName() domain.ProfileName {
	if a.profileOverride != "" {
		return domain.ProfileName(a.profileOverride)
	}
	return domain.ProfileName(a.config.GetString(configKeyProfile))
}

func (a *app) activeProfile(ctx context.Context) (domain.Profile, error) {
	name := a.activeProfileName()
	profile, err := a.profiles.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Profile{}, fmt.Errorf("profile %q is not configured, run 'ct profile set %s' first", name, name)
		}
		return domain.Profile{}, fmt.Errorf("load profile %s: %w", name, err)
	}
	return profile, nil
}

func (a *app) bundlerFor(profile domain.Profile) *jsonrpc.Adapter {
	return &jsonrpc.Adapter{
		Endpoint:   profile.BundlerURL,
		EntryPoint: profile.EntryPoint,
		HTTPClient: a.httpClient,
	}
}

func (a *app) directoryFor(profile domain.Profile) directory.Adapter {
	return directory.Adapter{
		BaseURL:    profile.DirectoryURL,
		HTTPClient: a.httpClient,
	}
}

func (a *app) feedFor(profile domain.Profile, log *zap.Logger) ports.Feed {
	if profile.FeedURL == "" {
		return nil
	}
	return directory.FeedAdapter{
		FeedURL:    profile.FeedURL,
		HTTPClient: a.httpClient,
		Logger:     log,
	}
}

func (a *app) walletFor(profile domain.Profile) *keystore.Wallet {
	return keystore.New(string(profile.Name), a.secrets)
}

func (a *app) openTranscript() (*sqlitehistory.Store, error) {
	path := a.config.GetString(configKeyHistoryPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return sqlitehistory.Open(path)
}

func (a *app) sessionLogger() (*zap.Logger, error) {
	return logging.NewFileLogger(a.config.GetString(configKeyLogPath), a.verbose)
}
