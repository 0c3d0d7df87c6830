package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	profilesPathKey  = "profiles.path"
	profilesFileName = "profiles.toml"
	configFileMode   = 0o600
	configDirMode    = 0o700
	tempFilePattern  = ".chanterm-*.toml.tmp"
)

// Repository persists chain profiles in a TOML file, by default
// ~/.config/chanterm/profiles.toml. Writes go through a temp file and
// rename so a crash never leaves a half-written file behind.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := defaultConfigDir(homeDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(profilesPathKey, filepath.Join(configDir, profilesFileName))

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(profilesPathKey)
	if path == "" {
		return nil, errors.New("profiles path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Save(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toProfileSchema(profile)
	updated := false
	for i := range file.Profiles {
		if file.Profiles[i].Name == encoded.Name {
			file.Profiles[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Profiles = append(file.Profiles, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *Repository) GetByName(ctx context.Context, name domain.ProfileName) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Profile{}, err
	}

	for _, entry := range file.Profiles {
		if entry.Name == string(name) {
			return fromProfileSchema(entry)
		}
	}

	return domain.Profile{}, domain.ErrProfileNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		profile, err := fromProfileSchema(entry)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *Repository) Delete(ctx context.Context, name domain.ProfileName) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	kept := file.Profiles[:0]
	found := false
	for _, entry := range file.Profiles {
		if entry.Name == string(name) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrProfileNotFound
	}
	file.Profiles = kept

	return writeTOMLFile(r.path, file)
}

func (r *Repository) readSchema() (profilesFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profilesFileSchema{}, nil
		}
		return profilesFileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file profilesFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return profilesFileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return profilesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func defaultConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", "chanterm")
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// lockForPath hands out one lock per file path, so independent
// repository instances over the same file serialize their writes.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeTOMLFile(path string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, configFileMode); err != nil {
		return fmt.Errorf("chmod file: %w", err)
	}

	return nil
}

func toProfileSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		Name:         string(profile.Name),
		ChainID:      profile.ChainID,
		BundlerURL:   profile.BundlerURL,
		DirectoryURL: profile.DirectoryURL,
		FeedURL:      profile.FeedURL,
		EntryPoint:   profile.EntryPoint.String(),
		Registry:     profile.Registry.String(),
		UpdatedAt:    formatTime(profile.UpdatedAt),
	}
}

func fromProfileSchema(schema profileSchema) (domain.Profile, error) {
	entryPoint, err := domain.ParseAddress(schema.EntryPoint)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s entrypoint: %w", schema.Name, err)
	}
	registry, err := domain.ParseAddress(schema.Registry)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s registry: %w", schema.Name, err)
	}

	return domain.Profile{
		Name:         domain.ProfileName(schema.Name),
		ChainID:      schema.ChainID,
		BundlerURL:   schema.BundlerURL,
		DirectoryURL: schema.DirectoryURL,
		FeedURL:      schema.FeedURL,
		EntryPoint:   entryPoint,
		Registry:     registry,
		UpdatedAt:    parseTime(schema.UpdatedAt),
	}, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
