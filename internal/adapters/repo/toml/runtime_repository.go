package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
)

const (
	runtimePathKey  = "runtime.path"
	runtimeFileName = "runtime.toml"
)

// RuntimeRepository persists per-profile session leftovers (identity,
// last channel, cached delegation) in runtime.toml next to the
// profiles file.
type RuntimeRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.RuntimeRepository = (*RuntimeRepository)(nil)

func NewRuntimeRepository(cfg *viper.Viper) (*RuntimeRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	path := cfg.GetString(runtimePathKey)
	if path == "" {
		path = filepath.Join(defaultConfigDir(homeDir), runtimeFileName)
	}

	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &RuntimeRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *RuntimeRepository) GetByProfile(ctx context.Context, name domain.ProfileName) (domain.Runtime, error) {
	if err := ctx.Err(); err != nil {
		return domain.Runtime{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Runtime{}, err
	}

	for _, entry := range file.Runtimes {
		if entry.Profile == string(name) {
			return fromRuntimeSchema(entry)
		}
	}

	return domain.Runtime{}, domain.ErrRuntimeNotFound
}

func (r *RuntimeRepository) Save(ctx context.Context, runtime domain.Runtime) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if runtime.Profile == "" {
		return errors.New("runtime profile name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toRuntimeSchema(runtime)
	updated := false
	for i := range file.Runtimes {
		if file.Runtimes[i].Profile == encoded.Profile {
			file.Runtimes[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Runtimes = append(file.Runtimes, encoded)
	}

	return writeTOMLFile(r.path, file)
}

// Clear drops the runtime entry for a profile. Clearing a profile that
// has no entry is not an error; logout calls this unconditionally.
func (r *RuntimeRepository) Clear(ctx context.Context, name domain.ProfileName) error {
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

	kept := file.Runtimes[:0]
	found := false
	for _, entry := range file.Runtimes {
		if entry.Profile == string(name) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return nil
	}
	file.Runtimes = kept

	return writeTOMLFile(r.path, file)
}

func (r *RuntimeRepository) readSchema() (runtimeFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return runtimeFileSchema{}, nil
		}
		return runtimeFileSchema{}, fmt.Errorf("read runtime file: %w", err)
	}

	var file runtimeFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return runtimeFileSchema{}, fmt.Errorf("decode runtime file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return runtimeFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toRuntimeSchema(runtime domain.Runtime) runtimeSchema {
	schema := runtimeSchema{
		Profile:      string(runtime.Profile),
		Account:      runtime.Account.String(),
		Username:     runtime.Username,
		LastChannel:  runtime.LastChannel,
		LastSyncedAt: formatTime(runtime.LastSyncedAt),
	}
	if !runtime.Delegation.Signer.IsZero() {
		schema.Delegation = &delegationSchema{
			Signer:    runtime.Delegation.Signer.String(),
			GrantedAt: formatTime(runtime.Delegation.GrantedAt),
			ExpiresAt: formatTime(runtime.Delegation.ExpiresAt),
		}
	}

	return schema
}

func fromRuntimeSchema(schema runtimeSchema) (domain.Runtime, error) {
	runtime := domain.Runtime{
		Profile:      domain.ProfileName(schema.Profile),
		Username:     schema.Username,
		LastChannel:  schema.LastChannel,
		LastSyncedAt: parseTime(schema.LastSyncedAt),
	}

	if schema.Account != "" {
		account, err := domain.ParseAddress(schema.Account)
		if err != nil {
			return domain.Runtime{}, fmt.Errorf("runtime %s account: %w", schema.Profile, err)
		}
		runtime.Account = account
	}

	if schema.Delegation != nil {
		signer, err := domain.ParseAddress(schema.Delegation.Signer)
		if err != nil {
			return domain.Runtime{}, fmt.Errorf("runtime %s delegation signer: %w", schema.Profile, err)
		}
		runtime.Delegation = domain.DelegationState{
			Signer:    signer,
			GrantedAt: parseTime(schema.Delegation.GrantedAt),
			ExpiresAt: parseTime(schema.Delegation.ExpiresAt),
		}
	}

	return runtime, nil
}
