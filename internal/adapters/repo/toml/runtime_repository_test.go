package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chanterm/internal/domain"
)

func testRuntime(profile string) domain.Runtime {
	return domain.Runtime{
		Profile:     domain.ProfileName(profile),
		Account:     domain.Address("0x2222222222222222222222222222222222222222"),
		Username:    "alice",
		LastChannel: "general",
		Delegation: domain.DelegationState{
			Signer:    domain.Address("0x3333333333333333333333333333333333333333"),
			GrantedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			ExpiresAt: time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC),
		},
		LastSyncedAt: time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC),
	}
}

func newRuntimeRepo(t *testing.T, path string) *RuntimeRepository {
	t.Helper()

	config := viper.New()
	config.Set("runtime.path", path)

	repo, err := NewRuntimeRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRuntimeRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newRuntimeRepo(t, filepath.Join(t.TempDir(), "runtime.toml"))

	runtime := testRuntime("local")
	require.NoError(t, repo.Save(context.Background(), runtime))

	got, err := repo.GetByProfile(context.Background(), "local")
	require.NoError(t, err)
	assert.Equal(t, runtime, got)
}

func TestRuntimeRepositorySaveUpsertsByProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runtime.toml")
	repo := newRuntimeRepo(t, path)

	runtime := testRuntime("local")
	require.NoError(t, repo.Save(context.Background(), runtime))

	runtime.LastChannel = "random"
	require.NoError(t, repo.Save(context.Background(), runtime))

	got, err := repo.GetByProfile(context.Background(), "local")
	require.NoError(t, err)
	assert.Equal(t, "random", got.LastChannel)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "[[runtimes]]"))
}

func TestRuntimeRepositoryOmitsDelegationWhenUnset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runtime.toml")
	repo := newRuntimeRepo(t, path)

	runtime := testRuntime("local")
	runtime.Delegation = domain.DelegationState{}
	require.NoError(t, repo.Save(context.Background(), runtime))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "delegation")

	got, err := repo.GetByProfile(context.Background(), "local")
	require.NoError(t, err)
	assert.True(t, got.Delegation.Signer.IsZero())
}

func TestRuntimeRepositoryMissingEntryReturnsSentinel(t *testing.T) {
	t.Parallel()

	repo := newRuntimeRepo(t, filepath.Join(t.TempDir(), "runtime.toml"))

	_, err := repo.GetByProfile(context.Background(), "local")
	require.ErrorIs(t, err, domain.ErrRuntimeNotFound)

	require.NoError(t, repo.Save(context.Background(), testRuntime("staging")))

	_, err = repo.GetByProfile(context.Background(), "local")
	require.ErrorIs(t, err, domain.ErrRuntimeNotFound)
}

func TestRuntimeRepositoryClearIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newRuntimeRepo(t, filepath.Join(t.TempDir(), "runtime.toml"))

	require.NoError(t, repo.Clear(context.Background(), "local"))

	require.NoError(t, repo.Save(context.Background(), testRuntime("local")))
	require.NoError(t, repo.Clear(context.Background(), "local"))
	require.NoError(t, repo.Clear(context.Background(), "local"))

	_, err := repo.GetByProfile(context.Background(), "local")
	require.ErrorIs(t, err, domain.ErrRuntimeNotFound)
}

func TestRuntimeRepositoryClearKeepsOtherProfiles(t *testing.T) {
	t.Parallel()

	repo := newRuntimeRepo(t, filepath.Join(t.TempDir(), "runtime.toml"))

	require.NoError(t, repo.Save(context.Background(), testRuntime("local")))
	require.NoError(t, repo.Save(context.Background(), testRuntime("staging")))

	require.NoError(t, repo.Clear(context.Background(), "local"))

	got, err := repo.GetByProfile(context.Background(), "staging")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileName("staging"), got.Profile)
}

func TestRuntimeRepositoryDefaultPathAndPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRuntimeRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), testRuntime("local")))

	runtimePath := filepath.Join(homeDir, ".config", "chanterm", "runtime.toml")
	info, err := os.Stat(runtimePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRuntimeRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runtime.toml")
	require.NoError(t, os.WriteFile(path, []byte("runtimes = ["), 0o600))

	repo := newRuntimeRepo(t, path)

	_, err := repo.GetByProfile(context.Background(), "local")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode runtime file")
}

func TestRuntimeRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runtime.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
		"runtimes = []",
		"",
	}, "\n")), 0o600))

	repo := newRuntimeRepo(t, path)

	_, err := repo.GetByProfile(context.Background(), "local")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported runtime schema version")
}

func TestRuntimeRepositorySaveRequiresProfileName(t *testing.T) {
	t.Parallel()

	repo := newRuntimeRepo(t, filepath.Join(t.TempDir(), "runtime.toml"))

	err := repo.Save(context.Background(), domain.Runtime{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "profile name is required")
}
