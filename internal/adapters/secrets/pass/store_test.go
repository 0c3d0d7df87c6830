package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chanterm/internal/domain"
)

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		prefix: defaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, context.Background(), ctx)
			assert.Equal(t, []string{"insert", "-m", "-f", "chanterm/wallet/local/owner"}, args)
			assert.Equal(t, "deadbeef\n", input)
			return "", "", nil
		},
	}

	err := store.Put(context.Background(), "wallet/local/owner", "deadbeef")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: defaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "chanterm/wallet/local/owner"}, args)
			assert.Empty(t, input)
			return "deadbeef\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "wallet/local/owner")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", value)
}

func TestStoreGetMapsMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: defaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: chanterm/wallet/local/owner is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "wallet/local/owner")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteUsesPassRemove(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: defaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "chanterm/wallet/local/session/0x4444444444444444444444444444444444444444"}, args)
			assert.Empty(t, input)
			return "", "", nil
		},
	}

	err := store.Delete(context.Background(), "wallet/local/session/0x4444444444444444444444444444444444444444")
	require.NoError(t, err)
}

func TestStoreDeleteTreatsMissingEntryAsDone(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: defaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: chanterm/wallet/local/owner is not in the password store.", errors.New("exit status 1")
		},
	}

	err := store.Delete(context.Background(), "wallet/local/owner")
	require.NoError(t, err)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: defaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "wallet/local/owner")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "wallet/local/owner")
	assert.ErrorContains(t, err, "gpg: decryption failed")
}
