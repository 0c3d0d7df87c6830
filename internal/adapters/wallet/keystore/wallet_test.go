package keystore

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chanterm/internal/domain"
)

type memorySecrets struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySecrets() *memorySecrets {
	return &memorySecrets{values: make(map[string]string)}
}

func (m *memorySecrets) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (m *memorySecrets) Put(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memorySecrets) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func testOperation() domain.UserOperation {
	return domain.UserOperation{
		Sender:       domain.Address("0x1111111111111111111111111111111111111111"),
		Nonce:        7,
		CallData:     []byte{0x01, 0x02, 0x03},
		CallGasLimit: 100_000,
		MaxFeePerGas: 1_000_000_000,
	}
}

func TestAddressGeneratesAndPersistsOwnerKey(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()
	wallet := New("local", secrets)

	first, err := wallet.Address(context.Background())
	require.NoError(t, err)

	parsed, err := domain.ParseAddress(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, parsed)

	second, err := wallet.Address(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := secrets.Get(context.Background(), "wallet/local/owner")
	require.NoError(t, err)
	assert.Len(t, stored, 2*ed25519.SeedSize)
}

func TestAddressIsDeterministicForAStoredKey(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()

	first, err := New("local", secrets).Address(context.Background())
	require.NoError(t, err)

	// A fresh wallet over the same store derives the same account.
	second, err := New("local", secrets).Address(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProfilesKeepSeparateKeys(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()

	local, err := New("local", secrets).Address(context.Background())
	require.NoError(t, err)
	testnet, err := New("testnet", secrets).Address(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, local, testnet)
}

func TestSignOperationProducesVerifiableSignature(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()
	wallet := New("local", secrets)
	ctx := context.Background()

	_, err := wallet.Address(ctx)
	require.NoError(t, err)

	op := testOperation()
	signed, err := wallet.SignOperation(ctx, op)
	require.NoError(t, err)
	require.Len(t, signed.Signature, ed25519.SignatureSize)
	assert.Empty(t, op.Signature, "signing must not mutate the input")

	seedHex, err := secrets.Get(ctx, "wallet/local/owner")
	require.NoError(t, err)
	seed, err := hex.DecodeString(seedHex)
	require.NoError(t, err)
	key := ed25519.NewKeyFromSeed(seed)

	assert.True(t, ed25519.Verify(key.Public().(ed25519.PublicKey), operationDigest(op), signed.Signature))
}

func TestSignatureCoversEveryOperationField(t *testing.T) {
	t.Parallel()

	wallet := New("local", newMemorySecrets())
	ctx := context.Background()

	base := testOperation()
	baseSigned, err := wallet.SignOperation(ctx, base)
	require.NoError(t, err)

	bumped := base
	bumped.Nonce++
	bumpedSigned, err := wallet.SignOperation(ctx, bumped)
	require.NoError(t, err)
	assert.NotEqual(t, baseSigned.Signature, bumpedSigned.Signature)

	altered := base
	altered.CallData = []byte{0xff}
	alteredSigned, err := wallet.SignOperation(ctx, altered)
	require.NoError(t, err)
	assert.NotEqual(t, baseSigned.Signature, alteredSigned.Signature)
}

func TestNewSessionKeyMintsDistinctSigner(t *testing.T) {
	t.Parallel()

	wallet := New("local", newMemorySecrets())
	ctx := context.Background()

	owner, err := wallet.Address(ctx)
	require.NoError(t, err)

	signer, err := wallet.NewSessionKey(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, owner, signer)

	op := testOperation()
	ownerSigned, err := wallet.SignOperation(ctx, op)
	require.NoError(t, err)
	sessionSigned, err := wallet.SignWithSession(ctx, op, signer)
	require.NoError(t, err)

	require.Len(t, sessionSigned.Signature, ed25519.SignatureSize)
	assert.NotEqual(t, ownerSigned.Signature, sessionSigned.Signature)
}

func TestSignWithSessionRejectsUnknownSigner(t *testing.T) {
	t.Parallel()

	wallet := New("local", newMemorySecrets())

	_, err := wallet.SignWithSession(context.Background(), testOperation(), "0x4444444444444444444444444444444444444444")

	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Contains(t, err.Error(), "load session key")
}

func TestSignWithSessionDetectsSwappedKey(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()
	wallet := New("local", secrets)
	ctx := context.Background()

	signer, err := wallet.NewSessionKey(ctx)
	require.NoError(t, err)

	// Replace the stored seed with one that derives a different
	// address.
	other, err := wallet.NewSessionKey(ctx)
	require.NoError(t, err)
	swapped, err := secrets.Get(ctx, "wallet/local/session/"+other.String())
	require.NoError(t, err)
	require.NoError(t, secrets.Put(ctx, "wallet/local/session/"+signer.String(), swapped))

	_, err = wallet.SignWithSession(ctx, testOperation(), signer)
	require.ErrorContains(t, err, "session key mismatch")
}
