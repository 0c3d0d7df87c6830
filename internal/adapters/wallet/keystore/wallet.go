package keystore

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
)

// Wallet signs user operations with ed25519 keys held in a secret
// store. It implements ports.Wallet.
//
// The owner key is generated on first use and never leaves the store.
// The account address is the last 20 bytes of the keccak-256 hash of
// the owner public key, matching how the account factory derives it.
type Wallet struct {
	profile string
	secrets ports.SecretStore

	mu sync.Mutex
}

var _ ports.Wallet = (*Wallet)(nil)

func New(profile string, secrets ports.SecretStore) *Wallet {
	return &Wallet{profile: profile, secrets: secrets}
}

func (w *Wallet) Address(ctx context.Context) (domain.Address, error) {
	key, err := w.ownerKey(ctx)
	if err != nil {
		return "", err
	}
	return deriveAddress(key.Public().(ed25519.PublicKey)), nil
}

func (w *Wallet) SignOperation(ctx context.Context, op domain.UserOperation) (domain.UserOperation, error) {
	key, err := w.ownerKey(ctx)
	if err != nil {
		return domain.UserOperation{}, err
	}
	return signOperation(key, op), nil
}

func (w *Wallet) SignWithSession(ctx context.Context, op domain.UserOperation, signer domain.Address) (domain.UserOperation, error) {
	key, err := w.sessionKey(ctx, signer)
	if err != nil {
		return domain.UserOperation{}, err
	}
	if derived := deriveAddress(key.Public().(ed25519.PublicKey)); derived != signer {
		return domain.UserOperation{}, fmt.Errorf("session key mismatch: stored key derives %s, want %s", derived, signer)
	}
	return signOperation(key, op), nil
}

func (w *Wallet) NewSessionKey(ctx context.Context) (domain.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("generate session key: %w", err)
	}

	key := ed25519.NewKeyFromSeed(seed)
	addr := deriveAddress(key.Public().(ed25519.PublicKey))
	if err := w.secrets.Put(ctx, w.sessionPath(addr), hex.EncodeToString(seed)); err != nil {
		return "", fmt.Errorf("store session key: %w", err)
	}
	return addr, nil
}

// ownerKey loads the persisted owner seed, generating and storing one
// on first use.
func (w *Wallet) ownerKey(ctx context.Context) (ed25519.PrivateKey, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	raw, err := w.secrets.Get(ctx, w.ownerPath())
	if err == nil {
		key, decodeErr := decodeSeed(raw)
		if decodeErr != nil {
			return nil, fmt.Errorf("load owner key: %w", decodeErr)
		}
		return key, nil
	}
	if !errors.Is(err, domain.ErrSecretNotFound) {
		return nil, fmt.Errorf("load owner key: %w", err)
	}

	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generate owner key: %w", err)
	}
	if err := w.secrets.Put(ctx, w.ownerPath(), hex.EncodeToString(seed)); err != nil {
		return nil, fmt.Errorf("store owner key: %w", err)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func (w *Wallet) sessionKey(ctx context.Context, signer domain.Address) (ed25519.PrivateKey, error) {
	if signer.IsZero() {
		return nil, errors.New("session signer address is required")
	}

	raw, err := w.secrets.Get(ctx, w.sessionPath(signer))
	if err != nil {
		return nil, fmt.Errorf("load session key %s: %w", signer.Short(), err)
	}

	key, err := decodeSeed(raw)
	if err != nil {
		return nil, fmt.Errorf("load session key %s: %w", signer.Short(), err)
	}
	return key, nil
}

func (w *Wallet) ownerPath() string {
	return "wallet/" + w.profile + "/owner"
}

func (w *Wallet) sessionPath(addr domain.Address) string {
	return "wallet/" + w.profile + "/session/" + addr.String()
}

func signOperation(key ed25519.PrivateKey, op domain.UserOperation) domain.UserOperation {
	op.Signature = ed25519.Sign(key, operationDigest(op))
	return op
}

// operationDigest hashes the fields the account contract checks during
// validation. The packing must stay in sync with the on-chain side.
func operationDigest(op domain.UserOperation) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(op.Sender))

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, op.Nonce)
	h.Write(buf)

	h.Write(op.CallData)

	binary.BigEndian.PutUint64(buf, op.CallGasLimit)
	h.Write(buf)
	binary.BigEndian.PutUint64(buf, op.MaxFeePerGas)
	h.Write(buf)

	return h.Sum(nil)
}

func deriveAddress(pub ed25519.PublicKey) domain.Address {
	h := sha3.NewLegacyKeccak256()
	h.Write(pub)
	sum := h.Sum(nil)
	return domain.Address("0x" + hex.EncodeToString(sum[12:]))
}

func decodeSeed(raw string) (ed25519.PrivateKey, error) {
	seed, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode key seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("key seed is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
