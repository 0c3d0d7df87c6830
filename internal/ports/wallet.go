package ports

import (
	"context"

	"github.com/bnema/chanterm/internal/domain"
)

// Wallet holds the account keys and signs user operations.
type Wallet interface {
	// Address derives the account address for the stored owner key.
	Address(ctx context.Context) (domain.Address, error)

	// SignOperation signs with the owner key. Interactive wallets may
	// ask for confirmation; a declined prompt comes back as a
	// user-rejection error.
	SignOperation(ctx context.Context, op domain.UserOperation) (domain.UserOperation, error)

	// SignWithSession signs with the delegated session key, skipping
	// any confirmation prompt.
	SignWithSession(ctx context.Context, op domain.UserOperation, signer domain.Address) (domain.UserOperation, error)

	// NewSessionKey mints a key pair for a delegated session and
	// returns its address. The key stays inside the wallet.
	NewSessionKey(ctx context.Context) (domain.Address, error)
}
