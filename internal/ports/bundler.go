package ports

import (
	"context"
	"time"

	"github.com/bnema/chanterm/internal/domain"
)

// Bundler is the account-abstraction endpoint operations go through.
type Bundler interface {
	// ChainID probes the endpoint and returns its chain identifier.
	ChainID(ctx context.Context) (string, error)

	// BuildOperation encodes the request into an unsigned user
	// operation with nonce and gas fields filled in. Estimation
	// failures surface here.
	BuildOperation(ctx context.Context, req domain.OperationRequest, sender domain.Address) (domain.UserOperation, error)

	// SubmitOperation sends a signed operation and returns its handle.
	SubmitOperation(ctx context.Context, op domain.UserOperation) (domain.OperationHandle, error)

	// WaitReceipt polls for the operation's receipt until it appears
	// or the wait budget runs out, in which case it returns
	// domain.ErrReceiptTimeout.
	WaitReceipt(ctx context.Context, userOpHash string, wait time.Duration) (domain.Receipt, error)
}
