package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
	"github.com/bnema/chanterm/internal/retry"
)

// SubmitterConfig tunes the two phases of an operation: the bounded
// retry around bundler submission and the receipt wait budget.
type SubmitterConfig struct {
	SubmitPolicy retry.Policy
	ReceiptWait  time.Duration
}

func (c SubmitterConfig) withDefaults() SubmitterConfig {
	if c.SubmitPolicy == (retry.Policy{}) {
		c.SubmitPolicy = retry.DefaultPolicy()
	}
	if c.ReceiptWait <= 0 {
		c.ReceiptWait = 60 * time.Second
	}
	return c
}

// SubmitRequest is one operation to push on-chain. Session names the
// delegated signer to use; nil means the owner key signs, which may
// prompt the user.
type SubmitRequest struct {
	Request domain.OperationRequest
	Sender  domain.Address
	Session *domain.Address
}

// Submitter builds, signs, and submits user operations, then waits
// for their receipts. Submission retries on transient errors; the
// receipt wait never resubmits, so an operation is signed and sent at
// most once per Submit call beyond the bundler's own idempotency.
type Submitter struct {
	bundler ports.Bundler
	wallet  ports.Wallet
	clock   ports.Clock
	log     *zap.Logger
	cfg     SubmitterConfig
}

func NewSubmitter(bundler ports.Bundler, wallet ports.Wallet, clock ports.Clock, log *zap.Logger, cfg SubmitterConfig) *Submitter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Submitter{
		bundler: bundler,
		wallet:  wallet,
		clock:   clock,
		log:     log,
		cfg:     cfg.withDefaults(),
	}
}

// Submit runs an operation to a terminal outcome. A nil error means
// the operation resolved: confirmed, reverted, or ambiguous when the
// receipt never appeared inside the wait budget. A non-nil error
// means the operation did not make it past submission; the error text
// is left classifiable.
func (s *Submitter) Submit(ctx context.Context, req SubmitRequest) (domain.SubmitResult, error) {
	op, err := s.bundler.BuildOperation(ctx, req.Request, req.Sender)
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("build operation: %w", err)
	}

	signed, err := s.sign(ctx, op, req.Session)
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("sign operation: %w", err)
	}

	attempts := 0
	opts := retry.Options{
		Clock:     s.clock,
		Retryable: func(err error) bool { return domain.Classify(err).Retryable },
		OnRetry: func(a retry.Attempt) {
			s.log.Warn("operation submission failed, backing off",
				zap.String("kind", string(req.Request.Kind)),
				zap.Int("attempt", a.Number),
				zap.Duration("delay", a.Delay),
				zap.Error(a.Err))
		},
	}

	handle, err := retry.Do(ctx, s.cfg.SubmitPolicy, opts, func(ctx context.Context) (domain.OperationHandle, error) {
		attempts++
		return s.bundler.SubmitOperation(ctx, signed)
	})
	if err != nil {
		return domain.SubmitResult{Attempts: attempts}, fmt.Errorf("submit operation: %w", err)
	}

	s.log.Debug("operation submitted",
		zap.String("kind", string(req.Request.Kind)),
		zap.String("hash", handle.UserOpHash),
		zap.Int("attempts", attempts))

	receipt, err := s.bundler.WaitReceipt(ctx, handle.UserOpHash, s.cfg.ReceiptWait)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptTimeout) {
			s.log.Warn("receipt wait timed out",
				zap.String("kind", string(req.Request.Kind)),
				zap.String("hash", handle.UserOpHash))
			return domain.SubmitResult{
				Outcome:  domain.OutcomeAmbiguous,
				Handle:   handle,
				Attempts: attempts,
			}, nil
		}
		return domain.SubmitResult{Handle: handle, Attempts: attempts}, fmt.Errorf("wait receipt: %w", err)
	}

	outcome := domain.OutcomeConfirmed
	if !receipt.Success {
		outcome = domain.OutcomeReverted
	}

	return domain.SubmitResult{
		Outcome:  outcome,
		Handle:   handle,
		Receipt:  &receipt,
		Attempts: attempts,
	}, nil
}

func (s *Submitter) sign(ctx context.Context, op domain.UserOperation, session *domain.Address) (domain.UserOperation, error) {
	if session != nil {
		return s.wallet.SignWithSession(ctx, op, *session)
	}
	return s.wallet.SignOperation(ctx, op)
}
