package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind names the on-chain operations the terminal can submit.
type OperationKind string

const (
	OpSendMessage      OperationKind = "send_message"
	OpCreateChannel    OperationKind = "create_channel"
	OpJoinChannel      OperationKind = "join_channel"
	OpLeaveChannel     OperationKind = "leave_channel"
	OpSetUsername      OperationKind = "set_username"
	OpAuthorizeSession OperationKind = "authorize_session"
	OpRevokeSession    OperationKind = "revoke_session"
)

// OperationRequest carries the inputs for one on-chain operation.
type OperationRequest struct {
	Kind    OperationKind
	Channel string
	Body    string
	// TTL applies to OpAuthorizeSession only.
	TTL time.Duration
}

// UserOperation is the account-abstraction envelope the bundler
// accepts. CallData encodes the registry call for the request; the
// wallet fills Signature.
type UserOperation struct {
	Sender       Address
	Nonce        uint64
	CallData     []byte
	CallGasLimit uint64
	MaxFeePerGas uint64
	Signature    []byte
}

// OperationHandle is the bundler's identifier for a submitted user
// operation, returned by the submission phase.
type OperationHandle struct {
	UserOpHash  string
	SubmittedAt time.Time
}

// Receipt is the bundler's final word on a user operation.
type Receipt struct {
	UserOpHash  string
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
	Success     bool
	// Reason carries the revert reason when Success is false.
	Reason string
}

type OperationStatus string

const (
	OpStatusPending   OperationStatus = "pending"
	OpStatusSubmitted OperationStatus = "submitted"
	OpStatusConfirmed OperationStatus = "confirmed"
	OpStatusFailed    OperationStatus = "failed"
	// OpStatusAmbiguous means the receipt wait timed out after a
	// successful submission. The operation may still land on-chain.
	OpStatusAmbiguous OperationStatus = "ambiguous"
)

type SubmitOutcome string

const (
	OutcomeConfirmed SubmitOutcome = "confirmed"
	OutcomeReverted  SubmitOutcome = "reverted"
	OutcomeAmbiguous SubmitOutcome = "ambiguous"
)

// SubmitResult is what the submitter hands back once an operation
// resolves. Receipt is nil for OutcomeAmbiguous.
type SubmitResult struct {
	Outcome  SubmitOutcome
	Handle   OperationHandle
	Receipt  *Receipt
	Attempts int
}

// PendingOperation correlates a completion event with the session
// state that existed when the user dispatched the command. Generation
// is the session generation at dispatch time; completions whose
// generation no longer matches are stale and must be dropped.
type PendingOperation struct {
	ID         uuid.UUID
	Kind       OperationKind
	Request    OperationRequest
	Status     OperationStatus
	Handle     *OperationHandle
	Generation uint64
	StartedAt  time.Time
}

func NewPendingOperation(req OperationRequest, generation uint64, now time.Time) PendingOperation {
	return PendingOperation{
		ID:         uuid.New(),
		Kind:       req.Kind,
		Request:    req,
		Status:     OpStatusPending,
		Generation: generation,
		StartedAt:  now,
	}
}
