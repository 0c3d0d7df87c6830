package application

import (
	"github.com/google/uuid"

	"github.com/bnema/chanterm/internal/domain"
)

// Event is a completion delivered back to the interpreter's Apply.
// Every event carries the session generation it was dispatched under;
// Apply drops events whose generation no longer matches.
type Event interface {
	appliedGeneration() uint64
}

// ConnectResult finishes a connect command: wallet address derived,
// bundler probed, and any resumable runtime loaded.
type ConnectResult struct {
	Generation uint64
	Account    domain.Address
	ChainID    string
	Username   string
	Runtime    domain.Runtime
	Err        error
}

// SendResult finishes a message send.
type SendResult struct {
	Generation uint64
	OpID       uuid.UUID
	LocalID    uuid.UUID
	Result     domain.SubmitResult
	Err        error
}

// ChannelOpResult finishes a create, join, or leave operation.
// Channel is the resolved directory entry for create and join.
type ChannelOpResult struct {
	Generation uint64
	OpID       uuid.UUID
	Kind       domain.OperationKind
	Name       string
	Channel    domain.ChannelRef
	Result     domain.SubmitResult
	Err        error
}

// UsernameResult finishes a username set operation.
type UsernameResult struct {
	Generation uint64
	OpID       uuid.UUID
	Name       string
	Result     domain.SubmitResult
	Err        error
}

// SessionOpResult finishes a session authorize or revoke. Delegation
// is the new state to install on success; zero for revoke.
type SessionOpResult struct {
	Generation uint64
	OpID       uuid.UUID
	Kind       domain.OperationKind
	Delegation domain.DelegationState
	Result     domain.SubmitResult
	Err        error
}

// ChannelList finishes a list channels query.
type ChannelList struct {
	Generation uint64
	Channels   []domain.ChannelRef
	Err        error
}

// HistoryResult finishes a history query. FromCache marks transcripts
// served locally because the directory was unreachable.
type HistoryResult struct {
	Generation uint64
	Channel    string
	Messages   []domain.Message
	FromCache  bool
	Err        error
}

// FeedMessage is one live message pushed from the feed subscription.
type FeedMessage struct {
	Generation uint64
	Message    domain.Message
}

// PersistResult reports a background write to the transcript cache or
// runtime file. Failures surface as warnings, never as command
// failures.
type PersistResult struct {
	Generation uint64
	What       string
	Err        error
}

func (e ConnectResult) appliedGeneration() uint64   { return e.Generation }
func (e SendResult) appliedGeneration() uint64      { return e.Generation }
func (e ChannelOpResult) appliedGeneration() uint64 { return e.Generation }
func (e UsernameResult) appliedGeneration() uint64  { return e.Generation }
func (e SessionOpResult) appliedGeneration() uint64 { return e.Generation }
func (e ChannelList) appliedGeneration() uint64     { return e.Generation }
func (e HistoryResult) appliedGeneration() uint64   { return e.Generation }
func (e FeedMessage) appliedGeneration() uint64     { return e.Generation }
func (e PersistResult) appliedGeneration() uint64   { return e.Generation }
