package domain

import "errors"

var (
	ErrChannelNotFound    = errors.New("channel not found")
	ErrChannelProcessing  = errors.New("channel not indexed yet")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrRuntimeNotFound    = errors.New("runtime state not found")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrNotConnected       = errors.New("wallet not connected")
	ErrAlreadyConnected   = errors.New("wallet already connected")
	ErrNoChannelJoined    = errors.New("no channel joined")
	ErrNoActiveDelegation = errors.New("no active delegated session")
	ErrSessionOpInFlight  = errors.New("another session operation is still pending")

	// ErrReceiptTimeout marks a receipt wait that gave up after a
	// successful submission. The operation may still have landed.
	ErrReceiptTimeout = errors.New("timed out waiting for operation receipt")
)
