package domain

import "time"

type ConnectionStatus string

const (
	ConnectionDisconnected ConnectionStatus = "disconnected"
	ConnectionConnecting   ConnectionStatus = "connecting"
	ConnectionConnected    ConnectionStatus = "connected"
)

// DelegationState tracks the optional session signer that lets sends
// skip the per-operation wallet confirmation.
type DelegationState struct {
	Signer    Address
	GrantedAt time.Time
	ExpiresAt time.Time
}

// ActiveAt reports whether the delegation can sign at the given
// instant. A zero DelegationState is never active.
func (d DelegationState) ActiveAt(now time.Time) bool {
	if d.Signer.IsZero() {
		return false
	}
	return now.Before(d.ExpiresAt)
}

// SessionState is the interpreter's view of the terminal session. All
// mutation happens on the event loop; nothing here is safe for
// concurrent use.
type SessionState struct {
	Connection ConnectionStatus
	Account    Address
	Username   string
	Channel    *ChannelRef
	Delegation DelegationState

	// SessionOpInFlight guards delegation changes: at most one
	// authorize or revoke may be pending at a time.
	SessionOpInFlight bool

	// Generation increments on every Reset. Pending operations carry
	// the generation they were dispatched under, so completions from
	// before a logout can be recognized as stale.
	Generation uint64
}

func NewSessionState() SessionState {
	return SessionState{Connection: ConnectionDisconnected}
}

// Reset returns the session to its initial disconnected state and
// advances the generation. Logout runs this unconditionally,
// regardless of in-flight work.
func (s *SessionState) Reset() {
	gen := s.Generation
	*s = NewSessionState()
	s.Generation = gen + 1
}

func (s *SessionState) IsConnected() bool {
	return s.Connection == ConnectionConnected
}

func (s *SessionState) IsJoined() bool {
	return s.IsConnected() && s.Channel != nil
}

// CheckGate verifies the session satisfies a command's minimum state.
// Gates compose: GateJoined implies GateConnected, GateDelegated
// implies both.
func (s *SessionState) CheckGate(gate Gate, now time.Time) error {
	switch gate {
	case GateAny:
		return nil
	case GateConnected:
		if !s.IsConnected() {
			return ErrNotConnected
		}
		return nil
	case GateJoined:
		if !s.IsConnected() {
			return ErrNotConnected
		}
		if s.Channel == nil {
			return ErrNoChannelJoined
		}
		return nil
	case GateDelegated:
		if !s.IsConnected() {
			return ErrNotConnected
		}
		if !s.Delegation.ActiveAt(now) {
			return ErrNoActiveDelegation
		}
		return nil
	}
	return nil
}
