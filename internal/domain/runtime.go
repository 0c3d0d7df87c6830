package domain

import "time"

// Runtime is the per-profile state that survives restarts: the last
// known identity plus the cached delegation, so a fresh process can
// offer to resume where the previous one stopped.
type Runtime struct {
	Profile      ProfileName
	Account      Address
	Username     string
	LastChannel  string
	Delegation   DelegationState
	LastSyncedAt time.Time
}

// Resumable reports whether the runtime still describes a session
// worth resuming. A runtime without an account is empty.
func (r Runtime) Resumable() bool {
	return !r.Account.IsZero()
}

// PruneExpired drops the cached delegation once it has lapsed.
func (r *Runtime) PruneExpired(now time.Time) {
	if !r.Delegation.ActiveAt(now) {
		r.Delegation = DelegationState{}
	}
}
