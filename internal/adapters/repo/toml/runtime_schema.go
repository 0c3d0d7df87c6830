package toml

import "fmt"

const currentRuntimeSchemaVersion = 1

type runtimeFileSchema struct {
	Version  int             `toml:"version"`
	Runtimes []runtimeSchema `toml:"runtimes"`
}

func (s *runtimeFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentRuntimeSchemaVersion
	}
}

func (s runtimeFileSchema) validateVersion() error {
	if s.Version > currentRuntimeSchemaVersion {
		return fmt.Errorf("unsupported runtime schema version %d (current %d)", s.Version, currentRuntimeSchemaVersion)
	}

	return nil
}

type runtimeSchema struct {
	Profile      string            `toml:"profile"`
	Account      string            `toml:"account"`
	Username     string            `toml:"username,omitempty"`
	LastChannel  string            `toml:"last_channel,omitempty"`
	Delegation   *delegationSchema `toml:"delegation,omitempty"`
	LastSyncedAt string            `toml:"last_synced_at,omitempty"`
}

type delegationSchema struct {
	Signer    string `toml:"signer"`
	GrantedAt string `toml:"granted_at"`
	ExpiresAt string `toml:"expires_at"`
}
