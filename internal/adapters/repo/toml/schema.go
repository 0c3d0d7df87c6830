package toml

import "fmt"

const currentSchemaVersion = 1

type profilesFileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *profilesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s profilesFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name         string `toml:"name"`
	ChainID      string `toml:"chain_id"`
	BundlerURL   string `toml:"bundler_url"`
	DirectoryURL string `toml:"directory_url"`
	FeedURL      string `toml:"feed_url,omitempty"`
	EntryPoint   string `toml:"entrypoint"`
	Registry     string `toml:"registry"`
	UpdatedAt    string `toml:"updated_at,omitempty"`
}
