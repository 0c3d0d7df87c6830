package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProfileName string

// Profile names one reachable deployment: a bundler, the directory
// that indexes it, and the registry contract the terminal talks to.
type Profile struct {
	Name         ProfileName
	ChainID      string
	BundlerURL   string
	DirectoryURL string
	FeedURL      string
	EntryPoint   Address
	Registry     Address
	UpdatedAt    time.Time
}

func (p Profile) Validate() error {
	if strings.TrimSpace(string(p.Name)) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.ChainID) == "" {
		return fmt.Errorf("chain id is required")
	}
	if strings.TrimSpace(p.BundlerURL) == "" {
		return fmt.Errorf("bundler url is required")
	}
	if strings.TrimSpace(p.DirectoryURL) == "" {
		return fmt.Errorf("directory url is required")
	}
	if p.EntryPoint.IsZero() {
		return fmt.Errorf("entrypoint address is required")
	}
	if p.Registry.IsZero() {
		return fmt.Errorf("registry address is required")
	}

	return nil
}
