package domain

import "fmt"

// ValidateUsername checks a directory username before it goes
// on-chain: 3 to 16 chars, lowercase letters, digits, - and _.
func ValidateUsername(name string) error {
	if len(name) < 3 || len(name) > 16 {
		return fmt.Errorf("username must be 3 to 16 characters, got %d", len(name))
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("username %q contains invalid char %q", name, r)
		}
	}
	return nil
}
