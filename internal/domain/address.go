package domain

import (
	"fmt"
	"strings"
)

// Address is a 0x-prefixed, lowercased 20-byte account address.
type Address string

// ParseAddress validates and normalizes a hex account address.
func ParseAddress(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", fmt.Errorf("parse address %q: missing 0x prefix", raw)
	}
	hexPart := s[2:]
	if len(hexPart) != 40 {
		return "", fmt.Errorf("parse address %q: want 40 hex chars, got %d", raw, len(hexPart))
	}
	for _, r := range hexPart {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return "", fmt.Errorf("parse address %q: invalid hex char %q", raw, r)
		}
	}
	return Address("0x" + strings.ToLower(hexPart)), nil
}

// Short renders the address as 0xabcd…ef01 for terminal output.
func (a Address) Short() string {
	s := string(a)
	if len(s) < 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

func (a Address) String() string { return string(a) }

func (a Address) IsZero() bool { return a == "" }
