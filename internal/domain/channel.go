package domain

import (
	"fmt"
	"strings"
)

// ChannelRef identifies a channel in the on-chain directory.
type ChannelRef struct {
	ID      string
	Name    string
	Creator Address
}

// NormalizeChannelName validates user input for create/join and strips
// the leading #. Names are lowercased; the directory treats #General
// and #general as the same channel.
func NormalizeChannelName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")
	s = strings.ToLower(s)
	if s == "" {
		return "", fmt.Errorf("channel name is empty")
	}
	if len(s) > 32 {
		return "", fmt.Errorf("channel name %q exceeds 32 characters", s)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", fmt.Errorf("channel name %q contains invalid char %q", s, r)
		}
	}
	return s, nil
}

// DisplayChannelName renders a normalized name back with its # prefix.
func DisplayChannelName(name string) string {
	if name == "" {
		return ""
	}
	return "#" + name
}
