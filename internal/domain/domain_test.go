package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressNormalizes(t *testing.T) {
	a, err := ParseAddress("0xABCDEFabcdef0123456789abcdef0123456789AB")
	require.NoError(t, err)

	assert.Equal(t, Address("0xabcdefabcdef0123456789abcdef0123456789ab"), a)
	assert.Equal(t, "0xabcd…89ab", a.Short())
}

func TestParseAddressRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing prefix", input: "abcdefabcdef0123456789abcdef0123456789ab"},
		{name: "too short", input: "0xabcd"},
		{name: "too long", input: "0xabcdefabcdef0123456789abcdef0123456789abcd"},
		{name: "non-hex char", input: "0xzzcdefabcdef0123456789abcdef0123456789ab"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeChannelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "strips hash prefix", input: "#general", want: "general"},
		{name: "bare name allowed", input: "general", want: "general"},
		{name: "lowercases", input: "#General", want: "general"},
		{name: "dashes and digits", input: "#go-devs-2026", want: "go-devs-2026"},
		{name: "empty after strip", input: "#", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "spaces inside", input: "#two words", wantErr: true},
		{name: "over 32 chars", input: "#abcdefghijklmnopqrstuvwxyz0123456789", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeChannelName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayChannelName(t *testing.T) {
	assert.Equal(t, "#general", DisplayChannelName("general"))
	assert.Equal(t, "", DisplayChannelName(""))
}

func TestValidateUsername(t *testing.T) {
	require.NoError(t, ValidateUsername("alice"))
	require.NoError(t, ValidateUsername("go_dev-42"))

	assert.Error(t, ValidateUsername("al"))
	assert.Error(t, ValidateUsername("averyveryverylongname"))
	assert.Error(t, ValidateUsername("Alice"))
	assert.Error(t, ValidateUsername("has space"))
}

func TestMessageDisplayAuthor(t *testing.T) {
	m := Message{
		Author:     "0xabcdefabcdef0123456789abcdef0123456789ab",
		AuthorName: "alice",
	}
	assert.Equal(t, "alice", m.DisplayAuthor())

	m.AuthorName = ""
	assert.Equal(t, "0xabcd…89ab", m.DisplayAuthor())
}

func TestNewPendingOperationSnapshotsDispatchState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	req := OperationRequest{Kind: OpSendMessage, Channel: "general", Body: "hi"}

	p := NewPendingOperation(req, 7, now)

	assert.NotEqual(t, [16]byte{}, [16]byte(p.ID))
	assert.Equal(t, OpSendMessage, p.Kind)
	assert.Equal(t, req, p.Request)
	assert.Equal(t, OpStatusPending, p.Status)
	assert.Equal(t, uint64(7), p.Generation)
	assert.Equal(t, now, p.StartedAt)
}
