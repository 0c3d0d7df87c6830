package ports

import (
	"context"

	"github.com/bnema/chanterm/internal/domain"
)

// Directory is the read side of the chat registry: an indexer that
// serves channels, transcripts, and usernames over HTTP.
type Directory interface {
	// GetChannel resolves a normalized channel name. Returns
	// domain.ErrChannelNotFound for unknown names and
	// domain.ErrChannelProcessing while the indexer lags the chain.
	GetChannel(ctx context.Context, name string) (domain.ChannelRef, error)

	ListChannels(ctx context.Context) ([]domain.ChannelRef, error)

	// ListMessages returns the newest messages for a channel, oldest
	// first, at most limit entries.
	ListMessages(ctx context.Context, channelID string, limit int) ([]domain.Message, error)

	// ResolveName returns the registered username for an address, or
	// empty when none is set.
	ResolveName(ctx context.Context, addr domain.Address) (string, error)
}

// Feed streams new channel messages as they are indexed. The returned
// channel closes when ctx is cancelled.
type Feed interface {
	Subscribe(ctx context.Context, channelID string) (<-chan domain.Message, error)
}
