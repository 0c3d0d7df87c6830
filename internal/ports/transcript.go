package ports

import (
	"context"

	"github.com/bnema/chanterm/internal/domain"
)

// TranscriptStore caches channel messages locally so history renders
// without a round trip and survives restarts.
type TranscriptStore interface {
	Append(ctx context.Context, msg domain.Message) error

	// Recent returns up to limit cached messages for a channel,
	// oldest first.
	Recent(ctx context.Context, channelID string, limit int) ([]domain.Message, error)

	// MarkDelivery updates the delivery state of a locally sent
	// message identified by its local id.
	MarkDelivery(ctx context.Context, localID string, state domain.DeliveryState) error

	Close() error
}
