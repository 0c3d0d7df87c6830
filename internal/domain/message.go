package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryState tracks a sent message from optimistic echo to its
// on-chain fate.
type DeliveryState string

const (
	DeliveryPending   DeliveryState = "pending"
	DeliveryConfirmed DeliveryState = "confirmed"
	DeliveryFailed    DeliveryState = "failed"
	// DeliveryAmbiguous means the receipt wait timed out; the message
	// may or may not appear in channel history.
	DeliveryAmbiguous DeliveryState = "ambiguous"
)

// Message is one chat message, either read from the directory or
// echoed locally before confirmation. LocalID is set only for
// messages this client sent.
type Message struct {
	LocalID    uuid.UUID
	Channel    string
	Author     Address
	AuthorName string
	Body       string
	SentAt     time.Time
	Delivery   DeliveryState
}

// DisplayAuthor prefers the directory username and falls back to the
// shortened address.
func (m Message) DisplayAuthor() string {
	if m.AuthorName != "" {
		return m.AuthorName
	}
	return m.Author.Short()
}
