package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/domain"
)

const (
	feedReadLimit            = 512 * 1024
	defaultReconnectBase     = time.Second
	defaultMaxReconnectDelay = 30 * time.Second
)

// FeedAdapter streams indexed messages over the directory's WebSocket
// feed. It implements ports.Feed.
//
// Subscribe keeps one goroutine per subscription that dials, reads,
// and reconnects with exponential backoff until the context ends.
type FeedAdapter struct {
	FeedURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger

	// ReconnectBase seeds the backoff between reconnect attempts;
	// MaxReconnectDelay caps it.
	ReconnectBase     time.Duration
	MaxReconnectDelay time.Duration
}

func (f FeedAdapter) Subscribe(ctx context.Context, channelID string) (<-chan domain.Message, error) {
	if channelID == "" {
		return nil, errors.New("subscribe: channel id is required")
	}
	endpoint, err := buildFeedURL(f.FeedURL, channelID)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan domain.Message, 32)
	go f.pump(ctx, endpoint, channelID, out)
	return out, nil
}

func (f FeedAdapter) pump(ctx context.Context, endpoint string, channelID string, out chan<- domain.Message) {
	defer close(out)

	logger := f.logger()
	delay := f.reconnectBase()
	for {
		connected, err := f.readOnce(ctx, endpoint, out)
		if ctx.Err() != nil {
			return
		}
		if connected {
			delay = f.reconnectBase()
		}

		logger.Warn("feed disconnected",
			zap.String("channel", channelID),
			zap.Duration("retry_in", delay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
		if maxDelay := f.maxReconnectDelay(); delay > maxDelay {
			delay = maxDelay
		}
	}
}

// readOnce holds one connection open and forwards its messages.
// connected reports whether the dial succeeded, so the caller knows
// when to reset its backoff.
func (f FeedAdapter) readOnce(ctx context.Context, endpoint string, out chan<- domain.Message) (connected bool, err error) {
	conn, _, err := websocket.Dial(ctx, endpoint, &websocket.DialOptions{HTTPClient: f.HTTPClient})
	if err != nil {
		return false, fmt.Errorf("dial feed: %w", err)
	}
	conn.SetReadLimit(feedReadLimit)
	defer conn.CloseNow()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return true, fmt.Errorf("read feed: %w", err)
		}

		var wire wireMessage
		if err := json.Unmarshal(data, &wire); err != nil {
			f.logger().Warn("feed payload skipped", zap.Error(err))
			continue
		}
		msg, err := decodeMessage(wire)
		if err != nil {
			f.logger().Warn("feed payload skipped", zap.Error(err))
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			return true, ctx.Err()
		}
	}
}

func (f FeedAdapter) logger() *zap.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return zap.NewNop()
}

func (f FeedAdapter) reconnectBase() time.Duration {
	if f.ReconnectBase > 0 {
		return f.ReconnectBase
	}
	return defaultReconnectBase
}

func (f FeedAdapter) maxReconnectDelay() time.Duration {
	if f.MaxReconnectDelay > 0 {
		return f.MaxReconnectDelay
	}
	return defaultMaxReconnectDelay
}

func buildFeedURL(feedURL string, channelID string) (string, error) {
	if feedURL == "" {
		return "", errors.New("feed url is required")
	}

	parsed, err := url.Parse(feedURL)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	switch parsed.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return "", errors.New("feed url must use ws or wss")
	}
	if parsed.Host == "" {
		return "", errors.New("feed url host is required")
	}

	query := parsed.Query()
	query.Set("channel", channelID)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
