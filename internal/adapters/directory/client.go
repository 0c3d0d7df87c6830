package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/chanterm/internal/domain"
)

const maxDirectoryResponseBytes = 1 << 20

// Adapter reads channels, transcripts, and usernames from the chat
// indexer's REST API. It implements ports.Directory.
type Adapter struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type wireChannel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Creator string `json:"creator"`
}

type wireMessage struct {
	Channel    string    `json:"channel"`
	Author     string    `json:"author"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
}

func (a Adapter) GetChannel(ctx context.Context, name string) (domain.ChannelRef, error) {
	var wire wireChannel
	status, err := a.getJSON(ctx, "/v1/channels/"+url.PathEscape(name), &wire)
	if err != nil {
		return domain.ChannelRef{}, fmt.Errorf("fetch channel %s: %w", name, err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusAccepted:
		// The indexer has seen the creation but not finished its row.
		return domain.ChannelRef{}, domain.ErrChannelProcessing
	case http.StatusNotFound:
		return domain.ChannelRef{}, domain.ErrChannelNotFound
	default:
		return domain.ChannelRef{}, fmt.Errorf("fetch channel %s: status %d", name, status)
	}

	ref, err := decodeChannel(wire)
	if err != nil {
		return domain.ChannelRef{}, fmt.Errorf("fetch channel %s: %w", name, err)
	}
	return ref, nil
}

func (a Adapter) ListChannels(ctx context.Context) ([]domain.ChannelRef, error) {
	var payload struct {
		Channels []wireChannel `json:"channels"`
	}
	status, err := a.getJSON(ctx, "/v1/channels", &payload)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list channels: status %d", status)
	}

	refs := make([]domain.ChannelRef, 0, len(payload.Channels))
	for _, wire := range payload.Channels {
		ref, err := decodeChannel(wire)
		if err != nil {
			return nil, fmt.Errorf("list channels: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (a Adapter) ListMessages(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	if channelID == "" {
		return nil, errors.New("list messages: channel id is required")
	}
	if limit <= 0 {
		limit = 50
	}

	var payload struct {
		Messages []wireMessage `json:"messages"`
	}
	path := fmt.Sprintf("/v1/channels/%s/messages?limit=%d", url.PathEscape(channelID), limit)
	status, err := a.getJSON(ctx, path, &payload)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list messages: status %d", status)
	}

	// The indexer serves newest first; the terminal renders oldest
	// first.
	messages := make([]domain.Message, 0, len(payload.Messages))
	for i := len(payload.Messages) - 1; i >= 0; i-- {
		msg, err := decodeMessage(payload.Messages[i])
		if err != nil {
			return nil, fmt.Errorf("list messages: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (a Adapter) ResolveName(ctx context.Context, addr domain.Address) (string, error) {
	if addr.IsZero() {
		return "", errors.New("resolve name: address is required")
	}

	var payload struct {
		Name string `json:"name"`
	}
	status, err := a.getJSON(ctx, "/v1/names/"+url.PathEscape(addr.String()), &payload)
	if err != nil {
		return "", fmt.Errorf("resolve name: %w", err)
	}
	switch status {
	case http.StatusOK:
		return payload.Name, nil
	case http.StatusNotFound:
		return "", nil
	}
	return "", fmt.Errorf("resolve name: status %d", status)
}

// getJSON performs a GET and decodes 200 responses into out. Non-200
// statuses come back undecoded for the caller to map.
func (a Adapter) getJSON(ctx context.Context, path string, out interface{}) (int, error) {
	endpoint, err := buildDirectoryURL(a.BaseURL, path)
	if err != nil {
		return 0, err
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDirectoryResponseBytes)).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func (a Adapter) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func (a Adapter) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := a.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 15 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildDirectoryURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("directory base url is required")
	}
	if path == "" {
		return "", errors.New("directory path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse directory base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("directory base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("directory base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse directory path: %w", err)
	}
	return endpoint.String(), nil
}

func decodeChannel(wire wireChannel) (domain.ChannelRef, error) {
	if wire.ID == "" || wire.Name == "" {
		return domain.ChannelRef{}, errors.New("channel entry missing id or name")
	}

	ref := domain.ChannelRef{ID: wire.ID, Name: wire.Name}
	if wire.Creator != "" {
		creator, err := domain.ParseAddress(wire.Creator)
		if err != nil {
			return domain.ChannelRef{}, fmt.Errorf("channel %s creator: %w", wire.Name, err)
		}
		ref.Creator = creator
	}
	return ref, nil
}

// decodeMessage maps an indexed message. Everything the directory
// serves is on-chain already, so delivery is always confirmed.
func decodeMessage(wire wireMessage) (domain.Message, error) {
	author, err := domain.ParseAddress(wire.Author)
	if err != nil {
		return domain.Message{}, fmt.Errorf("message author: %w", err)
	}

	return domain.Message{
		Channel:    wire.Channel,
		Author:     author,
		AuthorName: wire.AuthorName,
		Body:       wire.Body,
		SentAt:     wire.SentAt,
		Delivery:   domain.DeliveryConfirmed,
	}, nil
}
