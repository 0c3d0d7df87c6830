package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
)

// defaultRetainPerChannel bounds the local cache. Older rows are
// pruned on append; the directory stays the source of truth for
// anything deeper.
const defaultRetainPerChannel = 500

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	local_id TEXT NOT NULL DEFAULT '',
	channel TEXT NOT NULL,
	author TEXT NOT NULL,
	author_name TEXT NOT NULL DEFAULT '',
	body TEXT NOT NULL,
	sent_at INTEGER NOT NULL,
	delivery TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_channel_sent ON messages(channel, sent_at);
CREATE INDEX IF NOT EXISTS idx_messages_local_id ON messages(local_id) WHERE local_id != '';
`

// Store caches channel transcripts in a local sqlite file so history
// renders offline and locally sent messages keep their delivery state
// across restarts.
type Store struct {
	db     *sql.DB
	retain int
}

var _ ports.TranscriptStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("transcript db path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open transcript db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create transcript schema: %w", err)
	}

	return &Store{db: db, retain: defaultRetainPerChannel}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, msg domain.Message) error {
	if msg.Channel == "" {
		return errors.New("message channel is required")
	}

	localID := ""
	if msg.LocalID != uuid.Nil {
		localID = msg.LocalID.String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (local_id, channel, author, author_name, body, sent_at, delivery)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		localID, msg.Channel, msg.Author.String(), msg.AuthorName, msg.Body,
		msg.SentAt.UnixMilli(), string(msg.Delivery))
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	return s.prune(ctx, msg.Channel)
}

func (s *Store) Recent(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	if channelID == "" {
		return nil, errors.New("channel id is required")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT local_id, channel, author, author_name, body, sent_at, delivery
		FROM messages
		WHERE channel = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT ?`,
		channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript: %w", err)
	}

	// The query walks newest first so LIMIT keeps the right rows;
	// callers render oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (s *Store) MarkDelivery(ctx context.Context, localID string, state domain.DeliveryState) error {
	if localID == "" {
		return errors.New("local id is required")
	}

	// A missing row is fine: the cache may have pruned the message.
	_, err := s.db.ExecContext(ctx,
		`UPDATE messages SET delivery = ? WHERE local_id = ?`,
		string(state), localID)
	if err != nil {
		return fmt.Errorf("mark delivery: %w", err)
	}

	return nil
}

func (s *Store) prune(ctx context.Context, channelID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM messages
		WHERE channel = ? AND id NOT IN (
			SELECT id FROM messages
			WHERE channel = ?
			ORDER BY sent_at DESC, id DESC
			LIMIT ?
		)`,
		channelID, channelID, s.retain)
	if err != nil {
		return fmt.Errorf("prune transcript: %w", err)
	}
	return nil
}

func scanMessage(rows *sql.Rows) (domain.Message, error) {
	var (
		localID  string
		channel  string
		author   string
		name     string
		body     string
		sentAt   int64
		delivery string
	)
	if err := rows.Scan(&localID, &channel, &author, &name, &body, &sentAt, &delivery); err != nil {
		return domain.Message{}, fmt.Errorf("scan message: %w", err)
	}

	msg := domain.Message{
		Channel:    channel,
		Author:     domain.Address(author),
		AuthorName: name,
		Body:       body,
		SentAt:     time.UnixMilli(sentAt).UTC(),
		Delivery:   domain.DeliveryState(delivery),
	}
	if localID != "" {
		id, err := uuid.Parse(localID)
		if err != nil {
			return domain.Message{}, fmt.Errorf("parse local id %q: %w", localID, err)
		}
		msg.LocalID = id
	}

	return msg, nil
}
