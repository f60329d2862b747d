package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (id, match_id, sender_id, body, is_read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, message.ID, message.MatchID, message.SenderID, message.Body, message.IsRead).
		Scan(&message.CreatedAt)
}

func (r *messageRepository) GetByMatch(ctx context.Context, matchID int, limit, offset int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE match_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID, limit, offset)
	return messages, err
}

func (r *messageRepository) GetSince(ctx context.Context, matchID int, since time.Time) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE match_id = $1 AND created_at > $2
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID, since)
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID int, readerID int) error {
	query := `UPDATE messages SET is_read = true WHERE match_id = $1 AND sender_id != $2 AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, matchID, readerID)
	return err
}

func (r *messageRepository) CountUnread(ctx context.Context, matchID int, userID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE match_id = $1 AND sender_id != $2 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, matchID, userID)
	return count, err
}
