package repository

import (
	"context"
	"time"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByMatch(ctx context.Context, matchID int, limit, offset int) ([]*domain.Message, error)
	// GetSince returns messages newer than the given time, oldest first.
	// Polling clients use it as an incremental cursor.
	GetSince(ctx context.Context, matchID int, since time.Time) ([]*domain.Message, error)
	// MarkRead marks every message in the match not sent by readerID as read.
	MarkRead(ctx context.Context, matchID int, readerID int) error
	CountUnread(ctx context.Context, matchID int, userID int) (int, error)
}
