package message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository, matchRepo repository.MatchRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
	}
}

// SendRequest represents a new direct message
type SendRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// Send delivers a message into a match's conversation. Only participants of
// an active match may send.
func (uc *MessageUseCase) Send(ctx context.Context, senderID, matchID int, req *SendRequest) (*domain.Message, error) {
	match, err := uc.participantMatch(ctx, senderID, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsActive {
		return nil, domain.ErrMatchInactive
	}

	message := &domain.Message{
		ID:       uuid.NewString(),
		MatchID:  matchID,
		SenderID: senderID,
		Body:     req.Body,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// GetConversation returns a page of the conversation, newest first, and
// marks the other participant's messages as read.
func (uc *MessageUseCase) GetConversation(ctx context.Context, userID, matchID int, limit, offset int) ([]*domain.Message, error) {
	if _, err := uc.participantMatch(ctx, userID, matchID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}

	messages, err := uc.messageRepo.GetByMatch(ctx, matchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	if err := uc.messageRepo.MarkRead(ctx, matchID, userID); err != nil {
		fmt.Printf("[message] failed to mark messages read in match %d: %v\n", matchID, err)
	}

	return messages, nil
}

// GetConversationSince returns messages newer than since, oldest first.
// Polling clients call this with the timestamp of the last message they saw.
func (uc *MessageUseCase) GetConversationSince(ctx context.Context, userID, matchID int, since time.Time) ([]*domain.Message, error) {
	if _, err := uc.participantMatch(ctx, userID, matchID); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetSince(ctx, matchID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}

// UnreadCount returns how many messages in the match the user has not read.
func (uc *MessageUseCase) UnreadCount(ctx context.Context, userID, matchID int) (int, error) {
	if _, err := uc.participantMatch(ctx, userID, matchID); err != nil {
		return 0, err
	}
	return uc.messageRepo.CountUnread(ctx, matchID, userID)
}

func (uc *MessageUseCase) participantMatch(ctx context.Context, userID, matchID int) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(userID) {
		return nil, domain.ErrNotMatchParticipant
	}
	return match, nil
}
