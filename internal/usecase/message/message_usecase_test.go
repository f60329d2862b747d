package message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

type fakeMatchRepo struct {
	match *domain.Match
}

func (f *fakeMatchRepo) Create(context.Context, *domain.Match) error { return nil }
func (f *fakeMatchRepo) GetByID(_ context.Context, id int) (*domain.Match, error) {
	if f.match == nil || f.match.ID != id {
		return nil, domain.ErrMatchNotFound
	}
	return f.match, nil
}
func (f *fakeMatchRepo) GetByRenterAndListing(context.Context, int, string) (*domain.Match, error) {
	return nil, nil
}
func (f *fakeMatchRepo) GetUserMatches(context.Context, int, int, int) ([]*domain.Match, error) {
	return nil, nil
}
func (f *fakeMatchRepo) UpdateStatus(context.Context, int, bool) error { return nil }

type fakeMessageRepo struct {
	messages   []*domain.Message
	markedRead []int
	sinceArg   time.Time
}

func (f *fakeMessageRepo) Create(_ context.Context, m *domain.Message) error {
	f.messages = append(f.messages, m)
	return nil
}
func (f *fakeMessageRepo) GetByMatch(_ context.Context, matchID int, limit, _ int) ([]*domain.Message, error) {
	out := make([]*domain.Message, 0, len(f.messages))
	for _, m := range f.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
func (f *fakeMessageRepo) GetSince(_ context.Context, matchID int, since time.Time) ([]*domain.Message, error) {
	f.sinceArg = since
	out := make([]*domain.Message, 0)
	for _, m := range f.messages {
		if m.MatchID == matchID && m.CreatedAt.After(since) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMessageRepo) MarkRead(_ context.Context, _ int, readerID int) error {
	f.markedRead = append(f.markedRead, readerID)
	return nil
}
func (f *fakeMessageRepo) CountUnread(_ context.Context, matchID int, userID int) (int, error) {
	count := 0
	for _, m := range f.messages {
		if m.MatchID == matchID && m.SenderID != userID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func activeMatch() *fakeMatchRepo {
	return &fakeMatchRepo{match: &domain.Match{ID: 10, RenterID: 1, OwnerID: 2, IsActive: true}}
}

func TestSend(t *testing.T) {
	messages := &fakeMessageRepo{}
	uc := NewMessageUseCase(messages, activeMatch())

	msg, err := uc.Send(context.Background(), 1, 10, &SendRequest{Body: "Is it still available?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID == "" {
		t.Error("message ID not assigned")
	}
	if msg.MatchID != 10 || msg.SenderID != 1 || msg.Body != "Is it still available?" {
		t.Errorf("message: %+v", msg)
	}
	if len(messages.messages) != 1 {
		t.Errorf("stored %d messages, want 1", len(messages.messages))
	}
}

func TestSendRejectsNonParticipant(t *testing.T) {
	uc := NewMessageUseCase(&fakeMessageRepo{}, activeMatch())

	_, err := uc.Send(context.Background(), 99, 10, &SendRequest{Body: "hi"})
	if !errors.Is(err, domain.ErrNotMatchParticipant) {
		t.Errorf("got %v, want ErrNotMatchParticipant", err)
	}
}

func TestSendRejectsInactiveMatch(t *testing.T) {
	matches := &fakeMatchRepo{match: &domain.Match{ID: 10, RenterID: 1, OwnerID: 2, IsActive: false}}
	uc := NewMessageUseCase(&fakeMessageRepo{}, matches)

	_, err := uc.Send(context.Background(), 1, 10, &SendRequest{Body: "hi"})
	if !errors.Is(err, domain.ErrMatchInactive) {
		t.Errorf("got %v, want ErrMatchInactive", err)
	}
}

func TestSendUnknownMatch(t *testing.T) {
	uc := NewMessageUseCase(&fakeMessageRepo{}, &fakeMatchRepo{})

	_, err := uc.Send(context.Background(), 1, 10, &SendRequest{Body: "hi"})
	if !errors.Is(err, domain.ErrMatchNotFound) {
		t.Errorf("got %v, want ErrMatchNotFound", err)
	}
}

func TestGetConversationMarksRead(t *testing.T) {
	messages := &fakeMessageRepo{messages: []*domain.Message{
		{ID: "a", MatchID: 10, SenderID: 2, Body: "hello"},
	}}
	uc := NewMessageUseCase(messages, activeMatch())

	got, err := uc.GetConversation(context.Background(), 1, 10, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d messages, want 1", len(got))
	}
	if len(messages.markedRead) != 1 || messages.markedRead[0] != 1 {
		t.Errorf("marked read for %v, want reader 1", messages.markedRead)
	}
}

func TestGetConversationRejectsNonParticipant(t *testing.T) {
	uc := NewMessageUseCase(&fakeMessageRepo{}, activeMatch())

	_, err := uc.GetConversation(context.Background(), 99, 10, 0, 0)
	if !errors.Is(err, domain.ErrNotMatchParticipant) {
		t.Errorf("got %v, want ErrNotMatchParticipant", err)
	}
}

func TestGetConversationSince(t *testing.T) {
	cutoff := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	messages := &fakeMessageRepo{messages: []*domain.Message{
		{ID: "old", MatchID: 10, SenderID: 2, CreatedAt: cutoff.Add(-time.Hour)},
		{ID: "new", MatchID: 10, SenderID: 2, CreatedAt: cutoff.Add(time.Hour)},
	}}
	uc := NewMessageUseCase(messages, activeMatch())

	got, err := uc.GetConversationSince(context.Background(), 1, 10, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("got %+v, want only the newer message", got)
	}
	if !messages.sinceArg.Equal(cutoff) {
		t.Errorf("cursor passed as %v, want %v", messages.sinceArg, cutoff)
	}
}

func TestUnreadCount(t *testing.T) {
	messages := &fakeMessageRepo{messages: []*domain.Message{
		{ID: "a", MatchID: 10, SenderID: 2, IsRead: false},
		{ID: "b", MatchID: 10, SenderID: 2, IsRead: true},
		{ID: "c", MatchID: 10, SenderID: 1, IsRead: false}, // own message
	}}
	uc := NewMessageUseCase(messages, activeMatch())

	count, err := uc.UnreadCount(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d, want 1", count)
	}
}
