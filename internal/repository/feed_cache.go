package repository

import "context"

// FeedCache remembers which listings a user has already been shown so the
// feed does not repeat them within a browsing session. Implementations are
// best-effort: a cache miss only means a listing may be shown again.
type FeedCache interface {
	MarkSeen(ctx context.Context, userID int, listingID string) error
	SeenIDs(ctx context.Context, userID int) (map[string]struct{}, error)
	Clear(ctx context.Context, userID int) error
}
