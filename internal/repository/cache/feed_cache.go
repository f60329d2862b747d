package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vibenest/vibenest-backend/internal/repository"
)

// seenTTL bounds how long a listing stays hidden after being shown. A
// browsing session rarely outlives it.
const seenTTL = 24 * time.Hour

type feedCache struct {
	client *redis.Client
}

// NewFeedCache returns a Redis-backed seen-listings cache. A nil client
// yields a no-op cache so the feed still works without Redis.
func NewFeedCache(client *redis.Client) repository.FeedCache {
	return &feedCache{client: client}
}

func seenKey(userID int) string {
	return fmt.Sprintf("feed:seen:%d", userID)
}

func (c *feedCache) MarkSeen(ctx context.Context, userID int, listingID string) error {
	if c.client == nil {
		return nil
	}
	key := seenKey(userID)
	if err := c.client.SAdd(ctx, key, listingID).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, seenTTL).Err()
}

func (c *feedCache) SeenIDs(ctx context.Context, userID int) (map[string]struct{}, error) {
	if c.client == nil {
		return nil, nil
	}
	ids, err := c.client.SMembers(ctx, seenKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen, nil
}

func (c *feedCache) Clear(ctx context.Context, userID int) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, seenKey(userID)).Err()
}
