package repository

import (
	"context"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

type SwipeRepository interface {
	Create(ctx context.Context, swipe *domain.Swipe) error
	GetByUserAndListing(ctx context.Context, userID int, listingID string) (*domain.Swipe, error)
	// GetSwipedListingIDs returns every listing the user has already swiped,
	// used to exclude them from the feed.
	GetSwipedListingIDs(ctx context.Context, userID int) ([]string, error)
	// GetLikesForOwner returns likes received across all of an owner's listings.
	GetLikesForOwner(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Swipe, error)
	// DeleteDislikes removes a user's pass swipes so those listings can
	// reappear in the feed. Returns the number removed.
	DeleteDislikes(ctx context.Context, userID int) (int, error)
}
