package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
	"github.com/vibenest/vibenest-backend/internal/usecase/matching"
)

// candidatePoolSize caps how many listings are pulled from storage before
// scoring and ranking.
const candidatePoolSize = 100

type FeedUseCase struct {
	listingRepo repository.ListingRepository
	swipeRepo   repository.SwipeRepository
	feedCache   repository.FeedCache
}

func NewFeedUseCase(
	listingRepo repository.ListingRepository,
	swipeRepo repository.SwipeRepository,
	feedCache repository.FeedCache,
) *FeedUseCase {
	return &FeedUseCase{
		listingRepo: listingRepo,
		swipeRepo:   swipeRepo,
		feedCache:   feedCache,
	}
}

// FeedRequest carries the seeker's preferences. The questionnaire result
// lives on the client, so it arrives with every request.
type FeedRequest struct {
	Preferences domain.Preferences `json:"preferences" binding:"required"`
	Limit       int                `json:"limit" binding:"omitempty,min=1,max=50"`
}

// ScoredListing is a feed entry: a listing annotated with its match score.
type ScoredListing struct {
	Listing *domain.Listing   `json:"listing"`
	Score   domain.MatchScore `json:"score"`
}

// GetFeed ranks candidate listings for the seeker, best match first.
// Already-swiped and recently-shown listings are excluded.
func (uc *FeedUseCase) GetFeed(ctx context.Context, userID int, req *FeedRequest) ([]*ScoredListing, error) {
	if !req.Preferences.PriceRange.IsValid() {
		return nil, fmt.Errorf("%w: price range min must be >= 0 and <= max", domain.ErrInvalidInput)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	candidates, err := uc.listingRepo.Search(ctx, userID, candidatePoolSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}

	swipedIDs, err := uc.swipeRepo.GetSwipedListingIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get swiped listings: %w", err)
	}
	swiped := make(map[string]struct{}, len(swipedIDs))
	for _, id := range swipedIDs {
		swiped[id] = struct{}{}
	}

	// Seen-cache misses only mean a listing may repeat; don't fail the feed.
	seen, err := uc.feedCache.SeenIDs(ctx, userID)
	if err != nil {
		fmt.Printf("[feed] seen cache unavailable for user %d: %v\n", userID, err)
		seen = nil
	}

	scored := make([]*ScoredListing, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.OwnerID == userID {
			continue
		}
		if _, ok := swiped[candidate.ID]; ok {
			continue
		}
		if _, ok := seen[candidate.ID]; ok {
			continue
		}
		if len(candidate.Images) == 0 {
			// Listings without photos are not displayable.
			continue
		}

		scored = append(scored, &ScoredListing{
			Listing: candidate,
			Score:   matching.Score(candidate, &req.Preferences),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Overall > scored[j].Score.Overall
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	for _, s := range scored {
		if err := uc.feedCache.MarkSeen(ctx, userID, s.Listing.ID); err != nil {
			fmt.Printf("[feed] failed to mark listing %s seen: %v\n", s.Listing.ID, err)
		}
	}

	return scored, nil
}

// ResetDislikes removes the user's pass swipes and clears the seen cache so
// previously dismissed listings flow back into the feed.
func (uc *FeedUseCase) ResetDislikes(ctx context.Context, userID int) (int, error) {
	count, err := uc.swipeRepo.DeleteDislikes(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete dislikes: %w", err)
	}

	if err := uc.feedCache.Clear(ctx, userID); err != nil {
		fmt.Printf("[feed] failed to clear seen cache for user %d: %v\n", userID, err)
	}

	return count, nil
}
