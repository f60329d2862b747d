package swipe

import (
	"context"
	"fmt"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
)

type SwipeUseCase struct {
	swipeRepo   repository.SwipeRepository
	matchRepo   repository.MatchRepository
	listingRepo repository.ListingRepository
	feedCache   repository.FeedCache
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	listingRepo repository.ListingRepository,
	feedCache repository.FeedCache,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		listingRepo: listingRepo,
		feedCache:   feedCache,
	}
}

// SwipeRequest represents a swipe action on a listing
type SwipeRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	IsLike    bool   `json:"is_like"`
}

// SwipeResponse represents swipe result
type SwipeResponse struct {
	IsMatch bool            `json:"is_match"`
	Swipe   *domain.Swipe   `json:"swipe,omitempty"`
	Match   *domain.Match   `json:"match,omitempty"`
	Listing *ListingSummary `json:"listing,omitempty"`
}

// ListingSummary is the listing info returned with a match
type ListingSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Price    int64  `json:"price"`
	Image    string `json:"image,omitempty"`
	OwnerID  int    `json:"owner_id"`
}

// LikeReceivedResponse represents a like received on one of an owner's listings
type LikeReceivedResponse struct {
	SwipeID   int             `json:"swipe_id"`
	RenterID  int             `json:"renter_id"`
	Listing   *ListingSummary `json:"listing"`
	CreatedAt string          `json:"created_at"`
}

// CreateSwipe records a swipe. A like on a listing immediately creates a
// match with its owner, opening a conversation.
func (uc *SwipeUseCase) CreateSwipe(ctx context.Context, userID int, req *SwipeRequest) (*SwipeResponse, error) {
	listing, err := uc.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	if listing.IsOwnedBy(userID) {
		return nil, domain.ErrCannotSwipeOwnListing
	}

	existingSwipe, err := uc.swipeRepo.GetByUserAndListing(ctx, userID, req.ListingID)
	if err == nil && existingSwipe != nil {
		return nil, domain.ErrSwipeAlreadyExists
	}

	swipe := &domain.Swipe{
		UserID:    userID,
		ListingID: req.ListingID,
		IsLike:    req.IsLike,
	}

	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	if err := uc.feedCache.MarkSeen(ctx, userID, req.ListingID); err != nil {
		fmt.Printf("[swipe] failed to mark listing %s seen: %v\n", req.ListingID, err)
	}

	response := &SwipeResponse{
		IsMatch: false,
		Swipe:   swipe,
	}

	if req.IsLike {
		match, err := uc.createMatch(ctx, userID, listing)
		if err != nil {
			// Return the swipe even if match creation fails.
			fmt.Printf("[swipe] match creation failed for listing %s: %v\n", req.ListingID, err)
			return response, nil
		}

		response.IsMatch = true
		response.Match = match
		response.Listing = summarize(listing)
	}

	return response, nil
}

// createMatch creates a match between the renter and the listing's owner,
// reusing an existing one if the renter liked this listing before.
func (uc *SwipeUseCase) createMatch(ctx context.Context, renterID int, listing *domain.Listing) (*domain.Match, error) {
	existing, err := uc.matchRepo.GetByRenterAndListing(ctx, renterID, listing.ID)
	if err == nil && existing != nil {
		return existing, nil
	}

	match := &domain.Match{
		RenterID:  renterID,
		OwnerID:   listing.OwnerID,
		ListingID: listing.ID,
		IsActive:  true,
	}

	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// GetMyMatches returns the user's active matches, newest first.
func (uc *SwipeUseCase) GetMyMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.matchRepo.GetUserMatches(ctx, userID, limit, offset)
}

// GetLikesReceived returns likes on the owner's listings.
func (uc *SwipeUseCase) GetLikesReceived(ctx context.Context, ownerID int, limit, offset int) ([]*LikeReceivedResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	likes, err := uc.swipeRepo.GetLikesForOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes received: %w", err)
	}

	responses := make([]*LikeReceivedResponse, 0, len(likes))
	for _, like := range likes {
		listing, err := uc.listingRepo.GetByID(ctx, like.ListingID)
		if err != nil {
			continue
		}

		responses = append(responses, &LikeReceivedResponse{
			SwipeID:   like.ID,
			RenterID:  like.UserID,
			Listing:   summarize(listing),
			CreatedAt: like.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return responses, nil
}

func summarize(listing *domain.Listing) *ListingSummary {
	return &ListingSummary{
		ID:       listing.ID,
		Title:    listing.Title,
		Location: listing.Location,
		Price:    listing.Price,
		Image:    listing.CoverImage(),
		OwnerID:  listing.OwnerID,
	}
}
