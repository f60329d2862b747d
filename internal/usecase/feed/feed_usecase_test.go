package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/usecase/matching"
)

type fakeListingRepo struct {
	listings []*domain.Listing
}

func (f *fakeListingRepo) Create(context.Context, *domain.Listing) error { return nil }
func (f *fakeListingRepo) GetByID(context.Context, string) (*domain.Listing, error) {
	return nil, domain.ErrListingNotFound
}
func (f *fakeListingRepo) GetByOwner(context.Context, int, int, int) ([]*domain.Listing, error) {
	return nil, nil
}
func (f *fakeListingRepo) Search(_ context.Context, excludeOwnerID int, limit, _ int) ([]*domain.Listing, error) {
	out := make([]*domain.Listing, 0, len(f.listings))
	for _, l := range f.listings {
		if l.OwnerID == excludeOwnerID {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
func (f *fakeListingRepo) Update(context.Context, *domain.Listing) error { return nil }
func (f *fakeListingRepo) Delete(context.Context, string) error          { return nil }

type fakeSwipeRepo struct {
	swipedIDs []string
	deleted   int
}

func (f *fakeSwipeRepo) Create(context.Context, *domain.Swipe) error { return nil }
func (f *fakeSwipeRepo) GetByUserAndListing(context.Context, int, string) (*domain.Swipe, error) {
	return nil, nil
}
func (f *fakeSwipeRepo) GetSwipedListingIDs(context.Context, int) ([]string, error) {
	return f.swipedIDs, nil
}
func (f *fakeSwipeRepo) GetLikesForOwner(context.Context, int, int, int) ([]*domain.Swipe, error) {
	return nil, nil
}
func (f *fakeSwipeRepo) DeleteDislikes(context.Context, int) (int, error) {
	return f.deleted, nil
}

type fakeFeedCache struct {
	seen    map[string]struct{}
	marked  []string
	cleared bool
	failing bool
}

func (f *fakeFeedCache) MarkSeen(_ context.Context, _ int, listingID string) error {
	if f.failing {
		return errors.New("cache down")
	}
	f.marked = append(f.marked, listingID)
	return nil
}
func (f *fakeFeedCache) SeenIDs(context.Context, int) (map[string]struct{}, error) {
	if f.failing {
		return nil, errors.New("cache down")
	}
	return f.seen, nil
}
func (f *fakeFeedCache) Clear(context.Context, int) error {
	if f.failing {
		return errors.New("cache down")
	}
	f.cleared = true
	return nil
}

func listing(id string, ownerID int, vibe string, price int64) *domain.Listing {
	l := &domain.Listing{
		ID:      id,
		OwnerID: ownerID,
		Price:   price,
		Images:  []string{"https://img/" + id + ".jpg"},
	}
	if vibe != "" {
		l.Vibe = &vibe
	}
	return l
}

func seekerPrefs() *FeedRequest {
	return &FeedRequest{
		Preferences: domain.Preferences{
			Styles:     []string{"modern", "industrial", "minimalist"},
			Colors:     []string{"monochrome"},
			Activities: []string{"nightlife"},
			PriceRange: domain.PriceRange{Min: 1000, Max: 2000},
		},
	}
}

func TestGetFeedRanksBestMatchFirst(t *testing.T) {
	listings := &fakeListingRepo{listings: []*domain.Listing{
		listing("weak", 2, matching.VibeCozyRetreat, 5000),
		listing("strong", 3, matching.VibeUrbanSanctuary, 1500),
		listing("medium", 4, matching.VibeUrbanSanctuary, 4000),
	}}
	uc := NewFeedUseCase(listings, &fakeSwipeRepo{}, &fakeFeedCache{})

	feed, err := uc.GetFeed(context.Background(), 1, seekerPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(feed) != 3 {
		t.Fatalf("got %d entries, want 3", len(feed))
	}
	wantOrder := []string{"strong", "medium", "weak"}
	for i, want := range wantOrder {
		if feed[i].Listing.ID != want {
			t.Errorf("position %d: got %q, want %q", i, feed[i].Listing.ID, want)
		}
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Score.Overall > feed[i-1].Score.Overall {
			t.Errorf("feed not sorted at position %d", i)
		}
	}
}

func TestGetFeedExcludesOwnSwipedAndSeen(t *testing.T) {
	listings := &fakeListingRepo{listings: []*domain.Listing{
		listing("own", 1, matching.VibeUrbanSanctuary, 1500),
		listing("swiped", 2, matching.VibeUrbanSanctuary, 1500),
		listing("seen", 3, matching.VibeUrbanSanctuary, 1500),
		listing("fresh", 4, matching.VibeUrbanSanctuary, 1500),
	}}
	swipes := &fakeSwipeRepo{swipedIDs: []string{"swiped"}}
	cache := &fakeFeedCache{seen: map[string]struct{}{"seen": {}}}
	uc := NewFeedUseCase(listings, swipes, cache)

	feed, err := uc.GetFeed(context.Background(), 1, seekerPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 1 || feed[0].Listing.ID != "fresh" {
		t.Fatalf("got %v, want only 'fresh'", feed)
	}
	if len(cache.marked) != 1 || cache.marked[0] != "fresh" {
		t.Errorf("marked %v, want only 'fresh'", cache.marked)
	}
}

func TestGetFeedSkipsListingsWithoutImages(t *testing.T) {
	noImages := listing("bare", 2, matching.VibeUrbanSanctuary, 1500)
	noImages.Images = nil
	listings := &fakeListingRepo{listings: []*domain.Listing{
		noImages,
		listing("ok", 3, matching.VibeUrbanSanctuary, 1500),
	}}
	uc := NewFeedUseCase(listings, &fakeSwipeRepo{}, &fakeFeedCache{})

	feed, err := uc.GetFeed(context.Background(), 1, seekerPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 1 || feed[0].Listing.ID != "ok" {
		t.Fatalf("got %d entries, want only 'ok'", len(feed))
	}
}

func TestGetFeedRejectsInvalidPriceRange(t *testing.T) {
	uc := NewFeedUseCase(&fakeListingRepo{}, &fakeSwipeRepo{}, &fakeFeedCache{})

	req := seekerPrefs()
	req.Preferences.PriceRange = domain.PriceRange{Min: 2000, Max: 1000}

	_, err := uc.GetFeed(context.Background(), 1, req)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestGetFeedRespectsLimit(t *testing.T) {
	repo := &fakeListingRepo{}
	for i := 0; i < 30; i++ {
		repo.listings = append(repo.listings,
			listing(string(rune('a'+i)), 100+i, matching.VibeUrbanSanctuary, 1500))
	}
	uc := NewFeedUseCase(repo, &fakeSwipeRepo{}, &fakeFeedCache{})

	req := seekerPrefs()
	req.Limit = 5
	feed, err := uc.GetFeed(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 5 {
		t.Errorf("got %d entries, want 5", len(feed))
	}
}

func TestGetFeedSurvivesCacheOutage(t *testing.T) {
	listings := &fakeListingRepo{listings: []*domain.Listing{
		listing("x", 2, matching.VibeUrbanSanctuary, 1500),
	}}
	uc := NewFeedUseCase(listings, &fakeSwipeRepo{}, &fakeFeedCache{failing: true})

	feed, err := uc.GetFeed(context.Background(), 1, seekerPrefs())
	if err != nil {
		t.Fatalf("cache outage must not fail the feed: %v", err)
	}
	if len(feed) != 1 {
		t.Errorf("got %d entries, want 1", len(feed))
	}
}

func TestResetDislikes(t *testing.T) {
	swipes := &fakeSwipeRepo{deleted: 3}
	cache := &fakeFeedCache{}
	uc := NewFeedUseCase(&fakeListingRepo{}, swipes, cache)

	count, err := uc.ResetDislikes(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("got %d, want 3", count)
	}
	if !cache.cleared {
		t.Error("seen cache was not cleared")
	}
}
