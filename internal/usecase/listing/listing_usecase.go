package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
	"github.com/vibenest/vibenest-backend/internal/usecase/generation"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	generator   *generation.Orchestrator
}

func NewListingUseCase(listingRepo repository.ListingRepository, generator *generation.Orchestrator) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		generator:   generator,
	}
}

// CreateListingRequest represents a listing upload
type CreateListingRequest struct {
	Title           string   `json:"title" binding:"omitempty,max=200"`
	Description     string   `json:"description" binding:"omitempty,max=5000"`
	Location        string   `json:"location" binding:"required,max=200"`
	Price           int64    `json:"price" binding:"required,min=0"`
	Size            string   `json:"size" binding:"required,max=20"`
	Currency        string   `json:"currency" binding:"omitempty,len=3"`
	Vibe            *string  `json:"vibe" binding:"omitempty,vibe"`
	Highlights      []string `json:"highlights"`
	Images          []string `json:"images" binding:"required,min=1,dive,url"`
	GenerateContent bool     `json:"generate_content"`
}

// UpdateListingRequest represents a listing edit. AI-derived fields are not
// recomputed here; owners re-trigger generation explicitly.
type UpdateListingRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Location    *string   `json:"location" binding:"omitempty,max=200"`
	Price       *int64    `json:"price" binding:"omitempty,min=0"`
	Size        *string   `json:"size" binding:"omitempty,max=20"`
	Vibe        *string   `json:"vibe" binding:"omitempty,vibe"`
	Highlights  *[]string `json:"highlights"`
	Images      *[]string `json:"images" binding:"omitempty,min=1,dive,url"`
}

// Create persists a new listing. When content generation is requested the
// orchestrator runs first and its output populates the text fields; a failed
// generation never blocks the upload because the orchestrator falls back to
// template content internally.
func (uc *ListingUseCase) Create(ctx context.Context, ownerID int, req *CreateListingRequest) (*domain.Listing, error) {
	if len(req.Images) == 0 {
		return nil, domain.ErrNoImages
	}

	listing := &domain.Listing{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Size:        req.Size,
		Vibe:        req.Vibe,
		Highlights:  req.Highlights,
		Images:      req.Images,
	}

	if req.GenerateContent {
		uc.generate(ctx, listing, req.Currency)
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return listing, nil
}

// RegenerateContent re-runs content generation for an existing listing and
// persists the refreshed analysis and copy. Only the owner may trigger it.
func (uc *ListingUseCase) RegenerateContent(ctx context.Context, userID int, listingID, currency string) (*domain.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(userID) {
		return nil, domain.ErrNotListingOwner
	}

	uc.generate(ctx, listing, currency)

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	return listing, nil
}

// generate runs the orchestrator and copies its output onto the listing.
func (uc *ListingUseCase) generate(ctx context.Context, listing *domain.Listing, currency string) {
	if uc.generator == nil {
		fmt.Printf("[listing] content generation unavailable, keeping manual fields for %s\n", listing.ID)
		return
	}

	analysis, err := uc.generator.AnalyzeImages(ctx, &generation.AnalyzeRequest{
		ImageURLs:       listing.Images,
		GenerateContent: true,
		Metadata: &generation.ListingMetadata{
			Location: listing.Location,
			Price:    listing.Price,
			Size:     listing.Size,
			Currency: currency,
		},
	})
	if err != nil {
		// Only an empty image list reaches here, and Create guards that.
		fmt.Printf("[listing] content generation failed for %s: %v\n", listing.ID, err)
		return
	}

	listing.VisualAnalysis = analysis
	if content := analysis.GeneratedContent; content != nil {
		listing.Title = content.Title
		listing.Description = content.Description
		listing.Highlights = content.Highlights
	}
}

func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) GetMyListings(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Listing, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.listingRepo.GetByOwner(ctx, ownerID, limit, offset)
}

// Update edits listing fields. The stored visual analysis is untouched.
func (uc *ListingUseCase) Update(ctx context.Context, userID int, listingID string, req *UpdateListingRequest) (*domain.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(userID) {
		return nil, domain.ErrNotListingOwner
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Size != nil {
		listing.Size = *req.Size
	}
	if req.Vibe != nil {
		listing.Vibe = req.Vibe
	}
	if req.Highlights != nil {
		listing.Highlights = *req.Highlights
	}
	if req.Images != nil {
		listing.Images = *req.Images
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	return listing, nil
}

func (uc *ListingUseCase) Delete(ctx context.Context, userID int, listingID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if !listing.IsOwnedBy(userID) {
		return domain.ErrNotListingOwner
	}
	return uc.listingRepo.Delete(ctx, listingID)
}
