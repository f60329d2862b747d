package repository

import (
	"context"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetByOwner(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Listing, error)
	// Search returns candidate listings for the feed, newest first,
	// excluding those owned by excludeOwnerID.
	Search(ctx context.Context, excludeOwnerID int, limit, offset int) ([]*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
}
