package repository

import (
	"context"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByRenterAndListing(ctx context.Context, renterID int, listingID string) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id int, isActive bool) error
}
