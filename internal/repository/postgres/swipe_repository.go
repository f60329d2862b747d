package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (user_id, listing_id, is_like)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, swipe.UserID, swipe.ListingID, swipe.IsLike).
		Scan(&swipe.ID, &swipe.CreatedAt)
}

func (r *swipeRepository) GetByUserAndListing(ctx context.Context, userID int, listingID string) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE user_id = $1 AND listing_id = $2`
	err := r.db.GetContext(ctx, &swipe, query, userID, listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) GetSwipedListingIDs(ctx context.Context, userID int) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, `SELECT listing_id FROM swipes WHERE user_id = $1`, userID)
	return ids, err
}

func (r *swipeRepository) GetLikesForOwner(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT s.* FROM swipes s
		JOIN listings l ON l.id = s.listing_id
		WHERE l.owner_id = $1 AND s.is_like = true
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &swipes, query, ownerID, limit, offset)
	return swipes, err
}

func (r *swipeRepository) DeleteDislikes(ctx context.Context, userID int) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM swipes WHERE user_id = $1 AND is_like = false`, userID)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}
