package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/repository"
)

type listingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (id, owner_id, title, description, location, price, size, vibe, highlights, images, visual_analysis)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		listing.ID,
		listing.OwnerID,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.Price,
		listing.Size,
		listing.Vibe,
		pq.Array(listing.Highlights),
		pq.Array(listing.Images),
		listing.VisualAnalysis,
	).Scan(&listing.CreatedAt, &listing.UpdatedAt)
}

const listingColumns = `id, owner_id, title, description, location, price, size, vibe, highlights, images, visual_analysis, created_at, updated_at`

func (r *listingRepository) scanListing(row *sql.Row) (*domain.Listing, error) {
	var l domain.Listing
	var va domain.VisualAnalysis
	var hasVA sql.NullString
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Location, &l.Price, &l.Size, &l.Vibe,
		pq.Array(&l.Highlights), pq.Array(&l.Images), &hasVA, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	if hasVA.Valid {
		if err := va.Scan(hasVA.String); err != nil {
			return nil, err
		}
		l.VisualAnalysis = &va
	}
	return &l, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	return r.scanListing(r.db.QueryRowContext(ctx, query, id))
}

func (r *listingRepository) GetByOwner(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Listing, error) {
	query := `
		SELECT ` + listingColumns + ` FROM listings
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.selectListings(ctx, query, ownerID, limit, offset)
}

func (r *listingRepository) Search(ctx context.Context, excludeOwnerID int, limit, offset int) ([]*domain.Listing, error) {
	query := `
		SELECT ` + listingColumns + ` FROM listings
		WHERE owner_id != $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.selectListings(ctx, query, excludeOwnerID, limit, offset)
}

func (r *listingRepository) selectListings(ctx context.Context, query string, args ...interface{}) ([]*domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		var va domain.VisualAnalysis
		var hasVA sql.NullString
		err := rows.Scan(
			&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Location, &l.Price, &l.Size, &l.Vibe,
			pq.Array(&l.Highlights), pq.Array(&l.Images), &hasVA, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if hasVA.Valid {
			if err := va.Scan(hasVA.String); err != nil {
				return nil, err
			}
			l.VisualAnalysis = &va
		}
		listings = append(listings, &l)
	}
	return listings, rows.Err()
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	query := `
		UPDATE listings
		SET title = $1, description = $2, location = $3, price = $4, size = $5,
		    vibe = $6, highlights = $7, images = $8, visual_analysis = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.Price,
		listing.Size,
		listing.Vibe,
		pq.Array(listing.Highlights),
		pq.Array(listing.Images),
		listing.VisualAnalysis,
		listing.ID,
	).Scan(&listing.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrListingNotFound
	}
	return err
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}
