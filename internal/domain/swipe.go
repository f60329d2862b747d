package domain

import "time"

// Swipe records a renter's like or pass on a listing.
type Swipe struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	ListingID string    `json:"listing_id" db:"listing_id"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
