package domain

import "time"

// ScoreBreakdown holds the per-dimension compatibility scores, each 0-100.
type ScoreBreakdown struct {
	Style      int `json:"style"`
	Color      int `json:"color"`
	Activities int `json:"activities"`
	Price      int `json:"price"`
}

// MatchScore is the compatibility of one listing against one set of
// preferences. It is computed on demand and never persisted.
type MatchScore struct {
	Overall   int            `json:"overall"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Match connects a renter with a listing's owner after a like, opening a
// direct-message conversation between them.
type Match struct {
	ID        int       `json:"id" db:"id"`
	RenterID  int       `json:"renter_id" db:"renter_id"`
	OwnerID   int       `json:"owner_id" db:"owner_id"`
	ListingID string    `json:"listing_id" db:"listing_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID int) bool {
	return m.RenterID == userID || m.OwnerID == userID
}

func (m *Match) GetOtherUserID(userID int) (int, bool) {
	if m.RenterID == userID {
		return m.OwnerID, true
	}
	if m.OwnerID == userID {
		return m.RenterID, true
	}
	return 0, false
}
