package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Listing struct {
	ID             string          `json:"id" db:"id"`
	OwnerID        int             `json:"owner_id" db:"owner_id"`
	Title          string          `json:"title" db:"title"`
	Description    string          `json:"description" db:"description"`
	Location       string          `json:"location" db:"location"`
	Price          int64           `json:"price" db:"price"`
	Size           string          `json:"size" db:"size"`
	Vibe           *string         `json:"vibe" db:"vibe"`
	Highlights     []string        `json:"highlights" db:"highlights"`
	Images         []string        `json:"images" db:"images"`
	VisualAnalysis *VisualAnalysis `json:"visual_analysis,omitempty" db:"visual_analysis"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// CoverImage returns the representative image: the first one uploaded.
func (l *Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

func (l *Listing) IsOwnedBy(userID int) bool {
	return l.OwnerID == userID
}

// ImageAnalysis is the raw result of analyzing a single listing photo.
// Ratings holds the visual characteristic scores on a 1-10 scale.
type ImageAnalysis struct {
	Ratings     map[string]int `json:"ratings"`
	Description string         `json:"description"`
	Observation string         `json:"observation,omitempty"`
}

// GeneratedContent is the marketing copy synthesized from image analyses.
type GeneratedContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// VisualAnalysis aggregates per-image analysis results for a listing.
// ImageAnalyses is ordered the same as Listing.Images.
type VisualAnalysis struct {
	Ratings          map[string]int    `json:"ratings"`
	ImageAnalyses    []ImageAnalysis   `json:"image_analyses"`
	GeneratedContent *GeneratedContent `json:"generated_content,omitempty"`
}

// Value implements driver.Valuer so the record can be stored as jsonb.
// A nil analysis stores as SQL NULL.
func (va *VisualAnalysis) Value() (driver.Value, error) {
	if va == nil {
		return nil, nil
	}
	return json.Marshal(va)
}

// Scan implements sql.Scanner for reading the jsonb column.
func (va *VisualAnalysis) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, va)
	case string:
		return json.Unmarshal([]byte(v), va)
	default:
		return fmt.Errorf("unsupported type %T for VisualAnalysis", src)
	}
}
