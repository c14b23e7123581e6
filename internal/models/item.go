package models

import (
	"time"

	"github.com/google/uuid"
)

// Item kinds as stored in items.type.
const (
	KindMovie = "movie"
	KindBook  = "book"
)

// ItemDB represents a deduplicated catalog item in the database.
// Items are shared reference data: created on first mention, never mutated.
type ItemDB struct {
	ItemID      uuid.UUID `json:"id" db:"item_id"`                  // Primary key
	ExternalID  string    `json:"external_id" db:"external_id"`     // Provider-prefixed id, e.g. tmdb-603 or gb-AbCd123
	Name        string    `json:"name" db:"name"`                   // Display name
	Type        string    `json:"type" db:"type"`                   // movie or book
	Description *string   `json:"description,omitempty" db:"description"` // Optional description
	PosterURL   *string   `json:"poster_url,omitempty" db:"poster_url"`   // Optional poster URL
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
