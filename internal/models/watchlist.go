package models

import (
	"time"

	"github.com/google/uuid"
)

// Watchlist entry statuses as stored in watchlist_entries.status.
const (
	StatusPlan     = "plan"
	StatusWatching = "watching" // also covers "reading" for books
	StatusDone     = "done"
)

// Rating bounds for watchlist entries, inclusive.
const (
	RatingMin = 1
	RatingMax = 10
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s string) bool {
	return s == StatusPlan || s == StatusWatching || s == StatusDone
}

// WatchlistEntryDB represents a user's tracking record for one item.
type WatchlistEntryDB struct {
	EntryID   uuid.UUID `json:"id" db:"entry_id"`         // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`     // Owning user
	ItemID    uuid.UUID `json:"item_id" db:"item_id"`     // Tracked item
	Status    string    `json:"status" db:"status"`       // plan, watching or done
	Rating    *int      `json:"rating" db:"rating"`       // Optional, 1..10
	Review    *string   `json:"review" db:"review"`       // Optional free text
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WatchlistItemDB is a watchlist entry joined with its item fields,
// as returned by list queries.
type WatchlistItemDB struct {
	EntryID     uuid.UUID `json:"id" db:"entry_id"`
	Status      string    `json:"status" db:"status"`
	Rating      *int      `json:"rating" db:"rating"`
	Review      *string   `json:"review" db:"review"`
	ExternalID  string    `json:"external_id" db:"external_id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Description *string   `json:"description,omitempty" db:"description"`
	PosterURL   *string   `json:"poster_url,omitempty" db:"poster_url"`
}
