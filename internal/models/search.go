package models

// Search kind filters accepted by the catalog aggregator.
const (
	SearchKindAll   = "all"
	SearchKindMovie = "movie"
	SearchKindBook  = "book"
)

// SearchResult is the normalized shape shared by both catalog providers.
type SearchResult struct {
	ExternalID  string  `json:"external_id"`           // Provider-prefixed id
	Name        string  `json:"name"`                  // Title
	Type        string  `json:"type"`                  // movie or book
	Description *string `json:"description,omitempty"` // Optional
	PosterURL   *string `json:"poster_url,omitempty"`  // Optional, always absolute
}
