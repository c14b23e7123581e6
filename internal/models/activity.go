package models

// ActivityEvent is published to Kafka after a successful watchlist mutation.
type ActivityEvent struct {
	EventID    string `json:"event_id"`
	Timestamp  int64  `json:"timestamp"`
	UserID     string `json:"user_id"`
	EntryID    string `json:"entry_id"`
	ExternalID string `json:"external_id,omitempty"`
	Action     string `json:"action"` // "add" or "update"
	Status     string `json:"status"`
}
