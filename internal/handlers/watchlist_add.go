package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
	"github.com/mediatrack/media-watchlist/internal/services"
)

// WatchlistAdder defines the interface that the service must implement.
type WatchlistAdder interface {
	Add(ctx context.Context, userID uuid.UUID, res models.SearchResult) (*models.WatchlistEntryDB, *models.ItemDB, error)
}

// WatchlistAddRequest represents the JSON body for adding a catalog item
// swagger:model WatchlistAddRequest
type WatchlistAddRequest struct {
	// Provider-prefixed external id
	// required: true
	// example: tmdb-438631
	ExternalID string `json:"external_id"`

	// Display name
	// required: true
	// example: Dune
	Name string `json:"name"`

	// Item kind: movie or book
	// required: true
	// example: movie
	Type string `json:"type"`

	// Optional description
	Description *string `json:"description,omitempty"`

	// Optional poster URL
	PosterURL *string `json:"poster_url,omitempty"`
}

// WatchlistEntryResponse represents a watchlist entry with its item fields
// swagger:model WatchlistEntryResponse
type WatchlistEntryResponse struct {
	// Entry id
	ID string `json:"id"`

	// Tracking status: plan, watching or done
	Status string `json:"status"`

	// Rating 1..10, null until set
	Rating *int `json:"rating"`

	// Free-text review, null until set
	Review *string `json:"review"`

	// Item fields
	ExternalID  string  `json:"external_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

// NewWatchlistAddHandler returns an HTTP handler for adding an item to the watchlist.
// @Summary Add an item to the watchlist
// @Description Reconciles the external item and creates a tracking entry with status plan. Adding the same item twice returns the existing entry.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param watchlistAddRequest body handlers.WatchlistAddRequest true "Item to track"
// @Success 201 {object} handlers.WatchlistEntryResponse "Watchlist entry"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /watchlist [post]
// @Security BearerAuth
func NewWatchlistAddHandler(svc WatchlistAdder, tokens TokenGetter, resolver Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := resolveUser(w, r, tokens, resolver)
		if user == nil {
			return
		}

		var req WatchlistAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, item, err := svc.Add(r.Context(), user.UserID, models.SearchResult{
			ExternalID:  req.ExternalID,
			Name:        req.Name,
			Type:        req.Type,
			Description: req.Description,
			PosterURL:   req.PosterURL,
		})
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, "external_id, name and a valid type are required")
			} else {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, WatchlistEntryResponse{
			ID:          entry.EntryID.String(),
			Status:      entry.Status,
			Rating:      entry.Rating,
			Review:      entry.Review,
			ExternalID:  item.ExternalID,
			Name:        item.Name,
			Type:        item.Type,
			Description: item.Description,
			PosterURL:   item.PosterURL,
		})
	}
}
