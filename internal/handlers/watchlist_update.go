package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
	"github.com/mediatrack/media-watchlist/internal/services"
)

// WatchlistUpdater defines the interface that the service must implement.
type WatchlistUpdater interface {
	Update(ctx context.Context, userID, entryID uuid.UUID, status *string, rating *int, review *string) (*models.WatchlistEntryDB, error)
}

// WatchlistUpdateRequest represents a partial update of a watchlist entry.
// Omitted fields keep their stored values.
// swagger:model WatchlistUpdateRequest
type WatchlistUpdateRequest struct {
	// New status: plan, watching or done
	// example: done
	Status *string `json:"status,omitempty"`

	// New rating, 1..10
	// example: 9
	Rating *int `json:"rating,omitempty"`

	// New review text
	Review *string `json:"review,omitempty"`
}

// WatchlistUpdateResponse represents the updated entry
// swagger:model WatchlistUpdateResponse
type WatchlistUpdateResponse struct {
	// Entry id
	ID string `json:"id"`

	// Tracking status
	Status string `json:"status"`

	// Rating 1..10, null until set
	Rating *int `json:"rating"`

	// Free-text review, null until set
	Review *string `json:"review"`
}

// NewWatchlistUpdateHandler returns an HTTP handler for partially updating a watchlist entry.
// @Summary Update a watchlist entry
// @Description Overwrites only the supplied fields. Entries owned by other users are reported as not found.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param watchlistUpdateRequest body handlers.WatchlistUpdateRequest true "Fields to update"
// @Success 200 {object} handlers.WatchlistUpdateResponse "Updated entry"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status or rating"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Router /watchlist/{id} [patch]
// @Security BearerAuth
func NewWatchlistUpdateHandler(svc WatchlistUpdater, tokens TokenGetter, resolver Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := resolveUser(w, r, tokens, resolver)
		if user == nil {
			return
		}

		entryID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}

		var req WatchlistUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, err := svc.Update(r.Context(), user.UserID, entryID, req.Status, req.Rating, req.Review)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEntryNotFound):
				writeError(w, http.StatusNotFound, "Entry not found")
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, "status must be plan, watching or done and rating must be between 1 and 10")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, WatchlistUpdateResponse{
			ID:     entry.EntryID.String(),
			Status: entry.Status,
			Rating: entry.Rating,
			Review: entry.Review,
		})
	}
}
