package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
)

// WatchlistLister defines the interface that the service must implement.
type WatchlistLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.WatchlistItemDB, error)
}

// WatchlistListResponse represents the user's watchlist
// swagger:model WatchlistListResponse
type WatchlistListResponse struct {
	// Entries in insertion order
	Items []WatchlistEntryResponse `json:"items"`
}

// NewWatchlistListHandler returns an HTTP handler for listing the user's watchlist.
// @Summary List the watchlist
// @Description Returns all of the caller's tracking entries with joined item fields, in insertion order.
// @Tags watchlist
// @Produce json
// @Success 200 {object} handlers.WatchlistListResponse "Watchlist entries"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /watchlist [get]
// @Security BearerAuth
func NewWatchlistListHandler(svc WatchlistLister, tokens TokenGetter, resolver Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := resolveUser(w, r, tokens, resolver)
		if user == nil {
			return
		}

		entries, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]WatchlistEntryResponse, 0, len(entries))
		for _, e := range entries {
			items = append(items, WatchlistEntryResponse{
				ID:          e.EntryID.String(),
				Status:      e.Status,
				Rating:      e.Rating,
				Review:      e.Review,
				ExternalID:  e.ExternalID,
				Name:        e.Name,
				Type:        e.Type,
				Description: e.Description,
				PosterURL:   e.PosterURL,
			})
		}

		writeJSON(w, http.StatusOK, WatchlistListResponse{Items: items})
	}
}
