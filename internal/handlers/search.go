package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
	"github.com/mediatrack/media-watchlist/internal/services"
)

// Searcher defines the interface that the catalog aggregator must implement.
type Searcher interface {
	Search(ctx context.Context, query, kind string) ([]models.SearchResult, error)
}

// SearchResponse represents an aggregated search response
// swagger:model SearchResponse
type SearchResponse struct {
	// Normalized results, movies first
	Results []models.SearchResult `json:"results"`
}

// NewSearchHandler returns an HTTP handler for catalog search.
// @Summary Search the aggregated catalog
// @Description Searches movies and books in parallel. A failing provider is omitted rather than failing the search.
// @Tags catalog
// @Produce json
// @Param query query string true "Search query"
// @Param type query string false "Kind filter: all, movie or book" default(all)
// @Success 200 {object} handlers.SearchResponse "Search results"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query or kind filter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /search [get]
// @Security BearerAuth
func NewSearchHandler(svc Searcher, tokens TokenGetter, resolver Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := resolveUser(w, r, tokens, resolver)
		if user == nil {
			return
		}

		query := r.URL.Query().Get("query")
		kind := r.URL.Query().Get("type")
		if kind == "" {
			kind = models.SearchKindAll
		}

		results, err := svc.Search(r.Context(), query, kind)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, "query must not be empty and type must be all, movie or book")
			} else {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, SearchResponse{Results: results})
	}
}
