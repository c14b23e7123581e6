package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
)

// TokenGetter extracts the bearer token from an HTTP request.
type TokenGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Resolver resolves a bearer token to its owning user.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.UserDB, error)
}

// ErrorResponse is the JSON error body shared by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid username or password
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// resolveUser authenticates the request. On failure it writes a 401 response
// and returns nil.
func resolveUser(w http.ResponseWriter, r *http.Request, tokens TokenGetter, resolver Resolver) *models.UserDB {
	ctx := r.Context()

	tokenStr, err := tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Infow("request without usable bearer token", "err", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	user, err := resolver.Resolve(ctx, tokenStr)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	return user
}
