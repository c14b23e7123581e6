package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// TMDBMovie represents a movie in a TMDB search response.
type TMDBMovie struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Overview   string `json:"overview"`
	PosterPath string `json:"poster_path"`
}

type tmdbSearchResponse struct {
	Results []TMDBMovie `json:"results"`
}

// TMDBFacade searches movies via the TMDB API.
type TMDBFacade struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
}

// TMDBOpt configures a TMDBFacade.
type TMDBOpt func(*TMDBFacade)

// WithTMDBBaseURL overrides the API base URL, used in tests.
func WithTMDBBaseURL(baseURL string) TMDBOpt {
	return func(f *TMDBFacade) { f.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTMDBImageBaseURL overrides the poster image base URL.
func WithTMDBImageBaseURL(baseURL string) TMDBOpt {
	return func(f *TMDBFacade) { f.imageBaseURL = strings.TrimRight(baseURL, "/") }
}

// NewTMDBFacade creates a TMDB client with the given API key.
func NewTMDBFacade(apiKey string, opts ...TMDBOpt) *TMDBFacade {
	f := &TMDBFacade{
		baseURL:      tmdbBaseURL,
		imageBaseURL: tmdbImageBaseURL,
		apiKey:       apiKey,
		httpClient:   newHTTPClient(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Search queries TMDB movie search and returns normalized results.
func (f *TMDBFacade) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	q := url.Values{}
	q.Set("api_key", f.apiKey)
	q.Set("query", query)

	reqURL := fmt.Sprintf("%s/search/movie?%s", f.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("tmdb request failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("tmdb returned non-200", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: tmdb status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("tmdb response decode failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	results := make([]models.SearchResult, 0, len(body.Results))
	for _, m := range body.Results {
		res := models.SearchResult{
			ExternalID: fmt.Sprintf("tmdb-%d", m.ID),
			Name:       m.Title,
			Type:       models.KindMovie,
		}
		if m.Overview != "" {
			overview := m.Overview
			res.Description = &overview
		}
		if m.PosterPath != "" {
			poster := f.imageBaseURL + m.PosterPath
			res.PosterURL = &poster
		}
		results = append(results, res)
	}

	return results, nil
}
