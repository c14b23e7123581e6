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

const googleBooksBaseURL = "https://www.googleapis.com/books/v1"

// GoogleBooksVolume represents a volume in a Google Books search response.
type GoogleBooksVolume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageLinks  struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

type googleBooksSearchResponse struct {
	Items []GoogleBooksVolume `json:"items"`
}

// GoogleBooksFacade searches books via the Google Books volumes API.
type GoogleBooksFacade struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// GoogleBooksOpt configures a GoogleBooksFacade.
type GoogleBooksOpt func(*GoogleBooksFacade)

// WithGoogleBooksBaseURL overrides the API base URL, used in tests.
func WithGoogleBooksBaseURL(baseURL string) GoogleBooksOpt {
	return func(f *GoogleBooksFacade) { f.baseURL = strings.TrimRight(baseURL, "/") }
}

// NewGoogleBooksFacade creates a Google Books client. The API key is
// optional; the volumes endpoint accepts unauthenticated searches.
func NewGoogleBooksFacade(apiKey string, opts ...GoogleBooksOpt) *GoogleBooksFacade {
	f := &GoogleBooksFacade{
		baseURL:    googleBooksBaseURL,
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Search queries the volumes endpoint and returns normalized results.
func (f *GoogleBooksFacade) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	if f.apiKey != "" {
		q.Set("key", f.apiKey)
	}

	reqURL := fmt.Sprintf("%s/volumes?%s", f.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("google books request failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("google books returned non-200", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: google books status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body googleBooksSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("google books response decode failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	results := make([]models.SearchResult, 0, len(body.Items))
	for _, v := range body.Items {
		res := models.SearchResult{
			ExternalID: "gb-" + v.ID,
			Name:       v.VolumeInfo.Title,
			Type:       models.KindBook,
		}
		if v.VolumeInfo.Description != "" {
			desc := v.VolumeInfo.Description
			res.Description = &desc
		}
		// Thumbnail URLs are already absolute; used verbatim.
		if v.VolumeInfo.ImageLinks.Thumbnail != "" {
			thumb := v.VolumeInfo.ImageLinks.Thumbnail
			res.PosterURL = &thumb
		}
		results = append(results, res)
	}

	return results, nil
}
