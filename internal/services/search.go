package services

import (
	"context"
	"sync"

	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
)

// ProviderSearcher is a single external catalog backend.
type ProviderSearcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// SearchCache caches aggregated search responses.
type SearchCache interface {
	GetSearchResults(ctx context.Context, query, kind string) ([]models.SearchResult, error)
	SetSearchResults(ctx context.Context, query, kind string, results []models.SearchResult) error
}

// SearchService aggregates the movie and book backends into one search.
type SearchService struct {
	movies ProviderSearcher
	books  ProviderSearcher
	cache  SearchCache
}

// NewSearchService creates a new SearchService. The cache may be nil.
func NewSearchService(movies, books ProviderSearcher, cache SearchCache) *SearchService {
	return &SearchService{
		movies: movies,
		books:  books,
		cache:  cache,
	}
}

// Search queries the selected backends in parallel and concatenates their
// normalized results, movies first. Each backend fails independently: a
// provider error or timeout drops that provider's results and the search
// still succeeds with what the other returned.
func (svc *SearchService) Search(ctx context.Context, query, kind string) ([]models.SearchResult, error) {
	if query == "" {
		return nil, ErrValidation
	}
	switch kind {
	case models.SearchKindAll, models.SearchKindMovie, models.SearchKindBook:
	default:
		return nil, ErrValidation
	}

	if svc.cache != nil {
		cached, err := svc.cache.GetSearchResults(ctx, query, kind)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	var (
		wg                        sync.WaitGroup
		movieResults, bookResults []models.SearchResult
		movieErr, bookErr         error
	)

	if kind == models.SearchKindAll || kind == models.SearchKindMovie {
		wg.Add(1)
		go func() {
			defer wg.Done()
			movieResults, movieErr = svc.movies.Search(ctx, query)
		}()
	}

	if kind == models.SearchKindAll || kind == models.SearchKindBook {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bookResults, bookErr = svc.books.Search(ctx, query)
		}()
	}

	wg.Wait()

	if movieErr != nil {
		logger.Log.Warnw("movie backend failed, omitting its results", "query", query, "err", movieErr)
	}
	if bookErr != nil {
		logger.Log.Warnw("book backend failed, omitting its results", "query", query, "err", bookErr)
	}

	results := make([]models.SearchResult, 0, len(movieResults)+len(bookResults))
	results = append(results, movieResults...)
	results = append(results, bookResults...)

	if svc.cache != nil && movieErr == nil && bookErr == nil {
		if err := svc.cache.SetSearchResults(ctx, query, kind, results); err != nil {
			logger.Log.Warnw("failed to cache search results", "query", query, "err", err)
		}
	}

	return results, nil
}
