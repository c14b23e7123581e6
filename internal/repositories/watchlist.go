package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
)

// WatchlistReadRepository handles watchlist read operations. All queries are
// scoped to the owning user.
type WatchlistReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWatchlistReadRepository(db *sqlx.DB, txGetter TxGetter) *WatchlistReadRepository {
	return &WatchlistReadRepository{db: db, txGetter: txGetter}
}

// GetByUserAndItem returns the user's entry for an item, or nil when absent.
func (r *WatchlistReadRepository) GetByUserAndItem(ctx context.Context, userID, itemID uuid.UUID) (*models.WatchlistEntryDB, error) {
	const query = `
		SELECT entry_id, user_id, item_id, status, rating, review, created_at, updated_at
		FROM watchlist_entries
		WHERE user_id = $1 AND item_id = $2
	`

	var entry models.WatchlistEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, userID, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, itemID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// ListByUser returns all of a user's entries joined with item fields,
// in insertion order.
func (r *WatchlistReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WatchlistItemDB, error) {
	const query = `
		SELECT w.entry_id, w.status, w.rating, w.review,
		       i.external_id, i.name, i.type, i.description, i.poster_url
		FROM watchlist_entries w
		JOIN items i ON i.item_id = w.item_id
		WHERE w.user_id = $1
		ORDER BY w.created_at, w.entry_id
	`

	entries := []models.WatchlistItemDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(entries),
		"error", err,
	)

	return entries, err
}

// WatchlistWriteRepository handles watchlist write operations.
type WatchlistWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWatchlistWriteRepository(db *sqlx.DB, txGetter TxGetter) *WatchlistWriteRepository {
	return &WatchlistWriteRepository{db: db, txGetter: txGetter}
}

// Save creates a watchlist entry with the default status. When the (user,
// item) pair already has an entry the composite unique constraint wins and
// the existing entry is returned unchanged.
func (r *WatchlistWriteRepository) Save(ctx context.Context, userID, itemID uuid.UUID) (*models.WatchlistEntryDB, error) {
	const insertQuery = `
		INSERT INTO watchlist_entries (entry_id, user_id, item_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, item_id) DO NOTHING
		RETURNING entry_id, user_id, item_id, status, rating, review, created_at, updated_at
	`
	const selectQuery = `
		SELECT entry_id, user_id, item_id, status, rating, review, created_at, updated_at
		FROM watchlist_entries
		WHERE user_id = $1 AND item_id = $2
	`

	ex := executor(ctx, r.db, r.txGetter)

	var entry models.WatchlistEntryDB
	err := sqlx.GetContext(ctx, ex, &entry, insertQuery, uuid.New(), userID, itemID, models.StatusPlan)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{userID, itemID},
		"error", err,
	)

	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Lost a double-add race; the existing entry wins.
	if err := sqlx.GetContext(ctx, ex, &entry, selectQuery, userID, itemID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update overwrites only the supplied fields of an entry owned by userID and
// returns the updated record, or nil when no such entry is owned by the user.
func (r *WatchlistWriteRepository) Update(ctx context.Context, userID, entryID uuid.UUID, status *string, rating *int, review *string) (*models.WatchlistEntryDB, error) {
	const query = `
		UPDATE watchlist_entries
		SET status = COALESCE($3, status),
		    rating = COALESCE($4, rating),
		    review = COALESCE($5, review),
		    updated_at = NOW()
		WHERE entry_id = $1 AND user_id = $2
		RETURNING entry_id, user_id, item_id, status, rating, review, created_at, updated_at
	`
	args := []any{entryID, userID, status, rating, review}

	var entry models.WatchlistEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entryID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}
