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

// upsertAttempts bounds the insert-then-read retry loop in Upsert.
const upsertAttempts = 3

// ItemReadRepository handles catalog item read operations.
type ItemReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewItemReadRepository(db *sqlx.DB, txGetter TxGetter) *ItemReadRepository {
	return &ItemReadRepository{db: db, txGetter: txGetter}
}

// GetByExternalID returns the item with the given external id, or nil when absent.
func (r *ItemReadRepository) GetByExternalID(ctx context.Context, externalID string) (*models.ItemDB, error) {
	const query = `
		SELECT item_id, external_id, name, type, description, poster_url, created_at
		FROM items
		WHERE external_id = $1
	`

	var item models.ItemDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &item, query, externalID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{externalID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// ItemWriteRepository handles catalog item write operations.
type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewItemWriteRepository(db *sqlx.DB, txGetter TxGetter) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

// Upsert reconciles a normalized catalog entry into the items table.
// An existing item is returned unchanged: re-adding the same external item
// never overwrites fields. Under a concurrent duplicate-insert race the
// unique constraint on external_id wins and the loser falls back to a read;
// the insert-then-read pair is retried a bounded number of times.
func (r *ItemWriteRepository) Upsert(ctx context.Context, res models.SearchResult) (*models.ItemDB, error) {
	const insertQuery = `
		INSERT INTO items (item_id, external_id, name, type, description, poster_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (external_id) DO NOTHING
		RETURNING item_id, external_id, name, type, description, poster_url, created_at
	`
	const selectQuery = `
		SELECT item_id, external_id, name, type, description, poster_url, created_at
		FROM items
		WHERE external_id = $1
	`

	ex := executor(ctx, r.db, r.txGetter)

	for attempt := 0; attempt < upsertAttempts; attempt++ {
		var item models.ItemDB
		err := sqlx.GetContext(ctx, ex, &item, insertQuery,
			uuid.New(), res.ExternalID, res.Name, res.Type, res.Description, res.PosterURL)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(insertQuery), " "),
			"args", []any{res.ExternalID, res.Name, res.Type},
			"attempt", attempt,
			"error", err,
		)

		if err == nil {
			return &item, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		// The row already exists; another request (possibly still in flight)
		// created it. Read it back.
		err = sqlx.GetContext(ctx, ex, &item, selectQuery, res.ExternalID)
		if err == nil {
			return &item, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		// Insert conflicted but the row is not visible yet: the competing
		// transaction has not committed. Go around again.
	}

	return nil, ErrConflictRetryExhausted
}
