package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrEntryNotFound is returned when a watchlist entry does not exist or is
	// owned by a different user. The two cases are deliberately indistinguishable.
	ErrEntryNotFound = errors.New("watchlist entry not found")
)

// ItemUpserter reconciles normalized catalog entries into the item table.
type ItemUpserter interface {
	Upsert(ctx context.Context, res models.SearchResult) (*models.ItemDB, error)
}

// WatchlistReader defines watchlist read operations used by the service.
type WatchlistReader interface {
	GetByUserAndItem(ctx context.Context, userID, itemID uuid.UUID) (*models.WatchlistEntryDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WatchlistItemDB, error)
}

// WatchlistWriter defines watchlist write operations used by the service.
type WatchlistWriter interface {
	Save(ctx context.Context, userID, itemID uuid.UUID) (*models.WatchlistEntryDB, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, status *string, rating *int, review *string) (*models.WatchlistEntryDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WatchlistService handles per-user tracking state and activity publishing.
type WatchlistService struct {
	items       ItemUpserter
	reader      WatchlistReader
	writer      WatchlistWriter
	kafkaWriter KafkaWriter
}

// NewWatchlistService creates a new WatchlistService. The Kafka writer may be nil.
func NewWatchlistService(
	items ItemUpserter,
	reader WatchlistReader,
	writer WatchlistWriter,
	kafkaWriter KafkaWriter,
) *WatchlistService {
	return &WatchlistService{
		items:       items,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishActivity publishes a watchlist activity event to Kafka, best effort.
func (svc *WatchlistService) publishActivity(ctx context.Context, event models.ActivityEvent) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntryID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "event_id", event.EventID, "error", err)
	}
}

// Add reconciles the external item and returns the user's entry for it,
// creating one with status plan when none exists. Adding the same external
// item twice yields the same single entry and the same single item.
func (svc *WatchlistService) Add(ctx context.Context, userID uuid.UUID, res models.SearchResult) (*models.WatchlistEntryDB, *models.ItemDB, error) {
	if res.ExternalID == "" || res.Name == "" {
		return nil, nil, ErrValidation
	}
	if res.Type != models.KindMovie && res.Type != models.KindBook {
		return nil, nil, ErrValidation
	}

	item, err := svc.items.Upsert(ctx, res)
	if err != nil {
		logger.Log.Errorw("failed to reconcile item", "external_id", res.ExternalID, "err", err)
		return nil, nil, err
	}

	existing, err := svc.reader.GetByUserAndItem(ctx, userID, item.ItemID)
	if err != nil {
		logger.Log.Errorw("failed to look up watchlist entry", "user_id", userID, "item_id", item.ItemID, "err", err)
		return nil, nil, err
	}
	if existing != nil {
		return existing, item, nil
	}

	entry, err := svc.writer.Save(ctx, userID, item.ItemID)
	if err != nil {
		logger.Log.Errorw("failed to create watchlist entry", "user_id", userID, "item_id", item.ItemID, "err", err)
		return nil, nil, err
	}

	svc.publishActivity(ctx, models.ActivityEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		EntryID:    entry.EntryID.String(),
		ExternalID: item.ExternalID,
		Action:     "add",
		Status:     entry.Status,
	})

	return entry, item, nil
}

// List returns all of the user's entries with joined item fields, in
// insertion order.
func (svc *WatchlistService) List(ctx context.Context, userID uuid.UUID) ([]models.WatchlistItemDB, error) {
	entries, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watchlist", "user_id", userID, "err", err)
		return nil, err
	}
	return entries, nil
}

// Update overwrites only the supplied fields of the user's entry. An entry
// that does not exist and an entry owned by someone else both report
// ErrEntryNotFound. An out-of-range rating or unknown status is rejected
// before anything is written.
func (svc *WatchlistService) Update(ctx context.Context, userID, entryID uuid.UUID, status *string, rating *int, review *string) (*models.WatchlistEntryDB, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, ErrValidation
	}
	if rating != nil && (*rating < models.RatingMin || *rating > models.RatingMax) {
		return nil, ErrValidation
	}

	entry, err := svc.writer.Update(ctx, userID, entryID, status, rating, review)
	if err != nil {
		logger.Log.Errorw("failed to update watchlist entry", "entry_id", entryID, "err", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	svc.publishActivity(ctx, models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		EntryID:   entry.EntryID.String(),
		Action:    "update",
		Status:    entry.Status,
	})

	return entry, nil
}
