package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DrummDaddy/Event_service/internal/logger"
	"github.com/DrummDaddy/Event_service/internal/metrics"
	"github.com/DrummDaddy/Event_service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStore interface {
	models.EventLookup
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindBySlug(ctx context.Context, slug string) (*models.Event, error)
	List(ctx context.Context, limit int64) ([]models.Event, error)
	Replace(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventCache is an optional read cache keyed by slug. Get returns (nil, nil)
// on a miss.
type EventCache interface {
	Get(ctx context.Context, slug string) (*models.Event, error)
	Set(ctx context.Context, event *models.Event) error
	Invalidate(ctx context.Context, slugs ...string) error
}

type EventService struct {
	events EventStore
	cache  EventCache
	logger *slog.Logger
}

// NewEventService wires the event store. cache and l may be nil.
func NewEventService(events EventStore, cache EventCache, l *slog.Logger) *EventService {
	if l == nil {
		l = logger.Discard()
	}
	return &EventService{
		events: events,
		cache:  cache,
		logger: l,
	}
}

func (es *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := models.PrepareEvent(event, models.NewRecord()); err != nil {
		recordRejection(models.EventEntity, err)
		return nil, err
	}
	if err := es.events.Create(ctx, event); err != nil {
		return nil, err
	}
	es.logger.Info("event created", "id", event.ID.Hex(), "slug", event.Slug)
	return event, nil
}

func (es *EventService) Get(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return es.events.FindByID(ctx, id)
}

// GetBySlug reads through the cache when one is configured. Cache failures
// are logged and fall back to the store.
func (es *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if es.cache != nil {
		event, err := es.cache.Get(ctx, slug)
		switch {
		case err != nil:
			metrics.CacheRequests.WithLabelValues("error").Inc()
			es.logger.Warn("event cache read failed", "slug", slug, "error", err)
		case event != nil:
			metrics.CacheRequests.WithLabelValues("hit").Inc()
			return event, nil
		default:
			metrics.CacheRequests.WithLabelValues("miss").Inc()
		}
	}

	event, err := es.events.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if es.cache != nil {
		if err := es.cache.Set(ctx, event); err != nil {
			es.logger.Warn("event cache write failed", "slug", slug, "error", err)
		}
	}
	return event, nil
}

func (es *EventService) List(ctx context.Context, limit int64) ([]models.Event, error) {
	return es.events.List(ctx, limit)
}

// Update applies patch to the stored event. Only the fields that actually
// change go through slug/date/time normalization.
func (es *EventService) Update(ctx context.Context, id primitive.ObjectID, patch models.EventPatch) (*models.Event, error) {
	prev, err := es.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*prev)
	changes := models.DiffEvent(prev, &next)
	if changes.Empty() {
		return prev, nil
	}
	if err := models.PrepareEvent(&next, changes); err != nil {
		recordRejection(models.EventEntity, err)
		return nil, err
	}
	if err := es.events.Replace(ctx, &next); err != nil {
		return nil, err
	}
	es.invalidate(ctx, prev.Slug, next.Slug)
	es.logger.Info("event updated", "id", id.Hex(), "fields", changes.Fields())
	return &next, nil
}

// Delete removes the event. Bookings that reference it are left in place.
func (es *EventService) Delete(ctx context.Context, id primitive.ObjectID) error {
	prev, err := es.events.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := es.events.Delete(ctx, id); err != nil {
		return err
	}
	es.invalidate(ctx, prev.Slug)
	es.logger.Info("event deleted", "id", id.Hex())
	return nil
}

func (es *EventService) invalidate(ctx context.Context, slugs ...string) {
	if es.cache == nil {
		return
	}
	if err := es.cache.Invalidate(ctx, slugs...); err != nil {
		es.logger.Warn("event cache invalidation failed", "slugs", slugs, "error", err)
	}
}

func recordRejection(entity string, err error) {
	kind := "infrastructure"
	var ve *models.ValidationError
	var re *models.ReferenceError
	switch {
	case errors.As(err, &ve):
		kind = "validation"
	case errors.As(err, &re):
		kind = "reference"
	}
	metrics.ValidationFailures.WithLabelValues(entity, kind).Inc()
}
