package services

import (
	"context"
	"log/slog"

	"github.com/DrummDaddy/Event_service/internal/logger"
	"github.com/DrummDaddy/Event_service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Booking, error)
	Replace(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookingService struct {
	bookings BookingStore
	events   models.EventLookup
	logger   *slog.Logger
}

func NewBookingService(bookings BookingStore, events models.EventLookup, l *slog.Logger) *BookingService {
	if l == nil {
		l = logger.Discard()
	}
	return &BookingService{
		bookings: bookings,
		events:   events,
		logger:   l,
	}
}

// Create validates the booking and checks its event exists before inserting.
// A second booking for the same (event, email) fails with a ConflictError when
// the unique index is in place.
func (bs *BookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := models.PrepareBooking(ctx, booking, models.NewRecord(), bs.events); err != nil {
		recordRejection(models.BookingEntity, err)
		return nil, err
	}
	if err := bs.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	bs.logger.Info("booking created", "id", booking.ID.Hex(), "event_id", booking.EventID.Hex())
	return booking, nil
}

func (bs *BookingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return bs.bookings.FindByID(ctx, id)
}

func (bs *BookingService) ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Booking, error) {
	return bs.bookings.FindByEvent(ctx, eventID)
}

// Update applies patch; the event reference is only re-checked when the
// event id changes.
func (bs *BookingService) Update(ctx context.Context, id primitive.ObjectID, patch models.BookingPatch) (*models.Booking, error) {
	prev, err := bs.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*prev)
	changes := models.DiffBooking(prev, &next)
	if changes.Empty() {
		return prev, nil
	}
	if err := models.PrepareBooking(ctx, &next, changes, bs.events); err != nil {
		recordRejection(models.BookingEntity, err)
		return nil, err
	}
	if err := bs.bookings.Replace(ctx, &next); err != nil {
		return nil, err
	}
	bs.logger.Info("booking updated", "id", id.Hex(), "fields", changes.Fields())
	return &next, nil
}

func (bs *BookingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := bs.bookings.Delete(ctx, id); err != nil {
		return err
	}
	bs.logger.Info("booking deleted", "id", id.Hex())
	return nil
}
