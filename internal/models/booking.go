package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID primitive.ObjectID `json:"eventId" bson:"eventId"`
	Email   string             `json:"email" bson:"email" validate:"required,mailbox"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type BookingPatch struct {
	EventID *primitive.ObjectID `json:"eventId,omitempty"`
	Email   *string             `json:"email,omitempty"`
}

func (p BookingPatch) Apply(b Booking) Booking {
	if p.EventID != nil {
		b.EventID = *p.EventID
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	return b
}

// EventLookup answers whether an event exists. It is the only store access
// a booking needs before it can be written.
type EventLookup interface {
	EventExists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ParseEventID converts a hex string into an event id.
func ParseEventID(hex string) (primitive.ObjectID, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return primitive.NilObjectID, &ValidationError{Entity: BookingEntity, Field: FieldEventID, Msg: "Event ID is required"}
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, &ValidationError{Entity: BookingEntity, Field: FieldEventID, Msg: fmt.Sprintf("Invalid event ID %q", hex)}
	}
	return id, nil
}

// PrepareBooking normalizes the email, validates b and, when the event id is
// part of changes, checks that the referenced event exists.
func PrepareBooking(ctx context.Context, b *Booking, changes ChangeSet, events EventLookup) error {
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))

	if b.EventID.IsZero() {
		return &ValidationError{Entity: BookingEntity, Field: FieldEventID, Msg: "Event ID is required"}
	}
	if err := checkStruct(BookingEntity, b); err != nil {
		return err
	}

	if changes.Has(FieldEventID) {
		ok, err := events.EventExists(ctx, b.EventID)
		if err != nil {
			return fmt.Errorf("failed to validate event reference: %w", err)
		}
		if !ok {
			return &ReferenceError{Entity: EventEntity, ID: b.EventID.Hex()}
		}
	}
	return nil
}
