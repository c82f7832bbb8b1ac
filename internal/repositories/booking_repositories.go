package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/DrummDaddy/Event_service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	schema, _ := models.Lookup(models.BookingEntity)
	return &BookingRepository{
		collection: db.Collection(schema.Collection),
	}
}

func (br *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	now := time.Now().UTC()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := br.collection.InsertOne(ctx, booking)
	return mapWriteError(models.BookingEntity, err)
}

func (br *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := br.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (br *BookingRepository) FindByEventAndEmail(ctx context.Context, eventID primitive.ObjectID, email string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{models.FieldEventID: eventID, models.FieldEmail: email}
	err := br.collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindByEvent lists the bookings of one event, oldest first.
func (br *BookingRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Booking, error) {
	cursor, err := br.collection.Find(
		ctx,
		bson.M{models.FieldEventID: eventID},
		options.Find().SetSort(bson.D{{Key: models.FieldCreatedAt, Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (br *BookingRepository) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return br.collection.CountDocuments(ctx, bson.M{models.FieldEventID: eventID})
}

func (br *BookingRepository) Replace(ctx context.Context, booking *models.Booking) error {
	booking.UpdatedAt = time.Now().UTC()
	res, err := br.collection.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking)
	if err != nil {
		return mapWriteError(models.BookingEntity, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (br *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := br.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
