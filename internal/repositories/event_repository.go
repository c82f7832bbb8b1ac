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

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	schema, _ := models.Lookup(models.EventEntity)
	return &EventRepository{
		collection: db.Collection(schema.Collection),
	}
}

// Create inserts a prepared event and sets its id and timestamps.
func (er *EventRepository) Create(ctx context.Context, event *models.Event) error {
	now := time.Now().UTC()
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := er.collection.InsertOne(ctx, event)
	return mapWriteError(models.EventEntity, err)
}

func (er *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return er.findOne(ctx, bson.M{"_id": id})
}

func (er *EventRepository) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return er.findOne(ctx, bson.M{models.FieldSlug: slug})
}

func (er *EventRepository) findOne(ctx context.Context, filter bson.M) (*models.Event, error) {
	var event models.Event
	err := er.collection.FindOne(ctx, filter).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// EventExists reports whether an event with the given id is stored.
func (er *EventRepository) EventExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := er.collection.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns events newest first. A limit of zero returns all of them.
func (er *EventRepository) List(ctx context.Context, limit int64) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: models.FieldCreatedAt, Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := er.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Replace overwrites a stored event with a prepared one and bumps updatedAt.
func (er *EventRepository) Replace(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	res, err := er.collection.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return mapWriteError(models.EventEntity, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (er *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := er.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
