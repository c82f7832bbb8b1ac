package repositories

import (
	"context"
	"fmt"

	"github.com/DrummDaddy/Event_service/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes of every registered schema. Existing
// indexes with the same definition are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database, policy models.Policy) error {
	for _, name := range models.SchemaNames() {
		schema, _ := models.Lookup(name)
		indexes := schema.IndexModels(policy)
		if len(indexes) == 0 {
			continue
		}
		if _, err := db.Collection(schema.Collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}

// mapWriteError turns a duplicate key error into a ConflictError. Other errors
// are returned unchanged.
func mapWriteError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return &models.ConflictError{Entity: entity, Err: err}
	}
	return err
}
