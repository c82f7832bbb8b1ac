package models

import (
	"maps"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Policy holds the store rules that are a deployment decision rather than a
// property of the data.
type Policy struct {
	// UniqueBookingPerEmail makes (eventId, email) a unique index: at most one
	// booking per email per event.
	UniqueBookingPerEmail bool
}

func DefaultPolicy() Policy {
	return Policy{UniqueBookingPerEmail: true}
}

// Schema describes one registered entity and the indexes its collection needs.
type Schema struct {
	Name       string
	Collection string
	indexes    func(Policy) []mongo.IndexModel
}

func (s Schema) IndexModels(p Policy) []mongo.IndexModel {
	if s.indexes == nil {
		return nil
	}
	return s.indexes(p)
}

var (
	registryOnce sync.Once
	registry     map[string]Schema
)

func schemas() map[string]Schema {
	registryOnce.Do(func() {
		registry = map[string]Schema{
			EventEntity:   eventSchema(),
			BookingEntity: bookingSchema(),
		}
	})
	return registry
}

// Registry returns a copy of the process-wide set of schemas, built on first
// use. Changing the copy does not affect the registry.
func Registry() map[string]Schema {
	return maps.Clone(schemas())
}

func Lookup(name string) (Schema, bool) {
	s, ok := schemas()[name]
	return s, ok
}

// SchemaNames lists the registered schemas in alphabetical order.
func SchemaNames() []string {
	names := slices.Collect(maps.Keys(schemas()))
	slices.Sort(names)
	return names
}

func eventSchema() Schema {
	return Schema{
		Name:       EventEntity,
		Collection: "events",
		indexes: func(Policy) []mongo.IndexModel {
			return []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: FieldSlug, Value: 1}},
					Options: options.Index().SetName("slug_1").SetUnique(true),
				},
			}
		},
	}
}

func bookingSchema() Schema {
	return Schema{
		Name:       BookingEntity,
		Collection: "bookings",
		indexes: func(p Policy) []mongo.IndexModel {
			compound := options.Index().SetName("eventId_1_email_1")
			if p.UniqueBookingPerEmail {
				compound.SetUnique(true)
			}
			return []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: FieldEventID, Value: 1}},
					Options: options.Index().SetName("eventId_1"),
				},
				{
					Keys:    bson.D{{Key: FieldEventID, Value: 1}, {Key: FieldEmail, Value: 1}},
					Options: compound,
				},
			}
		},
	}
}
