package services

import (
	"context"
	"errors"
	"sync"

	"github.com/DrummDaddy/Event_service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errDuplicateKey = errors.New("E11000 duplicate key error")

// fakeEventRepo is an in-memory EventStore that enforces the unique slug index.
type fakeEventRepo struct {
	mu       sync.Mutex
	byID     map[primitive.ObjectID]models.Event
	writes   int
	lookups  int
	slugHits int
	err      error // if set, EventExists returns it
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[primitive.ObjectID]models.Event)}
}

func (f *fakeEventRepo) slugTaken(slug string, except primitive.ObjectID) bool {
	for id, e := range f.byID {
		if id != except && e.Slug == slug {
			return true
		}
	}
	return false
}

func (f *fakeEventRepo) Create(ctx context.Context, e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.slugTaken(e.Slug, primitive.NilObjectID) {
		return &models.ConflictError{Entity: models.EventEntity, Err: errDuplicateKey}
	}
	e.ID = primitive.NewObjectID()
	f.byID[e.ID] = *e
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		return &e, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeEventRepo) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slugHits++
	for _, e := range f.byID {
		if e.Slug == slug {
			return &e, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeEventRepo) EventExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeEventRepo) List(ctx context.Context, limit int64) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) Replace(ctx context.Context, e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if _, ok := f.byID[e.ID]; !ok {
		return models.ErrNotFound
	}
	if f.slugTaken(e.Slug, e.ID) {
		return &models.ConflictError{Entity: models.EventEntity, Err: errDuplicateKey}
	}
	f.byID[e.ID] = *e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeBookingRepo is an in-memory BookingStore. With unique set it behaves
// like the (eventId, email) unique index.
type fakeBookingRepo struct {
	mu     sync.Mutex
	byID   map[primitive.ObjectID]models.Booking
	unique bool
	writes int
}

func newFakeBookingRepo(unique bool) *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[primitive.ObjectID]models.Booking), unique: unique}
}

func (f *fakeBookingRepo) duplicate(b *models.Booking) bool {
	if !f.unique {
		return false
	}
	for id, other := range f.byID {
		if id != b.ID && other.EventID == b.EventID && other.Email == b.Email {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.duplicate(b) {
		return &models.ConflictError{Entity: models.BookingEntity, Err: errDuplicateKey}
	}
	b.ID = primitive.NewObjectID()
	f.byID[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.byID[id]; ok {
		return &b, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeBookingRepo) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.byID {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Replace(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if _, ok := f.byID[b.ID]; !ok {
		return models.ErrNotFound
	}
	if f.duplicate(b) {
		return &models.ConflictError{Entity: models.BookingEntity, Err: errDuplicateKey}
	}
	f.byID[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}
