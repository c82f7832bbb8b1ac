package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Overview    string             `json:"overview" bson:"overview" validate:"required"`
	Image       string             `json:"image" bson:"image" validate:"required"`
	Venue       string             `json:"venue" bson:"venue" validate:"required"`
	Location    string             `json:"location" bson:"location" validate:"required"`
	Date        string             `json:"date" bson:"date" validate:"required"`
	Time        string             `json:"time" bson:"time" validate:"required"`
	Mode        Mode               `json:"mode" bson:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string             `json:"audience" bson:"audience" validate:"required"`
	Agenda      []string           `json:"agenda" bson:"agenda" validate:"required,min=1"`
	Organizer   string             `json:"organizer" bson:"organizer" validate:"required"`
	Tags        []string           `json:"tags" bson:"tags" validate:"required,min=1"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// EventPatch is a partial update. Nil fields are left untouched.
// There is no slug field: the slug always follows the title.
type EventPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Overview    *string   `json:"overview,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Venue       *string   `json:"venue,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Mode        *Mode     `json:"mode,omitempty"`
	Audience    *string   `json:"audience,omitempty"`
	Agenda      *[]string `json:"agenda,omitempty"`
	Organizer   *string   `json:"organizer,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// Apply returns a copy of e with the patch applied.
func (p EventPatch) Apply(e Event) Event {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Overview, p.Overview)
	setString(&e.Image, p.Image)
	setString(&e.Venue, p.Venue)
	setString(&e.Location, p.Location)
	setString(&e.Date, p.Date)
	setString(&e.Time, p.Time)
	setString(&e.Audience, p.Audience)
	setString(&e.Organizer, p.Organizer)
	if p.Mode != nil {
		e.Mode = *p.Mode
	}
	if p.Agenda != nil {
		e.Agenda = append([]string(nil), (*p.Agenda)...)
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), (*p.Tags)...)
	}
	return e
}

// PrepareEvent validates e and normalizes the fields named in changes:
// the slug is re-derived from the title, the date is rewritten as YYYY-MM-DD
// and the time is checked against HH:MM. e is modified in place and must not
// be persisted when an error is returned.
func PrepareEvent(e *Event, changes ChangeSet) error {
	trimEvent(e)

	if err := checkStruct(EventEntity, e); err != nil {
		return err
	}

	if changes.Has(FieldTitle) {
		slug := Slug(e.Title)
		if slug == "" {
			return &ValidationError{Entity: EventEntity, Field: FieldTitle, Msg: "Event title must contain at least one letter or digit"}
		}
		e.Slug = slug
	}

	if changes.Has(FieldDate) {
		date, err := NormalizeDate(e.Date)
		if err != nil {
			return err
		}
		e.Date = date
	}

	if changes.Has(FieldTime) {
		if err := ValidateTime(e.Time); err != nil {
			return err
		}
	}
	return nil
}

func trimEvent(e *Event) {
	for _, s := range []*string{
		&e.Title, &e.Description, &e.Overview, &e.Image, &e.Venue,
		&e.Location, &e.Audience, &e.Organizer, &e.Date,
	} {
		*s = strings.TrimSpace(*s)
	}
}
