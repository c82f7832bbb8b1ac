package models

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	EventEntity   = "Event"
	BookingEntity = "Booking"
)

// Document field names, as stored.
const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldOverview    = "overview"
	FieldImage       = "image"
	FieldVenue       = "venue"
	FieldLocation    = "location"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldMode        = "mode"
	FieldAudience    = "audience"
	FieldAgenda      = "agenda"
	FieldOrganizer   = "organizer"
	FieldTags        = "tags"
	FieldEventID     = "eventId"
	FieldEmail       = "email"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("bson"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// messages maps "<entity>.<field>.<tag>" to the error shown to callers.
var messages = map[string]string{
	"Event.title.required":       "Event title is required",
	"Event.description.required": "Event description is required",
	"Event.overview.required":    "Event overview is required",
	"Event.image.required":       "Event image is required",
	"Event.venue.required":       "Event venue is required",
	"Event.location.required":    "Event location is required",
	"Event.date.required":        "Event date is required",
	"Event.time.required":        "Event time is required",
	"Event.mode.required":        "Event mode is required",
	"Event.mode.oneof":           "Mode must be either online, offline, or hybrid",
	"Event.audience.required":    "Event audience is required",
	"Event.agenda.required":      "Event agenda is required",
	"Event.agenda.min":           "Agenda must contain at least one item",
	"Event.organizer.required":   "Event organizer is required",
	"Event.tags.required":        "Event tags are required",
	"Event.tags.min":             "Tags must contain at least one item",
	"Booking.email.required":     "Email is required",
	"Booking.email.mailbox":      "Please provide a valid email address",
}

// checkStruct runs the struct tags of v and converts the first failure into a
// ValidationError.
func checkStruct(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	msg, ok := messages[entity+"."+fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = entity + " " + fe.Field() + " is invalid"
	}
	return &ValidationError{Entity: entity, Field: fe.Field(), Msg: msg}
}
