package models

import (
	"slices"
	"sort"
)

// ChangeSet names the fields a write sets or modifies. The pre-write hooks
// only re-derive slug/date/time or re-check the event reference for the
// fields listed here.
type ChangeSet struct {
	Created bool
	fields  map[string]struct{}
}

// NewRecord is the change set of an insert: every field counts as changed.
func NewRecord() ChangeSet {
	return ChangeSet{Created: true}
}

// Changed builds a change set for an update of the given fields.
func Changed(fields ...string) ChangeSet {
	cs := ChangeSet{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		cs.fields[f] = struct{}{}
	}
	return cs
}

func (cs ChangeSet) Has(field string) bool {
	if cs.Created {
		return true
	}
	_, ok := cs.fields[field]
	return ok
}

func (cs ChangeSet) Empty() bool {
	return !cs.Created && len(cs.fields) == 0
}

// Fields returns the changed field names in sorted order.
func (cs ChangeSet) Fields() []string {
	out := make([]string, 0, len(cs.fields))
	for f := range cs.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// DiffEvent lists the fields of next that differ from prev.
func DiffEvent(prev, next *Event) ChangeSet {
	var fields []string
	add := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}
	add(FieldTitle, prev.Title != next.Title)
	add(FieldDescription, prev.Description != next.Description)
	add(FieldOverview, prev.Overview != next.Overview)
	add(FieldImage, prev.Image != next.Image)
	add(FieldVenue, prev.Venue != next.Venue)
	add(FieldLocation, prev.Location != next.Location)
	add(FieldDate, prev.Date != next.Date)
	add(FieldTime, prev.Time != next.Time)
	add(FieldMode, prev.Mode != next.Mode)
	add(FieldAudience, prev.Audience != next.Audience)
	add(FieldAgenda, !slices.Equal(prev.Agenda, next.Agenda))
	add(FieldOrganizer, prev.Organizer != next.Organizer)
	add(FieldTags, !slices.Equal(prev.Tags, next.Tags))
	return Changed(fields...)
}

// DiffBooking lists the fields of next that differ from prev.
func DiffBooking(prev, next *Booking) ChangeSet {
	var fields []string
	if prev.EventID != next.EventID {
		fields = append(fields, FieldEventID)
	}
	if prev.Email != next.Email {
		fields = append(fields, FieldEmail)
	}
	return Changed(fields...)
}
