package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		Title:       "Go Meetup Berlin",
		Description: "Monthly gathering",
		Overview:    "Talks and pizza",
		Image:       "/images/go-meetup.png",
		Venue:       "Factory",
		Location:    "Berlin, DE",
		Date:        "2024-03-15",
		Time:        "18:30",
		Mode:        ModeHybrid,
		Audience:    "Developers",
		Agenda:      []string{"Intro", "Talk", "Networking"},
		Organizer:   "Go Berlin",
		Tags:        []string{"go", "meetup"},
	}
}

func TestSlug_Examples(t *testing.T) {
	cases := map[string]string{
		"My Cool Event!! 2024":       "my-cool-event-2024",
		"  Spaces   Everywhere  ":    "spaces-everywhere",
		"already-slugged":            "already-slugged",
		"--Leading and trailing--":   "leading-and-trailing",
		"Multiple --- hyphens":       "multiple-hyphens",
		"snake_case_title":           "snake-case-title",
		"Café & Crème: Night":         "caf-crme-night",
		"Tabs\tand\nnewlines":        "tabs-and-newlines",
		"React/Next.js Conf (2025)!": "reactnextjs-conf-2025",
		"a\vb":                       "a-b",
		"a\ufeffb":                   "a-b",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slug(title), "title %q", title)
	}
}

func TestSlug_Properties(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	titles := []string{
		"Hello World", "  x  ", "A -- B", "__init__", "100% Pure Go!", "Ünïcödé Tïtlé", "a b",
	}
	for _, title := range titles {
		first := Slug(title)
		assert.Equal(t, first, Slug(title), "slug must be deterministic")
		if first != "" {
			assert.Regexp(t, shape, first, "title %q", title)
		}
	}
	assert.Equal(t, "a-b", Slug("a b"))
	assert.Equal(t, "", Slug("!!!"))
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-15":                "2024-03-15",
		"2024-03-15T23:30:00Z":      "2024-03-15",
		"2024-03-15T23:30:00-05:00": "2024-03-16",
		"2024/03/15":                "2024-03-15",
		"03/15/2024":                "2024-03-15",
		"March 15, 2024":            "2024-03-15",
		"Mar 5, 2024":               "2024-03-05",
		"15 Mar 2024":               "2024-03-15",
		" 2024-03-15 ":              "2024-03-15",
	}
	for in, want := range cases {
		got, err := NormalizeDate(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, got)
	}

	for _, in := range []string{"", "tomorrow", "2024-13-01", "2024-02-30", "not a date"} {
		_, err := NormalizeDate(in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "input %q", in)
		assert.Equal(t, "Invalid date format", ve.Msg)
		assert.Equal(t, FieldDate, ve.Field)
	}
}

func TestValidateTime(t *testing.T) {
	for _, ok := range []string{"00:00", "09:05", "12:30", "23:59", "9:30"} {
		assert.NoError(t, ValidateTime(ok), ok)
	}
	for _, bad := range []string{"24:00", "9:5", "ab:cd", "12:60", "1230", "", "12:30:00"} {
		err := ValidateTime(bad)
		assert.True(t, IsValidation(err), "%q should be rejected", bad)
	}
}

func TestPrepareEvent_NewRecord(t *testing.T) {
	e := validEvent()
	e.Title = "  My Cool Event!! 2024 "
	e.Date = "March 15, 2024"
	e.Slug = "caller-supplied"

	require.NoError(t, PrepareEvent(e, NewRecord()))
	assert.Equal(t, "My Cool Event!! 2024", e.Title)
	assert.Equal(t, "my-cool-event-2024", e.Slug)
	assert.Equal(t, "2024-03-15", e.Date)
	assert.Equal(t, "18:30", e.Time)
}

func TestPrepareEvent_TimeIsNotReformatted(t *testing.T) {
	e := validEvent()
	e.Time = " 18:30 "
	err := PrepareEvent(e, NewRecord())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, FieldTime, ve.Field)
	assert.Equal(t, " 18:30 ", e.Time)
}

func TestPrepareEvent_Mode(t *testing.T) {
	e := validEvent()
	e.Mode = "virtual"
	err := PrepareEvent(e, NewRecord())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, FieldMode, ve.Field)
	assert.Equal(t, "Mode must be either online, offline, or hybrid", ve.Msg)

	for _, m := range []Mode{ModeOnline, ModeOffline, ModeHybrid} {
		e := validEvent()
		e.Mode = m
		assert.NoError(t, PrepareEvent(e, NewRecord()), string(m))
	}
}

func TestPrepareEvent_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Event)
		field  string
		msg    string
	}{
		{"title", func(e *Event) { e.Title = "   " }, FieldTitle, "Event title is required"},
		{"description", func(e *Event) { e.Description = "" }, FieldDescription, "Event description is required"},
		{"image", func(e *Event) { e.Image = "" }, FieldImage, "Event image is required"},
		{"date", func(e *Event) { e.Date = "" }, FieldDate, "Event date is required"},
		{"mode", func(e *Event) { e.Mode = "" }, FieldMode, "Event mode is required"},
		{"agenda nil", func(e *Event) { e.Agenda = nil }, FieldAgenda, "Event agenda is required"},
		{"agenda empty", func(e *Event) { e.Agenda = []string{} }, FieldAgenda, "Agenda must contain at least one item"},
		{"tags empty", func(e *Event) { e.Tags = []string{} }, FieldTags, "Tags must contain at least one item"},
		{"organizer", func(e *Event) { e.Organizer = "" }, FieldOrganizer, "Event organizer is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			err := PrepareEvent(e, NewRecord())
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.msg, ve.Msg)
		})
	}
}

func TestPrepareEvent_TitleWithoutSlugCharacters(t *testing.T) {
	e := validEvent()
	e.Title = "!!!"
	assert.True(t, IsValidation(PrepareEvent(e, NewRecord())))
}

func TestPrepareEvent_OnlyChangedFieldsAreNormalized(t *testing.T) {
	e := validEvent()
	e.Slug = "stored-slug"
	e.Title = "A New Title"
	e.Date = "March 15, 2024"

	require.NoError(t, PrepareEvent(e, Changed(FieldDescription)))
	assert.Equal(t, "stored-slug", e.Slug)
	assert.Equal(t, "March 15, 2024", e.Date)

	require.NoError(t, PrepareEvent(e, Changed(FieldTitle)))
	assert.Equal(t, "a-new-title", e.Slug)

	e.Time = "25:00"
	assert.NoError(t, PrepareEvent(e, Changed(FieldDate)))
	assert.Equal(t, "2024-03-15", e.Date)
	assert.True(t, IsValidation(PrepareEvent(e, Changed(FieldTime))))
}

func TestEventPatch_Apply(t *testing.T) {
	prev := *validEvent()
	title := "Renamed"
	agenda := []string{"Only item"}
	next := EventPatch{Title: &title, Agenda: &agenda}.Apply(prev)

	assert.Equal(t, "Renamed", next.Title)
	assert.Equal(t, []string{"Only item"}, next.Agenda)
	assert.Equal(t, prev.Venue, next.Venue)
	assert.Equal(t, "Go Meetup Berlin", prev.Title)

	agenda[0] = "mutated"
	assert.Equal(t, "Only item", next.Agenda[0])
}

func TestDiffEvent(t *testing.T) {
	prev := validEvent()
	next := *prev
	assert.True(t, DiffEvent(prev, &next).Empty())

	next.Title = "Other"
	next.Tags = []string{"go"}
	cs := DiffEvent(prev, &next)
	assert.Equal(t, []string{FieldTags, FieldTitle}, cs.Fields())
	assert.True(t, cs.Has(FieldTitle))
	assert.False(t, cs.Has(FieldDate))
	assert.False(t, cs.Created)
}
