package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FayzulIslamFaisal/even-time-table/internal/models"
)

//nolint:gochecknoglobals //shared fixture
var testEvent = models.Event{
	ID:        "42",
	Title:     "Lightning Talks",
	Venue:     "Hall A",
	StartTime: "17:00",
	EndTime:   "18:00",
}

func testData() models.TimetableData {
	return models.TimetableData{
		SelectedDate: "2026-08-31",
		Venues:       []string{"Hall A", "Hall B"},
		Events: map[string][]models.Event{
			"2026-08-31": {
				{
					ID:        "1",
					Title:     "Morning Keynote",
					Venue:     "Hall A",
					StartTime: "09:00",
					EndTime:   "10:30",
				},
			},
			"2026-09-01": {
				{
					ID:        "2",
					Title:     "Closing Keynote",
					Venue:     "Hall B",
					StartTime: "16:00",
					EndTime:   "17:00",
				},
			},
		},
	}
}

func TestSeedTimetableData(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	data := models.SeedTimetableData(now)

	assert.Equal(t, "2026-08-31", data.SelectedDate)
	assert.Equal(t, []string{"Hall A", "Hall B", "Hall C", "Hall D"}, data.Venues)
	assert.Equal(t, 8, len(data.EventsForDate("2026-08-31")))
}

func TestEventsForDateUnknownDate(t *testing.T) {
	assert.Empty(t, testData().EventsForDate("1999-12-31"))
}

func TestWithEvent(t *testing.T) {
	data := testData()

	newData := data.WithEvent(testEvent, "2026-08-31")

	assert.Equal(t, 2, len(newData.EventsForDate("2026-08-31")))
	assert.Contains(t, newData.EventsForDate("2026-08-31"), testEvent)
	assert.Equal(t, testData().EventsForDate("2026-09-01"), newData.EventsForDate("2026-09-01"))

	// the previous root is never patched in place
	assert.Equal(t, 1, len(data.EventsForDate("2026-08-31")))
}

func TestWithEventNewDate(t *testing.T) {
	newData := testData().WithEvent(testEvent, "2026-09-02")

	assert.Equal(t, []models.Event{testEvent}, newData.EventsForDate("2026-09-02"))
}

func TestWithUpdatedEvent(t *testing.T) {
	updated := models.Event{
		ID:        "1",
		Title:     "Opening Keynote",
		Venue:     "Hall B",
		StartTime: "09:30",
		EndTime:   "10:30",
	}

	newData := testData().WithUpdatedEvent("1", updated, "2026-08-31")

	assert.Equal(t, []models.Event{updated}, newData.EventsForDate("2026-08-31"))
}

func TestWithUpdatedEventNoMatch(t *testing.T) {
	newData := testData().WithUpdatedEvent("nope", testEvent, "2026-08-31")

	assert.Equal(t, testData().EventsForDate("2026-08-31"), newData.EventsForDate("2026-08-31"))
}

func TestWithUpdatedEventReplacesEveryMatch(t *testing.T) {
	data := testData().
		WithEvent(models.Event{ID: "dup", Title: "First"}, "2026-08-31").
		WithEvent(models.Event{ID: "dup", Title: "Second"}, "2026-08-31")

	updated := models.Event{ID: "dup", Title: "Replaced"}
	newData := data.WithUpdatedEvent("dup", updated, "2026-08-31")

	matches := 0
	for _, event := range newData.EventsForDate("2026-08-31") {
		if event.ID == "dup" {
			matches++
			assert.Equal(t, "Replaced", event.Title)
		}
	}
	assert.Equal(t, 2, matches)
}

func TestWithoutEvent(t *testing.T) {
	newData := testData().WithoutEvent("1", "2026-08-31")

	assert.Empty(t, newData.EventsForDate("2026-08-31"))
	assert.Equal(t, testData().EventsForDate("2026-09-01"), newData.EventsForDate("2026-09-01"))
}

func TestWithoutEventNoMatch(t *testing.T) {
	newData := testData().WithoutEvent("nope", "2026-08-31")

	assert.Equal(t, testData().EventsForDate("2026-08-31"), newData.EventsForDate("2026-08-31"))
}

func TestWithSelectedDate(t *testing.T) {
	newData := testData().WithSelectedDate("2026-09-01")

	assert.Equal(t, "2026-09-01", newData.SelectedDate)
	assert.Equal(t, "2026-08-31", testData().SelectedDate)
}

func TestWithVenue(t *testing.T) {
	data := testData()

	newData := data.WithVenue("Hall C")

	assert.Equal(t, []string{"Hall A", "Hall B", "Hall C"}, newData.Venues)
	assert.Equal(t, []string{"Hall A", "Hall B"}, data.Venues)
}

func TestHasVenue(t *testing.T) {
	data := testData()

	assert.True(t, data.HasVenue("Hall A"))
	assert.False(t, data.HasVenue("hall a"))
	assert.False(t, data.HasVenue("Hall Z"))
}
