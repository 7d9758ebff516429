package models

import (
	"slices"
	"time"
)

// Event is one timed entry on the board. StartTime and EndTime are
// zero-padded 24-hour "HH:MM" strings; the presentation layer keeps
// EndTime after StartTime before anything reaches the store.
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimetableData is the whole persisted state: the active day, the
// ordered venue columns and the events keyed by "YYYY-MM-DD" date.
// Mutations never patch in place, they return a fresh root.
type TimetableData struct {
	SelectedDate string             `json:"selectedDate"`
	Venues       []string           `json:"venues"`
	Events       map[string][]Event `json:"events"`
}

func (data TimetableData) clone() TimetableData {
	events := make(map[string][]Event, len(data.Events))
	for date, dateEvents := range data.Events {
		events[date] = slices.Clone(dateEvents)
	}

	return TimetableData{
		SelectedDate: data.SelectedDate,
		Venues:       slices.Clone(data.Venues),
		Events:       events,
	}
}

// EventsForDate returns the events stored under date, empty for
// unknown dates.
func (data TimetableData) EventsForDate(date string) []Event {
	return data.Events[date]
}

// HasVenue reports whether name is already a column, case-sensitive.
func (data TimetableData) HasVenue(name string) bool {
	return slices.Contains(data.Venues, name)
}

// WithEvent appends event to the date's list, creating the list when
// the date has no entry yet. Field contents are the caller's concern.
func (data TimetableData) WithEvent(event Event, date string) TimetableData {
	newData := data.clone()
	newData.Events[date] = append(newData.Events[date], event)
	return newData
}

// WithUpdatedEvent replaces every event under date whose id matches
// eventID with updatedEvent. An unknown id leaves the list unchanged.
func (data TimetableData) WithUpdatedEvent(
	eventID string,
	updatedEvent Event,
	date string,
) TimetableData {
	newData := data.clone()

	for i, event := range newData.Events[date] {
		if event.ID == eventID {
			newData.Events[date][i] = updatedEvent
		}
	}

	return newData
}

// WithoutEvent removes every event under date whose id matches
// eventID. An unknown id is a no-op.
func (data TimetableData) WithoutEvent(eventID, date string) TimetableData {
	newData := data.clone()

	if dateEvents, ok := newData.Events[date]; ok {
		newData.Events[date] = slices.DeleteFunc(
			dateEvents,
			func(event Event) bool { return event.ID == eventID },
		)
	}

	return newData
}

// WithSelectedDate sets the active day. The date is not required to
// have any events.
func (data TimetableData) WithSelectedDate(date string) TimetableData {
	newData := data.clone()
	newData.SelectedDate = date
	return newData
}

// WithVenue appends a venue column. Uniqueness is enforced by the
// form validation layer, not here, so persisted duplicates keep
// rendering the way they always did.
func (data TimetableData) WithVenue(venueName string) TimetableData {
	newData := data.clone()
	newData.Venues = append(newData.Venues, venueName)
	return newData
}

// SeedTimetableData is the built-in default dataset used when no
// persisted state exists: today's date, four halls and a sample
// conference day.
func SeedTimetableData(now time.Time) TimetableData {
	today := now.Format(time.DateOnly)

	return TimetableData{
		SelectedDate: today,
		Venues:       []string{"Hall A", "Hall B", "Hall C", "Hall D"},
		Events: map[string][]Event{
			today: {
				{
					ID:        "1",
					Title:     "Morning Keynote",
					Venue:     "Hall A",
					StartTime: "09:00",
					EndTime:   "10:30",
				},
				{
					ID:        "2",
					Title:     "Workshop: React Basics",
					Venue:     "Hall B",
					StartTime: "09:00",
					EndTime:   "11:00",
				},
				{
					ID:        "3",
					Title:     "Coffee Break",
					Venue:     "Hall A",
					StartTime: "10:30",
					EndTime:   "11:00",
				},
				{
					ID:        "4",
					Title:     "Panel Discussion",
					Venue:     "Hall C",
					StartTime: "11:00",
					EndTime:   "12:30",
				},
				{
					ID:        "5",
					Title:     "Lunch Break",
					Venue:     "Hall A",
					StartTime: "12:30",
					EndTime:   "13:30",
				},
				{
					ID:        "6",
					Title:     "Advanced Next.js",
					Venue:     "Hall B",
					StartTime: "13:30",
					EndTime:   "15:00",
				},
				{
					ID:        "7",
					Title:     "UI/UX Workshop",
					Venue:     "Hall D",
					StartTime: "14:00",
					EndTime:   "16:00",
				},
				{
					ID:        "8",
					Title:     "Networking Session",
					Venue:     "Hall C",
					StartTime: "15:00",
					EndTime:   "16:30",
				},
			},
		},
	}
}
