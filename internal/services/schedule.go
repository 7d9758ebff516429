package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/FayzulIslamFaisal/even-time-table/internal/models"
	"github.com/FayzulIslamFaisal/even-time-table/internal/repositories"
)

// ScheduleService owns the canonical in-memory timetable root and
// mediates every mutation. One logical operation is one root
// replacement plus one persisted write; the mutex keeps that invariant
// across concurrent requests.
type ScheduleService struct {
	logger    *slog.Logger
	timetable *repositories.TimetableRepository

	mu     sync.Mutex
	root   models.TimetableData
	loaded bool
}

// Load returns the session root, reading persisted state on first use.
// A missing or unparseable blob never fails outward: the seeded
// default dataset is installed and persisted instead, with a warning
// for debuggability.
func (service *ScheduleService) Load(ctx context.Context) models.TimetableData {
	service.mu.Lock()
	defer service.mu.Unlock()

	return service.loadLocked(ctx)
}

func (service *ScheduleService) loadLocked(
	ctx context.Context,
) models.TimetableData {
	if service.loaded {
		return service.root
	}

	blob, err := service.timetable.Get(ctx)
	if err == nil {
		var data models.TimetableData
		if err = json.Unmarshal(blob, &data); err == nil {
			service.root = data
			service.loaded = true
			return service.root
		}
	}

	service.logger.Warn(
		"no usable timetable state, falling back to seed data",
		logging.ErrAttr(err),
	)

	service.root = models.SeedTimetableData(time.Now())
	service.loaded = true

	if err = service.saveLocked(ctx, service.root); err != nil {
		service.logger.Warn("failed to persist seed data", logging.ErrAttr(err))
	}

	return service.root
}

func (service *ScheduleService) saveLocked(
	ctx context.Context,
	data models.TimetableData,
) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return service.timetable.Upsert(ctx, blob)
}

// GetEventsForDate returns the events stored under date, empty for
// unknown dates.
func (service *ScheduleService) GetEventsForDate(
	ctx context.Context,
	date string,
) []models.Event {
	return service.Load(ctx).EventsForDate(date)
}

// AddEvent appends event to the date's list and persists the new root.
// Field contents are validated by the presentation layer; ids are
// generated there as well, so collisions do not occur in practice.
func (service *ScheduleService) AddEvent(
	ctx context.Context,
	event models.Event,
	date string,
) (models.TimetableData, error) {
	return service.mutate(ctx, func(root models.TimetableData) models.TimetableData {
		return root.WithEvent(event, date)
	})
}

// UpdateEvent replaces every event under date matching eventID with
// updatedEvent and persists. An unknown id is a silent no-op.
func (service *ScheduleService) UpdateEvent(
	ctx context.Context,
	eventID string,
	updatedEvent models.Event,
	date string,
) (models.TimetableData, error) {
	return service.mutate(ctx, func(root models.TimetableData) models.TimetableData {
		return root.WithUpdatedEvent(eventID, updatedEvent, date)
	})
}

// DeleteEvent removes every event under date matching eventID and
// persists. An unknown id is a silent no-op.
func (service *ScheduleService) DeleteEvent(
	ctx context.Context,
	eventID string,
	date string,
) (models.TimetableData, error) {
	return service.mutate(ctx, func(root models.TimetableData) models.TimetableData {
		return root.WithoutEvent(eventID, date)
	})
}

// SetSelectedDate sets the active day and persists. The date is not
// required to have any events.
func (service *ScheduleService) SetSelectedDate(
	ctx context.Context,
	date string,
) (models.TimetableData, error) {
	return service.mutate(ctx, func(root models.TimetableData) models.TimetableData {
		return root.WithSelectedDate(date)
	})
}

// AddVenue appends a venue column and persists. Duplicate names are
// rejected by the form validation layer before this is called.
func (service *ScheduleService) AddVenue(
	ctx context.Context,
	venueName string,
) (models.TimetableData, error) {
	return service.mutate(ctx, func(root models.TimetableData) models.TimetableData {
		return root.WithVenue(venueName)
	})
}

func (service *ScheduleService) mutate(
	ctx context.Context,
	apply func(models.TimetableData) models.TimetableData,
) (models.TimetableData, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	newRoot := apply(service.loadLocked(ctx))

	if err := service.saveLocked(ctx, newRoot); err != nil {
		return service.root, err
	}

	service.root = newRoot
	return service.root, nil
}
