package helper

import (
	"hash/fnv"
	"slices"

	"github.com/FayzulIslamFaisal/even-time-table/internal/models"
	"github.com/FayzulIslamFaisal/even-time-table/pkg/timeutil"
)

const (
	// MinCardHeight keeps very short events readable.
	MinCardHeight = 70
	// ColumnGutter is the horizontal gap kept free inside a column.
	ColumnGutter = 8

	colorCount = 6
)

// EventBox is the rendered rectangle of one event on the board.
type EventBox struct {
	Event      models.Event
	Top        float64
	Left       float64
	Width      float64
	Height     float64
	ColorIndex int
}

// Layout places the given events on the venue columns. Events whose
// venue has no exact match in venues are left out entirely; overlap
// between events in the same column is not resolved.
func Layout(
	venues []string,
	events []models.Event,
	columnWidth float64,
) []EventBox {
	boxes := []EventBox{}

	for _, event := range events {
		venueIndex := slices.Index(venues, event.Venue)
		if venueIndex == -1 {
			continue
		}

		duration := timeutil.CalculateDuration(event.StartTime, event.EndTime)
		height := timeutil.DurationToPixels(duration)
		if height < MinCardHeight {
			height = MinCardHeight
		}

		boxes = append(boxes, EventBox{
			Event:      event,
			Top:        timeutil.TimeToPixelOffset(event.StartTime),
			Left:       float64(venueIndex) * columnWidth,
			Width:      columnWidth - ColumnGutter,
			Height:     height,
			ColorIndex: ColorIndex(event.ID),
		})
	}

	return boxes
}

// GridHeight is the vertical extent of the full-day background grid,
// independent of which events exist.
func GridHeight() float64 {
	return timeutil.SlotsPerDay * timeutil.SlotPixels
}

// ColorIndex derives a stable display color from an event id.
func ColorIndex(eventID string) int {
	h := fnv.New32a()
	//nolint:errcheck //fnv writes never fail
	h.Write([]byte(eventID))
	return int(h.Sum32() % colorCount)
}
