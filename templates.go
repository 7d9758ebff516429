package timetable

import (
	"net/http"
	"time"

	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"

	"github.com/FayzulIslamFaisal/even-time-table/internal/helper"
	"github.com/FayzulIslamFaisal/even-time-table/pkg/timeutil"
)

// venueColumnWidth is the fixed width of one venue column in pixels.
const venueColumnWidth = 200

func (app *EventTimetable) templateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", app.rootHandler)
}

type TimeSlotView struct {
	Label    string
	HourMark bool
}

type EventCardView struct {
	helper.EventBox
	TimeLabel string
}

type VenueColumnView struct {
	Name string
	Left int
}

type BoardData struct {
	WeekDates    []timeutil.WeekDate
	SelectedDate string
	Venues       []VenueColumnView
	TimeSlots    []TimeSlotView
	Cards        []EventCardView
	SlotHeight   int
	GridHeight   float64
	ColumnWidth  int
	BoardWidth   int
}

func (app *EventTimetable) rootHandler(w http.ResponseWriter, r *http.Request) {
	data := app.Services.Schedule.Load(r.Context())
	events := data.EventsForDate(data.SelectedDate)

	boxes := helper.Layout(data.Venues, events, venueColumnWidth)

	cards := make([]EventCardView, 0, len(boxes))
	for _, box := range boxes {
		cards = append(cards, EventCardView{
			EventBox: box,
			TimeLabel: timeutil.FormatTime12Hour(box.Event.StartTime) +
				" - " + timeutil.FormatTime12Hour(box.Event.EndTime),
		})
	}

	slots := []TimeSlotView{}
	for i, slot := range timeutil.GenerateTimeSlots() {
		slots = append(slots, TimeSlotView{
			Label:    timeutil.FormatTime12Hour(slot),
			HourMark: i%4 == 0,
		})
	}

	venues := make([]VenueColumnView, 0, len(data.Venues))
	for i, venue := range data.Venues {
		venues = append(venues, VenueColumnView{
			Name: venue,
			Left: i * venueColumnWidth,
		})
	}

	boardData := BoardData{
		WeekDates:    timeutil.GetWeekDates(time.Now()),
		SelectedDate: data.SelectedDate,
		Venues:       venues,
		TimeSlots:    slots,
		Cards:        cards,
		SlotHeight:   timeutil.SlotPixels,
		GridHeight:   helper.GridHeight(),
		ColumnWidth:  venueColumnWidth,
		BoardWidth:   venueColumnWidth * len(data.Venues),
	}

	tpltools.RenderWithPanic(app.tpl, w, "root.html", boardData)
}
