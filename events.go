package timetable

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"github.com/FayzulIslamFaisal/even-time-table/internal/dtos"
	"github.com/FayzulIslamFaisal/even-time-table/internal/models"
)

func (app *EventTimetable) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events", prefix),
		app.createEventHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/{id}/edit", prefix),
		app.editEventHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/{id}/delete", prefix),
		app.deleteEventHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/dates/{date}/select", prefix),
		app.selectDateHandler,
	)
}

// Events are always stored under the date that is selected when the
// form is submitted, matching how the board is used.
func (app *EventTimetable) createEventHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var eventDto dtos.EventDto

	err := httptools.ReadForm(r, &eventDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	data := app.Services.Schedule.Load(r.Context())

	event := models.Event{
		ID:        uuid.New().String(),
		Title:     eventDto.Title,
		Venue:     eventDto.Venue,
		StartTime: eventDto.StartTime,
		EndTime:   eventDto.EndTime,
	}

	_, err = app.Services.Schedule.AddEvent(r.Context(), event, data.SelectedDate)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.Services.Refresh.Broadcast(r.Context())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *EventTimetable) editEventHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var eventDto dtos.EventDto

	err = httptools.ReadForm(r, &eventDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	data := app.Services.Schedule.Load(r.Context())

	updatedEvent := models.Event{
		ID:        id,
		Title:     eventDto.Title,
		Venue:     eventDto.Venue,
		StartTime: eventDto.StartTime,
		EndTime:   eventDto.EndTime,
	}

	_, err = app.Services.Schedule.UpdateEvent(
		r.Context(),
		id,
		updatedEvent,
		data.SelectedDate,
	)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.Services.Refresh.Broadcast(r.Context())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *EventTimetable) deleteEventHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	data := app.Services.Schedule.Load(r.Context())

	_, err = app.Services.Schedule.DeleteEvent(r.Context(), id, data.SelectedDate)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.Services.Refresh.Broadcast(r.Context())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *EventTimetable) selectDateHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	date, err := parse.URLParam[string](r, "date", nil)
	if err != nil {
		panic(err)
	}

	_, err = app.Services.Schedule.SetSelectedDate(r.Context(), date)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
