package timetable

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"

	"github.com/FayzulIslamFaisal/even-time-table/internal/dtos"
)

func (app *EventTimetable) venuesRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST %s/venues", prefix),
		app.addVenueHandler,
	)
}

func (app *EventTimetable) addVenueHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var venueDto dtos.VenueDto

	err := httptools.ReadForm(r, &venueDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := venueDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	// duplicate names would render as indistinguishable columns
	data := app.Services.Schedule.Load(r.Context())
	if data.HasVenue(venueDto.Name) {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"name": "venue already exists",
		})
		return
	}

	_, err = app.Services.Schedule.AddVenue(r.Context(), venueDto.Name)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.Services.Refresh.Broadcast(r.Context())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
