package timetable

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/justinas/alice"
	"github.com/xdoubleu/essentia/v2/pkg/middleware"
)

func (app *EventTimetable) apiRoutes(mux *http.ServeMux) {
	apiPrefix := "/api"
	app.eventsRoutes(apiPrefix, mux)
	app.venuesRoutes(apiPrefix, mux)
	app.wsRoutes(apiPrefix, mux)
}

func (app *EventTimetable) Routes() http.Handler {
	mux := http.NewServeMux()

	app.templateRoutes(mux)
	app.apiRoutes(mux)

	var sentryClientOptions sentry.ClientOptions
	if len(app.Config.SentryDsn) > 0 {
		//nolint:exhaustruct //other fields are optional
		sentryClientOptions = sentry.ClientOptions{
			Dsn:              app.Config.SentryDsn,
			Environment:      app.Config.Env,
			Release:          app.Config.Release,
			EnableTracing:    true,
			TracesSampleRate: app.Config.SampleRate,
			SampleRate:       app.Config.SampleRate,
		}
	}

	allowedOrigins := []string{app.Config.WebURL}
	handlers, err := middleware.DefaultWithSentry(
		app.logger,
		allowedOrigins,
		app.Config.Env,
		sentryClientOptions,
	)

	if err != nil {
		panic(err)
	}

	standard := alice.New(handlers...)
	return standard.Then(mux)
}
