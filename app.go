//nolint:revive //it is what it is
package timetable

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"

	"github.com/FayzulIslamFaisal/even-time-table/internal/config"
	"github.com/FayzulIslamFaisal/even-time-table/internal/repositories"
	"github.com/FayzulIslamFaisal/even-time-table/internal/services"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type EventTimetable struct {
	logger       *slog.Logger
	ctx          context.Context
	ctxCancel    context.CancelFunc
	db           postgres.DB
	Config       config.Config
	Services     *services.Services
	Repositories *repositories.Repositories
	tpl          *template.Template
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *EventTimetable {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	//nolint:exhaustruct //other fields are optional
	app := &EventTimetable{
		logger: logger,
		Config: cfg,
		tpl:    tpl,
	}

	app.setContext()
	app.setDB(db)

	return app
}

func (app *EventTimetable) setDB(db postgres.DB) {
	spandb := postgres.NewSpanDB(db)
	app.db = spandb

	app.Repositories = repositories.New(app.db)
	app.Services = services.New(app.logger, app.Config, app.Repositories)
}

func (app *EventTimetable) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

func (app *EventTimetable) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *EventTimetable) GetName() string {
	return "timetable"
}
