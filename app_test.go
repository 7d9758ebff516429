package timetable_test

import (
	"net/http"
	"os"
	"testing"
	"time"

	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	timetable "github.com/FayzulIslamFaisal/even-time-table"
	"github.com/FayzulIslamFaisal/even-time-table/internal/config"
)

var testApp *timetable.EventTimetable //nolint:gochecknoglobals //needed for tests

func TestMain(m *testing.M) {
	var err error

	cfg := config.New(logging.NewNopLogger())
	cfg.Env = configtools.TestEnv
	cfg.Throttle = false

	postgresDB, err := postgres.Connect(
		logging.NewNopLogger(),
		cfg.DBDsn,
		25,
		"15m",
		5,
		15*time.Second,
		30*time.Second,
	)
	if err != nil {
		panic(err)
	}

	testApp = timetable.New(
		logging.NewNopLogger(),
		cfg,
		postgresDB,
	)

	err = testApp.ApplyMigrations(postgresDB)
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func getRoutes() http.Handler {
	return testApp.Routes()
}
