package services

import (
	"log/slog"

	"github.com/xhit/go-str2duration/v2"

	"github.com/FayzulIslamFaisal/even-time-table/internal/config"
	"github.com/FayzulIslamFaisal/even-time-table/internal/repositories"
)

type Services struct {
	Schedule *ScheduleService
	Refresh  *RefreshService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repositories *repositories.Repositories,
) *Services {
	wsMaxAge, err := str2duration.ParseDuration(cfg.WSMaxAge)
	if err != nil {
		panic(err)
	}

	schedule := &ScheduleService{
		logger:    logger,
		timetable: repositories.Timetable,
	}

	return &Services{
		Schedule: schedule,
		Refresh:  NewRefreshService(logger, wsMaxAge),
	}
}
