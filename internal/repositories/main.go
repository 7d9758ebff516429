package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Timetable *TimetableRepository
}

func New(db postgres.DB) *Repositories {
	return &Repositories{
		Timetable: &TimetableRepository{db: db},
	}
}
