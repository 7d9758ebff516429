package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

type EventDto struct {
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (dto *EventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)
	validate.Check(v, "venue", dto.Venue, validate.IsNotEmpty)
	validate.Check(v, "startTime", dto.StartTime, validate.IsNotEmpty)
	validate.Check(v, "endTime", dto.EndTime, validate.IsNotEmpty)

	// zero-padded "HH:MM" orders lexically
	validate.Check(v, "endTime", dto.EndTime, func(endTime string) (bool, string) {
		if dto.StartTime != "" && endTime != "" && endTime <= dto.StartTime {
			return false, "must be after start time"
		}
		return true, ""
	})

	return v.Valid(), v.Errors()
}

type VenueDto struct {
	Name string `json:"name"`
}

func (dto *VenueDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", dto.Name, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
