// Package timeutil holds the wall-clock arithmetic behind the timetable
// grid: "HH:MM" conversions, the fixed quarter-hour slot sequence and the
// mapping from minutes onto the vertical pixel axis.
package timeutil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sgreben/piecewiselinear"
)

const (
	// SlotMinutes is the grid resolution.
	SlotMinutes = 15
	// SlotPixels is the rendered height of one slot.
	SlotPixels = 20
	// SlotsPerDay covers the full 24h axis.
	SlotsPerDay = minutesPerDay / SlotMinutes

	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	daysPerWeek    = 7
)

// dayScale maps minutes since midnight onto the vertical pixel axis,
// 15 minutes per 20 pixels over the whole 1440-minute day.
//
//nolint:gochecknoglobals //pure, never mutated
var dayScale = piecewiselinear.Function{
	X: []float64{0, minutesPerDay},
	Y: []float64{0, SlotsPerDay * SlotPixels},
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Input is caller-guaranteed well-formed.
func TimeToMinutes(t string) int {
	var hours, minutes int
	//nolint:errcheck //input is well-formed per the store contract
	fmt.Sscanf(t, "%d:%d", &hours, &minutes)
	return hours*minutesPerHour + minutes
}

// MinutesToTime converts minutes since midnight back to a zero-padded
// "HH:MM" string. Assumes 0 <= minutes < 1440, does not wrap.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf(
		"%02d:%02d",
		minutes/minutesPerHour,
		minutes%minutesPerHour,
	)
}

// CalculateDuration returns the duration in minutes between two times.
// Callers keep end after start; a reversed pair yields a negative value.
func CalculateDuration(startTime, endTime string) int {
	return TimeToMinutes(endTime) - TimeToMinutes(startTime)
}

// DurationToPixels converts a duration in minutes to a pixel height.
func DurationToPixels(duration int) float64 {
	return dayScale.At(float64(duration))
}

// TimeToPixelOffset converts a "HH:MM" time to its vertical offset on
// the day axis.
func TimeToPixelOffset(t string) float64 {
	return dayScale.At(float64(TimeToMinutes(t)))
}

// GenerateTimeSlots returns every quarter-hour boundary of a day,
// "00:00" through "23:45", ascending.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, SlotsPerDay)
	for minutes := 0; minutes < minutesPerDay; minutes += SlotMinutes {
		slots = append(slots, MinutesToTime(minutes))
	}
	return slots
}

// FormatTime12Hour renders a 24-hour "HH:MM" time in 12-hour notation
// with an AM/PM suffix. Hour 0 displays as 12 AM, hour 12 as 12 PM.
func FormatTime12Hour(t string) string {
	minutes := TimeToMinutes(t)
	hours := minutes / minutesPerHour

	period := "AM"
	if hours >= 12 { //nolint:mnd //noon
		period = "PM"
	}

	hour12 := hours % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minutes%minutesPerHour, period)
}

// WeekDate describes one day tab of the Monday-through-Sunday week.
type WeekDate struct {
	Day      string `json:"day"`
	Date     string `json:"date"`
	FullDate string `json:"fullDate"`
}

// GetWeekDates returns the seven days of the week containing baseDate,
// always starting on Monday. Dates are taken in baseDate's location,
// no timezone conversion is performed.
func GetWeekDates(baseDate time.Time) []WeekDate {
	mondayOffset := 1 - int(baseDate.Weekday())
	if baseDate.Weekday() == time.Sunday {
		mondayOffset = -6
	}

	monday := baseDate.AddDate(0, 0, mondayOffset)

	week := make([]WeekDate, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		date := monday.AddDate(0, 0, i)
		week = append(week, WeekDate{
			Day:      date.Weekday().String()[:3],
			Date:     strconv.Itoa(date.Day()),
			FullDate: date.Format(time.DateOnly),
		})
	}

	return week
}
