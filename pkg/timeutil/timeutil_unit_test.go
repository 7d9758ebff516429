package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FayzulIslamFaisal/even-time-table/pkg/timeutil"
)

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, timeutil.TimeToMinutes("00:00"))
	assert.Equal(t, 540, timeutil.TimeToMinutes("09:00"))
	assert.Equal(t, 785, timeutil.TimeToMinutes("13:05"))
	assert.Equal(t, 1425, timeutil.TimeToMinutes("23:45"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", timeutil.MinutesToTime(0))
	assert.Equal(t, "09:05", timeutil.MinutesToTime(545))
	assert.Equal(t, "23:45", timeutil.MinutesToTime(1425))
}

func TestTimeMinutesRoundTrip(t *testing.T) {
	for _, slot := range timeutil.GenerateTimeSlots() {
		assert.Equal(t, slot, timeutil.MinutesToTime(timeutil.TimeToMinutes(slot)))
	}
}

func TestCalculateDuration(t *testing.T) {
	assert.Equal(t, 90, timeutil.CalculateDuration("09:00", "10:30"))
	assert.Equal(t, -90, timeutil.CalculateDuration("10:30", "09:00"))
}

func TestDurationToPixels(t *testing.T) {
	duration := timeutil.CalculateDuration("09:00", "10:30")
	assert.InDelta(t, 120, timeutil.DurationToPixels(duration), 1e-9)
	assert.InDelta(t, 20, timeutil.DurationToPixels(15), 1e-9)
}

func TestTimeToPixelOffset(t *testing.T) {
	assert.InDelta(t, 0, timeutil.TimeToPixelOffset("00:00"), 1e-9)
	assert.InDelta(t, 720, timeutil.TimeToPixelOffset("09:00"), 1e-9)
	assert.InDelta(t, 1900, timeutil.TimeToPixelOffset("23:45"), 1e-9)
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := timeutil.GenerateTimeSlots()

	assert.Equal(t, 96, len(slots))
	assert.Equal(t, "00:00", slots[0])
	assert.Equal(t, "23:45", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestFormatTime12Hour(t *testing.T) {
	assert.Equal(t, "12:00 AM", timeutil.FormatTime12Hour("00:00"))
	assert.Equal(t, "9:00 AM", timeutil.FormatTime12Hour("09:00"))
	assert.Equal(t, "11:45 AM", timeutil.FormatTime12Hour("11:45"))
	assert.Equal(t, "12:00 PM", timeutil.FormatTime12Hour("12:00"))
	assert.Equal(t, "1:05 PM", timeutil.FormatTime12Hour("13:05"))
	assert.Equal(t, "11:45 PM", timeutil.FormatTime12Hour("23:45"))
}

func TestGetWeekDates(t *testing.T) {
	// 2024-01-01 was a Monday
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		baseDate := monday.AddDate(0, 0, offset)

		week := timeutil.GetWeekDates(baseDate)

		assert.Equal(t, 7, len(week))
		assert.Equal(t, "Mon", week[0].Day)
		assert.Equal(t, "Sun", week[6].Day)
		assert.Equal(t, "2024-01-01", week[0].FullDate)
		assert.Equal(t, "2024-01-07", week[6].FullDate)

		for i, weekDate := range week {
			expected := monday.AddDate(0, 0, i)
			assert.Equal(t, expected.Format(time.DateOnly), weekDate.FullDate)
			assert.Equal(t, expected.Weekday().String()[:3], weekDate.Day)
		}
	}
}
