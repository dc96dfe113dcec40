package scheduler

import (
	"testing"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-19 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, time.UTC)
}

func reminder(start, end string, interval int, days string) models.Reminder {
	return models.Reminder{
		Title:           "Drink",
		Type:            models.ReminderTypeWater,
		StartTime:       start,
		EndTime:         end,
		IntervalMinutes: interval,
		DaysOfWeek:      days,
		IsEnabled:       true,
	}
}

func TestNextTrigger(t *testing.T) {
	tests := []struct {
		name  string
		r     models.Reminder
		after time.Time
		want  time.Time
	}{
		{"before window", reminder("08:00", "20:00", 60, ""), at(19, 7, 30), at(19, 8, 0)},
		{"on a slot is strictly after", reminder("08:00", "20:00", 60, ""), at(19, 8, 0), at(19, 9, 0)},
		{"between slots", reminder("08:00", "20:00", 60, ""), at(19, 8, 30), at(19, 9, 0)},
		{"end is inclusive", reminder("08:00", "20:00", 60, ""), at(19, 19, 59), at(19, 20, 0)},
		{"after window rolls to tomorrow", reminder("08:00", "20:00", 60, ""), at(19, 20, 0), at(20, 8, 0)},
		{"interval not dividing window", reminder("08:00", "12:00", 90, ""), at(19, 9, 45), at(19, 11, 0)},
		{"last uneven slot", reminder("08:00", "12:00", 90, ""), at(19, 11, 0), at(20, 8, 0)},
		{"empty end runs to midnight", reminder("22:00", "", 60, ""), at(19, 22, 30), at(19, 23, 0)},
		{"empty end rolls over", reminder("22:00", "", 60, ""), at(19, 23, 30), at(20, 22, 0)},
		{"equal start and end is one slot", reminder("08:00", "08:00", 30, ""), at(19, 8, 0), at(20, 8, 0)},
		{"weekend only", reminder("08:00", "20:00", 60, "6,7"), at(19, 12, 0), at(24, 8, 0)},
		{"sunday is 7", reminder("08:00", "20:00", 60, "7"), at(19, 12, 0), at(25, 8, 0)},
		{"same weekday next week", reminder("08:00", "20:00", 60, "1"), at(19, 21, 0), at(26, 8, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextTrigger(tt.r, tt.after, time.UTC)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNextTriggerUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 00:00 UTC is 09:00 in Tokyo.
	got, err := NextTrigger(reminder("08:00", "20:00", 60, ""), at(19, 0, 0), tokyo)
	require.NoError(t, err)
	assert.True(t, at(19, 1, 0).Equal(got), "got %s", got)
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 465, m)
	assert.Equal(t, "07:45", FormatClock(m))

	for _, bad := range []string{"", "7:45", "24:00", "12:60", "ab:cd", "1200"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrBadClock, bad)
	}
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays("1, 7")
	require.NoError(t, err)
	assert.True(t, days.Has(time.Monday))
	assert.True(t, days.Has(time.Sunday))
	assert.False(t, days.Has(time.Wednesday))

	all, err := ParseDays("")
	require.NoError(t, err)
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, all.Has(d))
	}

	_, err = ParseDays("0")
	assert.ErrorIs(t, err, ErrBadDays)
	_, err = ParseDays("1,x")
	assert.ErrorIs(t, err, ErrBadDays)
}

func TestValidate(t *testing.T) {
	ok := reminder("08:00", "20:00", 60, "1,2,3")
	require.NoError(t, Validate(ok))

	bad := ok
	bad.IntervalMinutes = 0
	assert.ErrorIs(t, Validate(bad), ErrBadInterval)

	bad = ok
	bad.IntervalMinutes = 1441
	assert.ErrorIs(t, Validate(bad), ErrBadInterval)

	bad = ok
	bad.StartTime = "8am"
	assert.ErrorIs(t, Validate(bad), ErrBadClock)

	bad = ok
	bad.EndTime = "07:00"
	assert.ErrorIs(t, Validate(bad), ErrBadWindow)

	bad = ok
	bad.DaysOfWeek = "8"
	assert.ErrorIs(t, Validate(bad), ErrBadDays)

	bad = ok
	bad.Type = "ALARM"
	assert.ErrorIs(t, Validate(bad), ErrBadType)
}

func TestMessage(t *testing.T) {
	r := reminder("08:00", "", 60, "")
	r.WaterAmountMl = 250
	title, body := Message(r)
	assert.Equal(t, "Drink", title)
	assert.Equal(t, "Time to drink 250 ml of water.", body)

	r.WaterAmountMl = 0
	_, body = Message(r)
	assert.Equal(t, "Time for a glass of water.", body)

	r.Type = models.ReminderTypeMedicine
	r.Title = "Vitamin D"
	_, body = Message(r)
	assert.Equal(t, "Time to take your medicine: Vitamin D", body)
}
