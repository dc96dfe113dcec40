package utils

import (
	"fmt"
	"strconv"
	"time"
)

const (
	DateLayout        = "2006-01-02"
	DisplayTimeLayout = "Mon, 02 Jan 2006 15:04"
)

// FormatWater renders millilitres for display: "750 ml", "1.5 L", "2 L".
func FormatWater(ml int) string {
	if ml < 1000 {
		return fmt.Sprintf("%d ml", ml)
	}
	return strconv.FormatFloat(float64(ml)/1000, 'f', -1, 64) + " L"
}

// DayStart truncates t to local midnight in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns the Monday midnight of t's week in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	d := DayStart(t, loc)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, -(wd - 1))
}
