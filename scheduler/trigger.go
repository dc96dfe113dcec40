// Package scheduler turns stored reminders into concrete fire times and
// delivers them when they come due.
package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/utils"
)

const minutesPerDay = 24 * 60

var (
	ErrBadClock    = errors.New(`time must be "HH:mm"`)
	ErrBadDays     = errors.New("days_of_week must list ISO weekdays 1-7 (1 = Monday)")
	ErrBadInterval = errors.New("interval_minutes must be between 1 and 1440")
	ErrBadWindow   = errors.New("end_time must not be before start_time")
	ErrBadType     = errors.New("type must be WATER, MEDICINE or CUSTOM")
)

// ParseClock converts "HH:mm" into minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrBadClock
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, ErrBadClock
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, ErrBadClock
	}
	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Weekdays is a set of allowed days indexed by time.Weekday.
type Weekdays [7]bool

// ParseDays reads a comma separated list of ISO weekdays. Empty means every day.
func ParseDays(s string) (Weekdays, error) {
	var days Weekdays
	s = strings.TrimSpace(s)
	if s == "" {
		for i := range days {
			days[i] = true
		}
		return days, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > 7 {
			return days, ErrBadDays
		}
		days[time.Weekday(n%7)] = true
	}
	return days, nil
}

func (w Weekdays) Has(d time.Weekday) bool { return w[d] }

// window is the parsed daily schedule of a reminder.
type window struct {
	start, end, interval int
	days                 Weekdays
}

func parseWindow(r models.Reminder) (window, error) {
	var w window
	var err error
	if r.IntervalMinutes < 1 || r.IntervalMinutes > minutesPerDay {
		return w, ErrBadInterval
	}
	w.interval = r.IntervalMinutes
	if w.start, err = ParseClock(r.StartTime); err != nil {
		return w, fmt.Errorf("start_time: %w", err)
	}
	w.end = minutesPerDay - 1
	if strings.TrimSpace(r.EndTime) != "" {
		if w.end, err = ParseClock(r.EndTime); err != nil {
			return w, fmt.Errorf("end_time: %w", err)
		}
	}
	if w.end < w.start {
		return w, ErrBadWindow
	}
	if w.days, err = ParseDays(r.DaysOfWeek); err != nil {
		return w, err
	}
	return w, nil
}

// Validate checks the schedule fields and the reminder type.
func Validate(r models.Reminder) error {
	switch r.Type {
	case models.ReminderTypeWater, models.ReminderTypeMedicine, models.ReminderTypeCustom:
	default:
		return ErrBadType
	}
	_, err := parseWindow(r)
	return err
}

// NextTrigger returns the first slot strictly after `after`. Slots are
// start, start+interval, ... up to and including end on allowed days.
// An empty end time runs the window to 23:59.
func NextTrigger(r models.Reminder, after time.Time, loc *time.Location) (time.Time, error) {
	w, err := parseWindow(r)
	if err != nil {
		return time.Time{}, err
	}
	local := after.In(loc)
	y, mo, d := local.Date()

	// Eight days covers a reminder allowed only on today's weekday whose
	// slots today have all passed.
	for offset := 0; offset <= 7; offset++ {
		day := time.Date(y, mo, d+offset, 0, 0, 0, 0, loc)
		if !w.days.Has(day.Weekday()) {
			continue
		}
		first := w.start
		if offset == 0 {
			elapsed := local.Hour()*60 + local.Minute()
			if elapsed >= w.start {
				// Jump to the slot at or just before now, the loop below steps past it.
				first = w.start + (elapsed-w.start)/w.interval*w.interval
			}
		}
		for m := first; m <= w.end; m += w.interval {
			t := time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, loc)
			if t.After(after) {
				return t, nil
			}
		}
	}
	return time.Time{}, ErrBadDays
}

// Message builds the notification title and body for a fired reminder.
func Message(r models.Reminder) (title, body string) {
	switch r.Type {
	case models.ReminderTypeWater:
		amount := r.WaterAmountMl
		if amount <= 0 {
			return r.Title, "Time for a glass of water."
		}
		return r.Title, fmt.Sprintf("Time to drink %s of water.", utils.FormatWater(amount))
	case models.ReminderTypeMedicine:
		return r.Title, fmt.Sprintf("Time to take your medicine: %s", r.Title)
	default:
		return r.Title, fmt.Sprintf("Reminder: %s", r.Title)
	}
}
