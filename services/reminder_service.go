package services

import (
	"context"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/scheduler"
)

type ReminderInput struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	IntervalMinutes int    `json:"interval_minutes"`
	WaterAmountMl   int    `json:"water_amount_ml"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DaysOfWeek      string `json:"days_of_week"`
	IsEnabled       *bool  `json:"is_enabled"`
}

type ReminderService struct {
	reminders *repositories.ReminderRepository
	sched     *scheduler.Scheduler
	now       func() time.Time
}

func NewReminderService(repos *repositories.Repositories, sched *scheduler.Scheduler) *ReminderService {
	return &ReminderService{reminders: repos.Reminders, sched: sched, now: time.Now}
}

func (in ReminderInput) apply(r *models.Reminder) error {
	r.Title = strings.TrimSpace(in.Title)
	r.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	r.IntervalMinutes = in.IntervalMinutes
	r.WaterAmountMl = in.WaterAmountMl
	r.StartTime = strings.TrimSpace(in.StartTime)
	r.EndTime = strings.TrimSpace(in.EndTime)
	r.DaysOfWeek = strings.ReplaceAll(in.DaysOfWeek, " ", "")
	if in.IsEnabled != nil {
		r.IsEnabled = *in.IsEnabled
	}

	if r.Title == "" {
		return invalid("title is required")
	}
	if r.WaterAmountMl < 0 {
		return invalid("water_amount_ml must not be negative")
	}
	if r.Type != models.ReminderTypeWater {
		r.WaterAmountMl = 0
	}
	if err := scheduler.Validate(*r); err != nil {
		return invalid("%v", err)
	}
	return nil
}

func (s *ReminderService) Create(ctx context.Context, uid string, in ReminderInput) (*models.Reminder, error) {
	r := &models.Reminder{UID: uid, IsEnabled: true}
	if err := in.apply(r); err != nil {
		return nil, err
	}
	next, err := s.sched.Next(*r, s.now())
	if err != nil {
		return nil, invalid("%v", err)
	}
	r.NextTriggerAt = next
	if err := s.reminders.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReminderService) Get(ctx context.Context, uid string, id uint) (*models.Reminder, error) {
	return s.reminders.Get(ctx, uid, id)
}

func (s *ReminderService) List(ctx context.Context, uid string) ([]models.Reminder, error) {
	return s.reminders.ListByUser(ctx, uid)
}

// Update replaces the schedule and re-arms the reminder from now.
func (s *ReminderService) Update(ctx context.Context, uid string, id uint, in ReminderInput) (*models.Reminder, error) {
	r, err := s.reminders.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(r); err != nil {
		return nil, err
	}
	now := s.now()
	if r.NextTriggerAt, err = s.sched.Next(*r, now); err != nil {
		return nil, invalid("%v", err)
	}
	r.UpdatedAt = now
	if err := s.reminders.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Toggle enables (arming the next slot) or disables (clearing it) a reminder.
func (s *ReminderService) Toggle(ctx context.Context, uid string, id uint, enabled bool) (*models.Reminder, error) {
	r, err := s.reminders.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	r.IsEnabled = enabled
	next, err := s.sched.Next(*r, s.now())
	if err != nil {
		return nil, invalid("%v", err)
	}
	if err := s.reminders.SetEnabled(ctx, uid, id, enabled, next); err != nil {
		return nil, err
	}
	r.NextTriggerAt = next
	return r, nil
}

func (s *ReminderService) Delete(ctx context.Context, uid string, id uint) error {
	return s.reminders.Delete(ctx, uid, id)
}
