package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

// A slot lease outlives a few ticks so a crashed owner only delays the
// slot until another sweep can claim it.
const (
	leaseTicks  = 5
	minLeaseTTL = time.Minute
)

// Deliverer posts the notification for one fired reminder slot.
type Deliverer interface {
	Deliver(ctx context.Context, r models.Reminder, slot time.Time) error
}

type Scheduler struct {
	reminders *repositories.ReminderRepository
	deliverer Deliverer
	leases    Leaser
	loc       *time.Location
	tick      time.Duration
	leaseTTL  time.Duration
	now       func() time.Time
}

func New(reminders *repositories.ReminderRepository, d Deliverer, leases Leaser, loc *time.Location, tick time.Duration) *Scheduler {
	if leases == nil {
		leases = NewMemoryLeaser()
	}
	if loc == nil {
		loc = time.Local
	}
	if tick <= 0 {
		tick = 30 * time.Second
	}
	return &Scheduler{
		reminders: reminders,
		deliverer: d,
		leases:    leases,
		loc:       loc,
		tick:      tick,
		leaseTTL:  max(leaseTicks*tick, minLeaseTTL),
		now:       time.Now,
	}
}

func (s *Scheduler) Location() *time.Location { return s.loc }

// Next computes the next trigger of r after now, in UTC; nil for disabled reminders.
func (s *Scheduler) Next(r models.Reminder, now time.Time) (*time.Time, error) {
	if !r.IsEnabled {
		return nil, nil
	}
	t, err := NextTrigger(r, now, s.loc)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// SweepResult summarises one pass over due reminders.
type SweepResult struct {
	Due       int `json:"due"`
	Delivered int `json:"delivered"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Sweep delivers every reminder whose next trigger is at or before now and
// schedules its following slot. Slots missed while nothing was sweeping
// collapse into a single delivery.
func (s *Scheduler) Sweep(ctx context.Context, now time.Time) (SweepResult, error) {
	var res SweepResult
	due, err := s.reminders.ListDue(ctx, now)
	if err != nil {
		return res, fmt.Errorf("list due reminders: %w", err)
	}
	res.Due = len(due)

	for _, r := range due {
		slot := *r.NextTriggerAt
		key := fmt.Sprintf("vitazen:reminder:%d:%d", r.ID, slot.Unix())
		claimed, err := s.leases.Claim(ctx, key, s.leaseTTL)
		if err != nil {
			utils.LogError("reminder %d: lease failed: %v", r.ID, err)
			res.Failed++
			continue
		}
		if !claimed {
			res.Skipped++
			continue
		}

		var fired *time.Time
		if err := s.deliverer.Deliver(ctx, r, slot); err != nil {
			utils.LogError("reminder %d: delivery failed: %v", r.ID, err)
			res.Failed++
		} else {
			fired = &slot
			res.Delivered++
		}

		next, err := s.Next(r, now)
		if err != nil {
			// Stored schedule is broken; stop firing it until the user edits it.
			utils.LogError("reminder %d: %v", r.ID, err)
			next = nil
		}
		advanced, err := s.reminders.AdvanceTrigger(ctx, r.ID, slot, next, fired)
		if err != nil {
			return res, fmt.Errorf("reminder %d: store next trigger: %w", r.ID, err)
		}
		if !advanced {
			utils.LogDebug("reminder %d: slot %s already moved by another sweep", r.ID, slot.Format(time.RFC3339))
		}
	}
	return res, nil
}

// Rearm recomputes the next trigger of every reminder from now, the way a
// device re-registers its alarms after a reboot. Disabled reminders are cleared.
func (s *Scheduler) Rearm(ctx context.Context, now time.Time) (int, error) {
	all, err := s.reminders.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reminders: %w", err)
	}
	armed := 0
	for _, r := range all {
		next, err := s.Next(r, now)
		if err != nil {
			utils.LogError("reminder %d: cannot re-arm: %v", r.ID, err)
		}
		if err := s.reminders.SetNextTrigger(ctx, r.ID, next); err != nil {
			return armed, fmt.Errorf("reminder %d: store next trigger: %w", r.ID, err)
		}
		if next != nil {
			armed++
		}
	}
	return armed, nil
}

// Run re-arms once, then sweeps on every tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	armed, err := s.Rearm(ctx, s.now())
	if err != nil {
		return err
	}
	utils.LogSuccess("reminder scheduler armed %d reminders, sweeping every %s", armed, s.tick)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res, err := s.Sweep(ctx, s.now())
			if err != nil {
				utils.LogError("reminder sweep: %v", err)
				continue
			}
			if res.Due > 0 {
				utils.LogInfo("reminder sweep: due=%d delivered=%d skipped=%d failed=%d",
					res.Due, res.Delivered, res.Skipped, res.Failed)
			}
		}
	}
}
