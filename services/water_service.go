package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

const maxDrinkMl = 5000

type WaterStatus struct {
	Date      string  `json:"date"`
	AmountMl  int     `json:"amount_ml"`
	GoalMl    int     `json:"goal_ml"`
	Percent   float64 `json:"percent"`
	Formatted string  `json:"formatted"`
}

type WaterService struct {
	repos *repositories.Repositories
	loc   *time.Location
	now   func() time.Time
}

func NewWaterService(repos *repositories.Repositories, loc *time.Location) *WaterService {
	if loc == nil {
		loc = time.Local
	}
	return &WaterService{repos: repos, loc: loc, now: time.Now}
}

// Drink adds amountMl to today's total, mirrors it into the health snapshot
// and records the activity.
func (s *WaterService) Drink(ctx context.Context, uid string, amountMl int) (*WaterStatus, error) {
	if amountMl <= 0 || amountMl > maxDrinkMl {
		return nil, invalid("amount_ml must be between 1 and %d", maxDrinkMl)
	}
	now := s.now()
	day := utils.DayStart(now, s.loc)
	total, err := s.repos.Water.AddForDay(ctx, uid, day, amountMl)
	if err != nil {
		return nil, err
	}

	snap, err := s.repos.HealthData.Get(ctx, uid)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		snap = &models.HealthData{UID: uid}
	}
	snap.WaterIntake = total
	if err := s.repos.HealthData.Upsert(ctx, snap); err != nil {
		return nil, err
	}

	if err := s.repos.History.Insert(ctx, &models.History{
		UserID:      uid,
		Title:       "Water intake",
		Description: fmt.Sprintf("Drank %s (today %s)", utils.FormatWater(amountMl), utils.FormatWater(total)),
		Type:        models.HistoryTypeWater,
		Timestamp:   now,
	}); err != nil {
		return nil, err
	}
	return s.status(ctx, uid, day, total)
}

func (s *WaterService) Today(ctx context.Context, uid string) (*WaterStatus, error) {
	day := utils.DayStart(s.now(), s.loc)
	total, err := s.repos.Water.GetForDay(ctx, uid, day)
	if err != nil {
		return nil, err
	}
	return s.status(ctx, uid, day, total)
}

func (s *WaterService) status(ctx context.Context, uid string, day time.Time, total int) (*WaterStatus, error) {
	goal, err := s.repos.Goals.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &WaterStatus{
		Date:      day.Format(utils.DateLayout),
		AmountMl:  total,
		GoalMl:    goal.WaterMl,
		Percent:   progress(float64(total), float64(goal.WaterMl)),
		Formatted: utils.FormatWater(total),
	}, nil
}

// progress is consumed/target capped at 1; 0 without a target.
func progress(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return round2(p)
}
