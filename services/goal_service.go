package services

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

type GoalInput struct {
	WaterMl      int     `json:"water_ml"`
	Steps        int     `json:"steps"`
	SleepHours   float64 `json:"sleep_hours"`
	TargetWeight float64 `json:"target_weight"`
}

type Progress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

type GoalsAndProgress struct {
	Date     string              `json:"date"`
	Goals    *models.DailyGoal   `json:"goals"`
	Progress map[string]Progress `json:"progress"`
}

type GoalService struct {
	repos *repositories.Repositories
	loc   *time.Location
}

func NewGoalService(repos *repositories.Repositories, loc *time.Location) *GoalService {
	if loc == nil {
		loc = time.Local
	}
	return &GoalService{repos: repos, loc: loc}
}

func (s *GoalService) Upsert(ctx context.Context, uid string, in GoalInput) (*models.DailyGoal, error) {
	switch {
	case in.WaterMl < 0 || in.WaterMl > 10000:
		return nil, invalid("water_ml must be between 0 and 10000")
	case in.Steps < 0:
		return nil, invalid("steps must not be negative")
	case in.SleepHours < 0 || in.SleepHours > 24:
		return nil, invalid("sleep_hours must be between 0 and 24")
	case in.TargetWeight < 0 || in.TargetWeight > 500:
		return nil, invalid("target_weight must be between 0 and 500")
	}
	return s.repos.Goals.Upsert(ctx, models.DailyGoal{
		UID:          uid,
		WaterMl:      in.WaterMl,
		Steps:        in.Steps,
		SleepHours:   in.SleepHours,
		TargetWeight: in.TargetWeight,
	})
}

// GoalsAndProgress reports the targets and how far the given day got.
// Steps and sleep come from the day's most recent record carrying them.
func (s *GoalService) GoalsAndProgress(ctx context.Context, uid string, date time.Time) (*GoalsAndProgress, error) {
	goal, err := s.repos.Goals.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	start := utils.DayStart(date, s.loc)
	end := start.AddDate(0, 0, 1)

	water, err := s.repos.Water.GetForDay(ctx, uid, start)
	if err != nil {
		return nil, err
	}
	recs, err := s.repos.HealthHistory.ListBetween(ctx, uid, start, end)
	if err != nil {
		return nil, err
	}
	var steps, sleep, weight float64
	for _, r := range recs { // oldest first, later records win
		if r.Steps > 0 {
			steps = float64(r.Steps)
		}
		if r.SleepHours > 0 {
			sleep = r.SleepHours
		}
		if r.Weight > 0 {
			weight = r.Weight
		}
	}

	return &GoalsAndProgress{
		Date:  start.Format(utils.DateLayout),
		Goals: goal,
		Progress: map[string]Progress{
			"water_ml":    {Consumed: float64(water), Goal: float64(goal.WaterMl), Percent: progress(float64(water), float64(goal.WaterMl))},
			"steps":       {Consumed: steps, Goal: float64(goal.Steps), Percent: progress(steps, float64(goal.Steps))},
			"sleep_hours": {Consumed: sleep, Goal: goal.SleepHours, Percent: progress(sleep, goal.SleepHours)},
			"weight":      {Consumed: weight, Goal: goal.TargetWeight},
		},
	}, nil
}
