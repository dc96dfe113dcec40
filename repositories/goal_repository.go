package repositories

import (
	"context"
	"errors"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Get returns a zero goal (not persisted) when the user has none yet.
func (r *GoalRepository) Get(ctx context.Context, uid string) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{UID: uid}, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Upsert(ctx context.Context, in models.DailyGoal) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := r.db.WithContext(ctx).Where("uid = ?", in.UID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = in
		return &goal, r.db.WithContext(ctx).Create(&goal).Error
	}
	if err != nil {
		return nil, err
	}

	goal.WaterMl = in.WaterMl
	goal.Steps = in.Steps
	goal.SleepHours = in.SleepHours
	goal.TargetWeight = in.TargetWeight
	return &goal, r.db.WithContext(ctx).Save(&goal).Error
}
