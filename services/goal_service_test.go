package services

import (
	"context"
	"testing"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsAndProgress(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t, "u1")
	svc := NewGoalService(repos, time.UTC)

	_, err := svc.Upsert(ctx, "u1", GoalInput{WaterMl: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Upsert(ctx, "u1", GoalInput{SleepHours: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	goal, err := svc.Upsert(ctx, "u1", GoalInput{WaterMl: 2000, Steps: 8000, SleepHours: 8, TargetWeight: 65})
	require.NoError(t, err)
	assert.Equal(t, 8000, goal.Steps)

	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	_, err = repos.Water.AddForDay(ctx, "u1", day, 1000)
	require.NoError(t, err)
	require.NoError(t, repos.HealthHistory.Insert(ctx, &models.HealthHistory{UID: "u1", Steps: 4000, Weight: 70, Timestamp: day.Add(9 * time.Hour)}))
	require.NoError(t, repos.HealthHistory.Insert(ctx, &models.HealthHistory{UID: "u1", Steps: 9000, SleepHours: 6, Timestamp: day.Add(21 * time.Hour)}))
	require.NoError(t, repos.HealthHistory.Insert(ctx, &models.HealthHistory{UID: "u1", Steps: 100, Timestamp: day.AddDate(0, 0, 1)}))

	out, err := svc.GoalsAndProgress(ctx, "u1", day.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", out.Date)
	assert.Equal(t, Progress{Consumed: 1000, Goal: 2000, Percent: 0.5}, out.Progress["water_ml"])
	assert.Equal(t, Progress{Consumed: 9000, Goal: 8000, Percent: 1}, out.Progress["steps"])
	assert.Equal(t, Progress{Consumed: 6, Goal: 8, Percent: 0.75}, out.Progress["sleep_hours"])
	assert.Equal(t, Progress{Consumed: 70, Goal: 65}, out.Progress["weight"])
}

func TestGoalsDefaultToZero(t *testing.T) {
	svc := NewGoalService(newRepos(t, "u1"), time.UTC)
	out, err := svc.GoalsAndProgress(context.Background(), "u1", monday)
	require.NoError(t, err)
	assert.Zero(t, out.Goals.WaterMl)
	assert.Zero(t, out.Progress["water_ml"].Percent)
}
