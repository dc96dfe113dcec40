package services

import (
	"context"
	"testing"

	"github.com/totomace/VitaZen-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSnapshotMergesAndRecords(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t, "u1")
	svc := NewHealthService(repos)
	svc.now = fixedClock(monday)

	snap, rec, err := svc.UpdateSnapshot(ctx, "u1", SnapshotInput{Weight: 70, Height: 175, HeartRate: 64})
	require.NoError(t, err)
	assert.Equal(t, 70.0, snap.Weight)
	assert.True(t, monday.Equal(rec.Timestamp))

	snap, _, err = svc.UpdateSnapshot(ctx, "u1", SnapshotInput{Weight: 68, Steps: 4000})
	require.NoError(t, err)
	assert.Equal(t, 68.0, snap.Weight)
	assert.Equal(t, 175.0, snap.Height, "unmeasured fields keep the previous value")
	assert.Equal(t, 64, snap.HeartRate)

	recs, err := svc.ListHistory(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	log, err := repos.History.ListByType(ctx, "u1", models.HistoryTypeHealth)
	require.NoError(t, err)
	require.Len(t, log, 2)
	descs := []string{log[0].Description, log[1].Description}
	assert.Contains(t, descs, "weight 68.0 kg, 4000 steps")

	bmi, err := svc.BMI(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 22.2, bmi.Value)
	assert.Equal(t, "22.2 (Normal weight)", bmi.Display)
}

func TestUpdateSnapshotValidates(t *testing.T) {
	svc := NewHealthService(newRepos(t, "u1"))
	ctx := context.Background()

	for _, in := range []SnapshotInput{
		{},
		{Weight: -1},
		{HeartRate: 400},
		{SleepHours: 25},
		{BloodPressure: "80/120"},
		{BloodPressure: "high"},
	} {
		_, _, err := svc.UpdateSnapshot(ctx, "u1", in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}

	_, _, err := svc.UpdateSnapshot(ctx, "u1", SnapshotInput{BloodPressure: "120/80"})
	assert.NoError(t, err)
}

func TestHealthRecordOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewHealthService(newRepos(t, "u1", "u2"))

	_, rec, err := svc.UpdateSnapshot(ctx, "u1", SnapshotInput{Weight: 70})
	require.NoError(t, err)

	_, err = svc.GetRecord(ctx, "u2", rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.UpdateRecord(ctx, "u2", rec.ID, SnapshotInput{Weight: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.UpdateRecord(ctx, "u1", rec.ID, SnapshotInput{Weight: 71, Notes: " after run "})
	require.NoError(t, err)
	assert.Equal(t, "after run", updated.Notes)

	require.NoError(t, svc.DeleteRecord(ctx, "u1", rec.ID))
	assert.ErrorIs(t, svc.DeleteRecord(ctx, "u1", rec.ID), ErrNotFound)
}

func TestBMIWithoutSnapshot(t *testing.T) {
	svc := NewHealthService(newRepos(t, "u1"))
	_, err := svc.BMI(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}
