package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

// SnapshotInput carries a new measurement. Zero fields are "not measured".
type SnapshotInput struct {
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	HeartRate     int       `json:"heart_rate"`
	BloodPressure string    `json:"blood_pressure"`
	Steps         int       `json:"steps"`
	SleepHours    float64   `json:"sleep_hours"`
	Notes         string    `json:"notes"`
	Timestamp     time.Time `json:"timestamp"`
}

func (in SnapshotInput) validate() error {
	switch {
	case in.Weight < 0 || in.Weight > 500:
		return invalid("weight must be between 0 and 500 kg")
	case in.Height < 0 || in.Height > 300:
		return invalid("height must be between 0 and 300 cm")
	case in.HeartRate < 0 || in.HeartRate > 300:
		return invalid("heart_rate must be between 0 and 300 bpm")
	case in.Steps < 0:
		return invalid("steps must not be negative")
	case in.SleepHours < 0 || in.SleepHours > 24:
		return invalid("sleep_hours must be between 0 and 24")
	}
	if in.BloodPressure != "" {
		var sys, dia int
		if _, err := fmt.Sscanf(in.BloodPressure, "%d/%d", &sys, &dia); err != nil || sys <= dia || dia <= 0 {
			return invalid(`blood_pressure must look like "120/80"`)
		}
	}
	if in.Weight == 0 && in.Height == 0 && in.HeartRate == 0 && in.BloodPressure == "" &&
		in.Steps == 0 && in.SleepHours == 0 && strings.TrimSpace(in.Notes) == "" {
		return invalid("at least one measurement is required")
	}
	return nil
}

type HealthService struct {
	repos *repositories.Repositories
	now   func() time.Time
}

func NewHealthService(repos *repositories.Repositories) *HealthService {
	return &HealthService{repos: repos, now: time.Now}
}

func (s *HealthService) Snapshot(ctx context.Context, uid string) (*models.HealthData, error) {
	return s.repos.HealthData.Get(ctx, uid)
}

// UpdateSnapshot merges the measurement into the latest snapshot, appends a
// history record and an activity log entry.
func (s *HealthService) UpdateSnapshot(ctx context.Context, uid string, in SnapshotInput) (*models.HealthData, *models.HealthHistory, error) {
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	snap, err := s.repos.HealthData.Get(ctx, uid)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, err
		}
		snap = &models.HealthData{UID: uid}
	}
	if in.Weight > 0 {
		snap.Weight = in.Weight
	}
	if in.Height > 0 {
		snap.Height = in.Height
	}
	if in.HeartRate > 0 {
		snap.HeartRate = in.HeartRate
	}
	if err := s.repos.HealthData.Upsert(ctx, snap); err != nil {
		return nil, nil, err
	}

	rec := &models.HealthHistory{
		UID:           uid,
		Weight:        in.Weight,
		Height:        in.Height,
		HeartRate:     in.HeartRate,
		WaterIntake:   snap.WaterIntake,
		BloodPressure: in.BloodPressure,
		Steps:         in.Steps,
		SleepHours:    in.SleepHours,
		Notes:         strings.TrimSpace(in.Notes),
		Timestamp:     in.Timestamp,
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}
	if err := s.repos.HealthHistory.Insert(ctx, rec); err != nil {
		return nil, nil, err
	}

	entry := &models.History{
		UserID:      uid,
		Title:       "Health data updated",
		Description: describe(in),
		Type:        models.HistoryTypeHealth,
		Timestamp:   rec.Timestamp,
	}
	if err := s.repos.History.Insert(ctx, entry); err != nil {
		return nil, nil, err
	}
	return snap, rec, nil
}

func describe(in SnapshotInput) string {
	var parts []string
	if in.Weight > 0 {
		parts = append(parts, fmt.Sprintf("weight %.1f kg", in.Weight))
	}
	if in.Height > 0 {
		parts = append(parts, fmt.Sprintf("height %.0f cm", in.Height))
	}
	if in.HeartRate > 0 {
		parts = append(parts, fmt.Sprintf("heart rate %d bpm", in.HeartRate))
	}
	if in.BloodPressure != "" {
		parts = append(parts, "blood pressure "+in.BloodPressure)
	}
	if in.Steps > 0 {
		parts = append(parts, fmt.Sprintf("%d steps", in.Steps))
	}
	if in.SleepHours > 0 {
		parts = append(parts, fmt.Sprintf("slept %.1f h", in.SleepHours))
	}
	if len(parts) == 0 {
		return "note added"
	}
	return strings.Join(parts, ", ")
}

func (s *HealthService) ListHistory(ctx context.Context, uid string, limit int) ([]models.HealthHistory, error) {
	return s.repos.HealthHistory.ListByUser(ctx, uid, limit)
}

func (s *HealthService) GetRecord(ctx context.Context, uid string, id uint) (*models.HealthHistory, error) {
	return s.repos.HealthHistory.Get(ctx, uid, id)
}

func (s *HealthService) UpdateRecord(ctx context.Context, uid string, id uint, in SnapshotInput) (*models.HealthHistory, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	rec, err := s.repos.HealthHistory.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	rec.Weight = in.Weight
	rec.Height = in.Height
	rec.HeartRate = in.HeartRate
	rec.BloodPressure = in.BloodPressure
	rec.Steps = in.Steps
	rec.SleepHours = in.SleepHours
	rec.Notes = strings.TrimSpace(in.Notes)
	if !in.Timestamp.IsZero() {
		rec.Timestamp = in.Timestamp
	}
	if err := s.repos.HealthHistory.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *HealthService) DeleteRecord(ctx context.Context, uid string, id uint) error {
	return s.repos.HealthHistory.Delete(ctx, uid, id)
}

func (s *HealthService) ClearHistory(ctx context.Context, uid string) error {
	return s.repos.HealthHistory.DeleteByUser(ctx, uid)
}

// BMI derives the body mass index from the latest snapshot.
func (s *HealthService) BMI(ctx context.Context, uid string) (*BMIInfo, error) {
	snap, err := s.repos.HealthData.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	bmi, err := utils.CalculateBMI(snap.Height, snap.Weight)
	if err != nil {
		return nil, invalid("%v", err)
	}
	return &BMIInfo{Value: bmi, Category: utils.BMICategory(bmi), Display: utils.FormatBMI(bmi)}, nil
}
