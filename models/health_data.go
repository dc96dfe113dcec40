package models

import "time"

// HealthData is the latest snapshot per user.
type HealthData struct {
	UID         string    `gorm:"primaryKey;size:36" json:"uid"`
	Weight      float64   `json:"weight"`       // kg
	Height      float64   `json:"height"`       // cm
	HeartRate   int       `json:"heart_rate"`   // bpm
	WaterIntake int       `json:"water_intake"` // ml, today
	LastUpdate  time.Time `json:"last_update"`
}

func (HealthData) TableName() string { return "health_data" }
