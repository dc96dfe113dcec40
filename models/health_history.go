package models

import "time"

// HealthHistory is a point-in-time measurement. Zero values mean "not recorded".
type HealthHistory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UID           string    `gorm:"index;size:36;not null" json:"uid"`
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	HeartRate     int       `json:"heart_rate"`
	WaterIntake   int       `json:"water_intake"`
	BloodPressure string    `gorm:"size:16" json:"blood_pressure,omitempty"` // "120/80"
	Steps         int       `json:"steps"`
	SleepHours    float64   `json:"sleep_hours"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	Timestamp     time.Time `gorm:"index;not null" json:"timestamp"`
}

func (HealthHistory) TableName() string { return "health_history" }
