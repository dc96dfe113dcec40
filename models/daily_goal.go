package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily targets.
type DailyGoal struct {
	gorm.Model
	UID          string  `gorm:"uniqueIndex;size:36;not null" json:"uid"`
	WaterMl      int     `json:"water_ml"`      // e.g. 2000 ml
	Steps        int     `json:"steps"`         // e.g. 8000
	SleepHours   float64 `json:"sleep_hours"`   // e.g. 8
	TargetWeight float64 `json:"target_weight"` // kg
}
