package models

import "time"

const (
	ReminderTypeWater    = "WATER"
	ReminderTypeMedicine = "MEDICINE"
	ReminderTypeCustom   = "CUSTOM"
)

// Reminder fires every IntervalMinutes between StartTime and EndTime ("HH:mm")
// on the listed ISO weekdays ("1,2,3" with 1 = Monday; empty = every day).
type Reminder struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UID             string     `gorm:"index;size:36;not null" json:"uid"`
	Title           string     `gorm:"not null" json:"title"`
	Type            string     `gorm:"size:16;not null" json:"type"`
	IntervalMinutes int        `gorm:"not null" json:"interval_minutes"`
	WaterAmountMl   int        `json:"water_amount_ml"`
	StartTime       string     `gorm:"size:5;not null" json:"start_time"`
	EndTime         string     `gorm:"size:5" json:"end_time"`
	DaysOfWeek      string     `gorm:"size:32" json:"days_of_week"`
	IsEnabled       bool       `gorm:"index" json:"is_enabled"`
	NextTriggerAt   *time.Time `gorm:"index" json:"next_trigger_at,omitempty"`
	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
