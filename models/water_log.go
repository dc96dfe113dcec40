package models

import "time"

// WaterLog accumulates the water drunk on one local day.
type WaterLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UID      string    `gorm:"uniqueIndex:idx_water_day;size:36;not null" json:"uid"`
	Date     time.Time `gorm:"uniqueIndex:idx_water_day;not null" json:"date"` // local midnight
	AmountMl int       `json:"amount_ml"`
}
