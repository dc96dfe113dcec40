package models

import "time"

const (
	HistoryTypeHealth   = "health"
	HistoryTypeWater    = "water"
	HistoryTypeNote     = "note"
	HistoryTypeReminder = "reminder"
)

// History is the generic activity log. Rows go away with their user.
type History struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:20;index" json:"type"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

func (History) TableName() string { return "history" }
