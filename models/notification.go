package models

import "time"

// Notification is a reminder delivery, kept so clients can show an inbox.
type Notification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UID        string    `gorm:"index;size:36" json:"uid"`
	ReminderID uint      `gorm:"index" json:"reminder_id"`
	Type       string    `gorm:"size:16" json:"type"`
	Title      string    `json:"title"`
	Message    string    `gorm:"type:text" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
