package models

import "time"

// Note is free text pinned to a user-chosen date and time.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	CreatedAt time.Time `json:"created_at"`
}

// At returns the chosen date-time in loc.
func (n Note) At(loc *time.Location) time.Time {
	return time.Date(n.Year, time.Month(n.Month), n.Day, n.Hour, n.Minute, 0, 0, loc)
}
