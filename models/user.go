package models

import (
	"time"
)

// User is the account record. UID is generated on registration and owns
// every other row in the database.
type User struct {
	UID            string     `gorm:"primaryKey;size:36" json:"uid"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Username       string     `gorm:"size:64" json:"username"`
	Password       string     `gorm:"not null" json:"-"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	ResetToken     string     `gorm:"index;size:16" json:"-"`
	ResetTokenExp  time.Time  `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}
