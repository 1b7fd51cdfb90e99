package models

import "time"

// WebSession persists the identity triple of a browser session server side.
type WebSession struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Token     string    `gorm:"type:text;not null"`
	Role      string    `gorm:"size:20;not null"`
	UserID    string    `gorm:"size:20;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
