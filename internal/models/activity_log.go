package models

import "time"

type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Role     string `gorm:"size:20;index" json:"role"`
	UserID   *uint  `gorm:"index" json:"user_id"`
	Action   string `gorm:"size:50;not null" json:"action"`
	Outcome  string `gorm:"size:20" json:"outcome"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
