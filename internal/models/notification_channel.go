package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationChannel stores a webhook or email delivery target. Channels
// are configuration only; nothing in this system dispatches to them.
type NotificationChannel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Type      string         `gorm:"size:50;not null" json:"type"` // "webhook" or "email"
	Config    datatypes.JSON `gorm:"type:jsonb" json:"config"`
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
