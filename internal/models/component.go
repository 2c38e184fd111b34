package models

import "time"

// Component is a sub-part of a service, cascade-deleted with it.
type Component struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	ServiceID   uint          `gorm:"not null;index" json:"serviceId"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `json:"description"`
	Status      ServiceStatus `gorm:"type:varchar(32);not null;default:operational" json:"status"`
	Order       int           `gorm:"not null;default:0" json:"order"`
	IsVisible   bool          `gorm:"not null;default:true" json:"isVisible"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
