package models

import "time"

type Service struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `json:"description"`
	Status      ServiceStatus `gorm:"type:varchar(32);not null;default:operational" json:"status"`
	URL         string        `gorm:"size:500" json:"url"`
	Order       int           `gorm:"not null;default:0" json:"order"`
	IsVisible   bool          `gorm:"not null;default:true" json:"isVisible"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Relationships
	Components []Component `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"components,omitempty"`
}
