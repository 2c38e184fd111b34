package models

import "time"

type ScheduledMaintenance struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	Title              string            `gorm:"size:255;not null" json:"title"`
	Description        string            `json:"description"`
	Status             MaintenanceStatus `gorm:"type:varchar(32);not null;default:scheduled" json:"status"`
	Impact             Impact            `gorm:"type:varchar(32);not null;default:minor" json:"impact"`
	ScheduledStartTime time.Time         `gorm:"not null" json:"scheduledStartTime"`
	ScheduledEndTime   time.Time         `gorm:"not null" json:"scheduledEndTime"`
	// ActualStartTime is stamped on the first transition to in_progress and
	// never overwritten; ActualEndTime is stamped on every transition to
	// completed.
	ActualStartTime *time.Time `json:"actualStartTime"`
	ActualEndTime   *time.Time `json:"actualEndTime"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	// Relationships
	Updates  []MaintenanceUpdate  `gorm:"foreignKey:MaintenanceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Services []MaintenanceService `gorm:"foreignKey:MaintenanceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type MaintenanceUpdate struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	MaintenanceID uint              `gorm:"not null;index" json:"maintenanceId"`
	Title         string            `gorm:"size:255;not null" json:"title"`
	Description   string            `gorm:"not null" json:"description"`
	Status        MaintenanceStatus `gorm:"type:varchar(32);not null" json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type MaintenanceService struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MaintenanceID uint      `gorm:"not null;index" json:"maintenanceId"`
	ServiceID     uint      `gorm:"not null;index" json:"serviceId"`
	Impact        Impact    `gorm:"type:varchar(32);not null;default:minor" json:"impact"`
	CreatedAt     time.Time `json:"createdAt"`

	Service Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
