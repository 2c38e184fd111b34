package models

import "time"

type Incident struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `json:"description"`
	Status      IncidentStatus `gorm:"type:varchar(32);not null;default:investigating" json:"status"`
	Impact      Impact         `gorm:"type:varchar(32);not null;default:minor" json:"impact"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	// ResolvedAt is stamped when the incident transitions to resolved and
	// is never cleared afterwards.
	ResolvedAt *time.Time `json:"resolvedAt"`

	// Relationships
	Updates  []IncidentUpdate  `gorm:"foreignKey:IncidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Services []IncidentService `gorm:"foreignKey:IncidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IncidentUpdate is one entry of an incident's append-only narrative log.
// Rows are immutable once created; the parent incident's status always
// mirrors the most recent one.
type IncidentUpdate struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	IncidentID  uint           `gorm:"not null;index" json:"incidentId"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Status      IncidentStatus `gorm:"type:varchar(32);not null" json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// IncidentService links an incident to an affected service. Each link
// carries its own impact, independent of the incident's overall impact.
type IncidentService struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	IncidentID uint      `gorm:"not null;index" json:"incidentId"`
	ServiceID  uint      `gorm:"not null;index" json:"serviceId"`
	Impact     Impact    `gorm:"type:varchar(32);not null;default:minor" json:"impact"`
	CreatedAt  time.Time `json:"createdAt"`

	Service Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
