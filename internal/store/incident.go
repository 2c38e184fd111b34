package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

// IncidentStore owns the incident lifecycle: incidents start as
// investigating, advance through appended updates, and end at resolved.
// There is no delete; a resolved incident stays on the record.
type IncidentStore struct {
	db *gorm.DB
}

func NewIncidentStore(db *gorm.DB) *IncidentStore {
	return &IncidentStore{db: db}
}

// AffectedService is a linked service annotated with the impact the link
// carries, which may differ from the incident's overall impact.
type AffectedService struct {
	models.Service
	Impact models.Impact `json:"impact"`
}

// IncidentSummary is the list-view shape: the incident, its affected
// services, and only the most recent narrative entry.
type IncidentSummary struct {
	models.Incident
	Services     []AffectedService      `json:"services"`
	LatestUpdate *models.IncidentUpdate `json:"latestUpdate"`
}

// IncidentDetail is the detail-view shape with the full update history,
// newest first.
type IncidentDetail struct {
	models.Incident
	Services []AffectedService       `json:"services"`
	Updates  []models.IncidentUpdate `json:"updates"`
}

type CreateIncidentParams struct {
	Title       string
	Description string
	Impact      models.Impact
	ServiceIDs  []uint
}

type AppendIncidentUpdateParams struct {
	Title       string
	Description string
	Status      models.IncidentStatus
}

type UpdateIncidentParams struct {
	Title       *string
	Description *string
	Status      *models.IncidentStatus
	Impact      *models.Impact
}

const initialIncidentDescription = "We are investigating this incident."

// Create inserts the incident, one link row per affected service carrying
// the incident's impact, and the synthetic "Incident Created" narrative
// entry, all in one transaction so a failed step leaves nothing behind.
func (s *IncidentStore) Create(ctx context.Context, p CreateIncidentParams) (*models.Incident, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, validationErr("title is required")
	}

	impact := p.Impact
	if impact == "" {
		impact = models.ImpactMinor
	}
	if !impact.IsValid() {
		return nil, validationErr("invalid impact")
	}

	incident := models.Incident{
		Title:       p.Title,
		Description: p.Description,
		Status:      models.IncidentInvestigating,
		Impact:      impact,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&incident).Error; err != nil {
			return err
		}

		for _, serviceID := range p.ServiceIDs {
			link := models.IncidentService{
				IncidentID: incident.ID,
				ServiceID:  serviceID,
				Impact:     impact,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		description := p.Description
		if description == "" {
			description = initialIncidentDescription
		}

		initial := models.IncidentUpdate{
			IncidentID:  incident.ID,
			Title:       "Incident Created",
			Description: description,
			Status:      models.IncidentInvestigating,
		}

		return tx.Create(&initial).Error
	})
	if err != nil {
		return nil, err
	}

	return &incident, nil
}

// AppendUpdate inserts a narrative entry and moves the parent incident to
// the entry's status. This is the canonical status-mutation path: the
// incident's status always mirrors its most recent update. Transitioning
// to resolved stamps ResolvedAt; no other status touches it.
func (s *IncidentStore) AppendUpdate(ctx context.Context, incidentID uint, p AppendIncidentUpdateParams) (*models.IncidentUpdate, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, validationErr("title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, validationErr("description is required")
	}
	if !p.Status.IsValid() {
		return nil, validationErr("invalid incident status")
	}

	var incident models.Incident

	if err := s.db.WithContext(ctx).First(&incident, incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	update := models.IncidentUpdate{
		IncidentID:  incidentID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":     p.Status,
			"updated_at": time.Now(),
		}
		if p.Status == models.IncidentResolved {
			updates["resolved_at"] = time.Now()
		}

		return tx.Model(&incident).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &update, nil
}

// Update edits incident fields directly, bypassing the narrative log.
// A status change through this path stamps ResolvedAt like AppendUpdate
// does but records no update row; operators are expected to narrate
// through AppendUpdate and reserve this for corrections.
func (s *IncidentStore) Update(ctx context.Context, incidentID uint, p UpdateIncidentParams) (*models.Incident, error) {
	var incident models.Incident

	if err := s.db.WithContext(ctx).First(&incident, incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return nil, validationErr("title is required")
		}
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, validationErr("invalid incident status")
		}
		updates["status"] = *p.Status
		if *p.Status == models.IncidentResolved {
			updates["resolved_at"] = time.Now()
		}
	}
	if p.Impact != nil {
		if !p.Impact.IsValid() {
			return nil, validationErr("invalid impact")
		}
		updates["impact"] = *p.Impact
	}

	if err := s.db.WithContext(ctx).Model(&incident).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&incident, incidentID).Error; err != nil {
		return nil, err
	}

	return &incident, nil
}

func (s *IncidentStore) Get(ctx context.Context, incidentID uint) (*IncidentDetail, error) {
	var incident models.Incident

	if err := s.db.WithContext(ctx).First(&incident, incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	services, err := s.affectedServices(ctx, incidentID)
	if err != nil {
		return nil, err
	}

	updates, err := s.ListUpdates(ctx, incidentID)
	if err != nil {
		return nil, err
	}

	return &IncidentDetail{Incident: incident, Services: services, Updates: updates}, nil
}

// List returns all incidents newest first, each with its affected services
// and latest update only. Full histories are fetched per incident.
func (s *IncidentStore) List(ctx context.Context) ([]IncidentSummary, error) {
	var incidents []models.Incident

	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&incidents).Error; err != nil {
		return nil, err
	}

	summaries := make([]IncidentSummary, 0, len(incidents))

	for _, incident := range incidents {
		services, err := s.affectedServices(ctx, incident.ID)
		if err != nil {
			return nil, err
		}

		var latest models.IncidentUpdate
		var latestUpdate *models.IncidentUpdate

		err = s.db.WithContext(ctx).
			Where("incident_id = ?", incident.ID).
			Order("created_at DESC").
			First(&latest).Error
		if err == nil {
			latestUpdate = &latest
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		summaries = append(summaries, IncidentSummary{
			Incident:     incident,
			Services:     services,
			LatestUpdate: latestUpdate,
		})
	}

	return summaries, nil
}

// ListUpdates returns the narrative log newest first.
func (s *IncidentStore) ListUpdates(ctx context.Context, incidentID uint) ([]models.IncidentUpdate, error) {
	if err := s.db.WithContext(ctx).First(&models.Incident{}, incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var updates []models.IncidentUpdate

	if err := s.db.WithContext(ctx).
		Where("incident_id = ?", incidentID).
		Order("created_at DESC").
		Find(&updates).Error; err != nil {
		return nil, err
	}

	return updates, nil
}

func (s *IncidentStore) affectedServices(ctx context.Context, incidentID uint) ([]AffectedService, error) {
	var links []models.IncidentService

	if err := s.db.WithContext(ctx).
		Preload("Service").
		Where("incident_id = ?", incidentID).
		Find(&links).Error; err != nil {
		return nil, err
	}

	services := make([]AffectedService, 0, len(links))
	for _, link := range links {
		services = append(services, AffectedService{Service: link.Service, Impact: link.Impact})
	}

	return services, nil
}
