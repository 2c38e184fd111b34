package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

// MaintenanceStore owns the maintenance-window lifecycle: windows are
// scheduled, move to in_progress and on to completed or cancelled, and may
// be hard-deleted. Actual start/end timestamps are stamped by the status
// transitions, not by the clock.
type MaintenanceStore struct {
	db *gorm.DB
}

func NewMaintenanceStore(db *gorm.DB) *MaintenanceStore {
	return &MaintenanceStore{db: db}
}

// MaintenanceSummary is the list-view shape: the window, its affected
// services, and the most recent narrative entry.
type MaintenanceSummary struct {
	models.ScheduledMaintenance
	Services     []AffectedService         `json:"services"`
	LatestUpdate *models.MaintenanceUpdate `json:"latestUpdate"`
}

// MaintenanceDetail adds the full update history, newest first.
type MaintenanceDetail struct {
	models.ScheduledMaintenance
	Services     []AffectedService          `json:"services"`
	Updates      []models.MaintenanceUpdate `json:"updates"`
	LatestUpdate *models.MaintenanceUpdate  `json:"latestUpdate"`
}

type CreateMaintenanceParams struct {
	Title              string
	Description        string
	Impact             models.Impact
	ScheduledStartTime time.Time
	ScheduledEndTime   time.Time
	ServiceIDs         []uint
}

type AppendMaintenanceUpdateParams struct {
	Title       string
	Description string
	Status      models.MaintenanceStatus
}

type UpdateMaintenanceParams struct {
	Title              *string
	Description        *string
	Status             *models.MaintenanceStatus
	Impact             *models.Impact
	ScheduledStartTime *time.Time
	ScheduledEndTime   *time.Time
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
}

type ListMaintenanceParams struct {
	Status *models.MaintenanceStatus
	// Upcoming keeps only windows that have not started yet or are
	// currently in progress; the public page uses this filter.
	Upcoming bool
}

// Create inserts the window, its service links, and the synthetic
// "Maintenance Scheduled" entry in one transaction. Both scheduled times
// are required and the start must precede the end.
func (s *MaintenanceStore) Create(ctx context.Context, p CreateMaintenanceParams) (*models.ScheduledMaintenance, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, validationErr("title is required")
	}
	if p.ScheduledStartTime.IsZero() || p.ScheduledEndTime.IsZero() {
		return nil, validationErr("scheduled start time and scheduled end time are required")
	}
	if !p.ScheduledStartTime.Before(p.ScheduledEndTime) {
		return nil, validationErr("scheduled start time must be before scheduled end time")
	}

	impact := p.Impact
	if impact == "" {
		impact = models.ImpactMinor
	}
	if !impact.IsValid() {
		return nil, validationErr("invalid impact")
	}

	maintenance := models.ScheduledMaintenance{
		Title:              p.Title,
		Description:        p.Description,
		Status:             models.MaintenanceScheduled,
		Impact:             impact,
		ScheduledStartTime: p.ScheduledStartTime,
		ScheduledEndTime:   p.ScheduledEndTime,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&maintenance).Error; err != nil {
			return err
		}

		for _, serviceID := range p.ServiceIDs {
			link := models.MaintenanceService{
				MaintenanceID: maintenance.ID,
				ServiceID:     serviceID,
				Impact:        impact,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		description := p.Description
		if description == "" {
			description = fmt.Sprintf("Scheduled maintenance: %s", p.Title)
		}

		initial := models.MaintenanceUpdate{
			MaintenanceID: maintenance.ID,
			Title:         "Maintenance Scheduled",
			Description:   description,
			Status:        models.MaintenanceScheduled,
		}

		return tx.Create(&initial).Error
	})
	if err != nil {
		return nil, err
	}

	return &maintenance, nil
}

// AppendUpdate inserts a narrative entry and moves the window to the
// entry's status. The first transition to in_progress stamps
// ActualStartTime; any transition to completed stamps ActualEndTime, even
// when the window never reported an actual start.
func (s *MaintenanceStore) AppendUpdate(ctx context.Context, maintenanceID uint, p AppendMaintenanceUpdateParams) (*models.MaintenanceUpdate, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, validationErr("title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, validationErr("description is required")
	}
	if !p.Status.IsValid() {
		return nil, validationErr("invalid maintenance status")
	}

	var maintenance models.ScheduledMaintenance

	if err := s.db.WithContext(ctx).First(&maintenance, maintenanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	update := models.MaintenanceUpdate{
		MaintenanceID: maintenanceID,
		Title:         p.Title,
		Description:   p.Description,
		Status:        p.Status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":     p.Status,
			"updated_at": time.Now(),
		}
		if p.Status == models.MaintenanceInProgress && maintenance.ActualStartTime == nil {
			updates["actual_start_time"] = time.Now()
		}
		if p.Status == models.MaintenanceCompleted {
			updates["actual_end_time"] = time.Now()
		}

		return tx.Model(&maintenance).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &update, nil
}

// Update edits window fields directly, including all four timestamps,
// bypassing the narrative log. Unlike AppendUpdate it stamps no actual
// times on a status change; the caller sets them explicitly.
func (s *MaintenanceStore) Update(ctx context.Context, maintenanceID uint, p UpdateMaintenanceParams) (*models.ScheduledMaintenance, error) {
	var maintenance models.ScheduledMaintenance

	if err := s.db.WithContext(ctx).First(&maintenance, maintenanceID).Error; err != nil {
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
			return nil, validationErr("invalid maintenance status")
		}
		updates["status"] = *p.Status
	}
	if p.Impact != nil {
		if !p.Impact.IsValid() {
			return nil, validationErr("invalid impact")
		}
		updates["impact"] = *p.Impact
	}
	if p.ScheduledStartTime != nil {
		updates["scheduled_start_time"] = *p.ScheduledStartTime
	}
	if p.ScheduledEndTime != nil {
		updates["scheduled_end_time"] = *p.ScheduledEndTime
	}
	if p.ActualStartTime != nil {
		updates["actual_start_time"] = *p.ActualStartTime
	}
	if p.ActualEndTime != nil {
		updates["actual_end_time"] = *p.ActualEndTime
	}

	start := maintenance.ScheduledStartTime
	if p.ScheduledStartTime != nil {
		start = *p.ScheduledStartTime
	}
	end := maintenance.ScheduledEndTime
	if p.ScheduledEndTime != nil {
		end = *p.ScheduledEndTime
	}
	if !start.Before(end) {
		return nil, validationErr("scheduled start time must be before scheduled end time")
	}

	if err := s.db.WithContext(ctx).Model(&maintenance).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&maintenance, maintenanceID).Error; err != nil {
		return nil, err
	}

	return &maintenance, nil
}

// Delete hard-deletes the window together with its updates and links.
func (s *MaintenanceStore) Delete(ctx context.Context, maintenanceID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maintenance models.ScheduledMaintenance

		if err := tx.First(&maintenance, maintenanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("maintenance_id = ?", maintenanceID).Delete(&models.MaintenanceUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("maintenance_id = ?", maintenanceID).Delete(&models.MaintenanceService{}).Error; err != nil {
			return err
		}

		return tx.Delete(&maintenance).Error
	})
}

func (s *MaintenanceStore) Get(ctx context.Context, maintenanceID uint) (*MaintenanceDetail, error) {
	var maintenance models.ScheduledMaintenance

	if err := s.db.WithContext(ctx).First(&maintenance, maintenanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	services, err := s.affectedServices(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}

	updates, err := s.ListUpdates(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}

	detail := &MaintenanceDetail{
		ScheduledMaintenance: maintenance,
		Services:             services,
		Updates:              updates,
	}
	if len(updates) > 0 {
		detail.LatestUpdate = &updates[0]
	}

	return detail, nil
}

// List returns maintenance windows ordered by scheduled start, newest
// first, optionally filtered by status and by the upcoming rule
// (scheduled start still ahead, or currently in progress).
func (s *MaintenanceStore) List(ctx context.Context, p ListMaintenanceParams) ([]MaintenanceSummary, error) {
	query := s.db.WithContext(ctx).Model(&models.ScheduledMaintenance{})

	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, validationErr("invalid maintenance status")
		}
		query = query.Where("status = ?", *p.Status)
	}
	if p.Upcoming {
		query = query.Where("scheduled_start_time >= ? OR status = ?", time.Now(), models.MaintenanceInProgress)
	}

	var maintenances []models.ScheduledMaintenance

	if err := query.Order("scheduled_start_time DESC").Find(&maintenances).Error; err != nil {
		return nil, err
	}

	summaries := make([]MaintenanceSummary, 0, len(maintenances))

	for _, maintenance := range maintenances {
		services, err := s.affectedServices(ctx, maintenance.ID)
		if err != nil {
			return nil, err
		}

		var latest models.MaintenanceUpdate
		var latestUpdate *models.MaintenanceUpdate

		err = s.db.WithContext(ctx).
			Where("maintenance_id = ?", maintenance.ID).
			Order("created_at DESC").
			First(&latest).Error
		if err == nil {
			latestUpdate = &latest
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		summaries = append(summaries, MaintenanceSummary{
			ScheduledMaintenance: maintenance,
			Services:             services,
			LatestUpdate:         latestUpdate,
		})
	}

	return summaries, nil
}

// ListUpdates returns the narrative log newest first.
func (s *MaintenanceStore) ListUpdates(ctx context.Context, maintenanceID uint) ([]models.MaintenanceUpdate, error) {
	if err := s.db.WithContext(ctx).First(&models.ScheduledMaintenance{}, maintenanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var updates []models.MaintenanceUpdate

	if err := s.db.WithContext(ctx).
		Where("maintenance_id = ?", maintenanceID).
		Order("created_at DESC").
		Find(&updates).Error; err != nil {
		return nil, err
	}

	return updates, nil
}

func (s *MaintenanceStore) affectedServices(ctx context.Context, maintenanceID uint) ([]AffectedService, error) {
	var links []models.MaintenanceService

	if err := s.db.WithContext(ctx).
		Preload("Service").
		Where("maintenance_id = ?", maintenanceID).
		Find(&links).Error; err != nil {
		return nil, err
	}

	services := make([]AffectedService, 0, len(links))
	for _, link := range links {
		services = append(services, AffectedService{Service: link.Service, Impact: link.Impact})
	}

	return services, nil
}
