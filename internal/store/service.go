package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

// ServiceStore persists services and their components.
type ServiceStore struct {
	db *gorm.DB
}

func NewServiceStore(db *gorm.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

type CreateServiceParams struct {
	Name        string
	Description string
	Status      models.ServiceStatus
	URL         string
	Order       int
	IsVisible   bool
}

type UpdateServiceParams struct {
	Name        *string
	Description *string
	Status      *models.ServiceStatus
	URL         *string
	Order       *int
	IsVisible   *bool
}

func (s *ServiceStore) Create(ctx context.Context, p CreateServiceParams) (*models.Service, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, validationErr("name is required")
	}

	status := p.Status
	if status == "" {
		status = models.StatusOperational
	}
	if !status.IsValid() {
		return nil, validationErr("invalid service status")
	}

	service := models.Service{
		Name:        p.Name,
		Description: p.Description,
		Status:      status,
		URL:         p.URL,
		Order:       p.Order,
		IsVisible:   p.IsVisible,
	}

	if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *ServiceStore) Get(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service

	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &service, nil
}

// List returns all services ordered for display, each carrying its
// visible components. Components are fetched per service; entity counts
// stay in the tens so the extra round trips are acceptable.
func (s *ServiceStore) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service

	if err := s.db.WithContext(ctx).
		Order(`"order", name`).
		Find(&services).Error; err != nil {
		return nil, err
	}

	for i := range services {
		var components []models.Component
		if err := s.db.WithContext(ctx).
			Where("service_id = ? AND is_visible = ?", services[i].ID, true).
			Order(`"order", name`).
			Find(&components).Error; err != nil {
			return nil, err
		}
		services[i].Components = components
	}

	return services, nil
}

// ListVisible returns the visible services the public page aggregates over.
func (s *ServiceStore) ListVisible(ctx context.Context) ([]models.Service, error) {
	var services []models.Service

	if err := s.db.WithContext(ctx).
		Where("is_visible = ?", true).
		Order(`"order", name`).
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (s *ServiceStore) Update(ctx context.Context, id uint, p UpdateServiceParams) (*models.Service, error) {
	service, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}

	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, validationErr("name is required")
		}
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, validationErr("invalid service status")
		}
		updates["status"] = *p.Status
	}
	if p.URL != nil {
		updates["url"] = *p.URL
	}
	if p.Order != nil {
		updates["order"] = *p.Order
	}
	if p.IsVisible != nil {
		updates["is_visible"] = *p.IsVisible
	}

	if err := s.db.WithContext(ctx).Model(service).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes a service together with its components and any incident
// or maintenance links referencing it. Past incidents silently lose the
// association; that trade-off is accepted.
func (s *ServiceStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service models.Service

		if err := tx.First(&service, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("service_id = ?", id).Delete(&models.Component{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&models.IncidentService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&models.MaintenanceService{}).Error; err != nil {
			return err
		}

		return tx.Delete(&service).Error
	})
}

type CreateComponentParams struct {
	Name        string
	Description string
	Status      models.ServiceStatus
	Order       int
	IsVisible   bool
}

type UpdateComponentParams struct {
	Name        *string
	Description *string
	Status      *models.ServiceStatus
	Order       *int
	IsVisible   *bool
}

func (s *ServiceStore) ListComponents(ctx context.Context, serviceID uint) ([]models.Component, error) {
	if _, err := s.Get(ctx, serviceID); err != nil {
		return nil, err
	}

	var components []models.Component

	if err := s.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order(`"order", name`).
		Find(&components).Error; err != nil {
		return nil, err
	}

	return components, nil
}

func (s *ServiceStore) CreateComponent(ctx context.Context, serviceID uint, p CreateComponentParams) (*models.Component, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, validationErr("name is required")
	}

	status := p.Status
	if status == "" {
		status = models.StatusOperational
	}
	if !status.IsValid() {
		return nil, validationErr("invalid component status")
	}

	if _, err := s.Get(ctx, serviceID); err != nil {
		return nil, err
	}

	component := models.Component{
		ServiceID:   serviceID,
		Name:        p.Name,
		Description: p.Description,
		Status:      status,
		Order:       p.Order,
		IsVisible:   p.IsVisible,
	}

	if err := s.db.WithContext(ctx).Create(&component).Error; err != nil {
		return nil, err
	}

	return &component, nil
}

func (s *ServiceStore) GetComponent(ctx context.Context, serviceID, componentID uint) (*models.Component, error) {
	var component models.Component

	if err := s.db.WithContext(ctx).
		Where("id = ? AND service_id = ?", componentID, serviceID).
		First(&component).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &component, nil
}

func (s *ServiceStore) UpdateComponent(ctx context.Context, serviceID, componentID uint, p UpdateComponentParams) (*models.Component, error) {
	component, err := s.GetComponent(ctx, serviceID, componentID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}

	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, validationErr("name is required")
		}
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, validationErr("invalid component status")
		}
		updates["status"] = *p.Status
	}
	if p.Order != nil {
		updates["order"] = *p.Order
	}
	if p.IsVisible != nil {
		updates["is_visible"] = *p.IsVisible
	}

	if err := s.db.WithContext(ctx).Model(component).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetComponent(ctx, serviceID, componentID)
}

func (s *ServiceStore) DeleteComponent(ctx context.Context, serviceID, componentID uint) error {
	component, err := s.GetComponent(ctx, serviceID, componentID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(component).Error
}
