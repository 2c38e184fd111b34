package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

// NotificationStore persists notification channels. Channels are stored
// configuration only; no delivery happens here.
type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

type CreateChannelParams struct {
	Name     string
	Type     string
	Config   datatypes.JSON
	IsActive bool
}

type UpdateChannelParams struct {
	Name     *string
	Type     *string
	Config   datatypes.JSON
	IsActive *bool
}

func validChannelType(t string) bool {
	return t == "webhook" || t == "email"
}

func (s *NotificationStore) List(ctx context.Context) ([]models.NotificationChannel, error) {
	var channels []models.NotificationChannel

	if err := s.db.WithContext(ctx).Order("name").Find(&channels).Error; err != nil {
		return nil, err
	}

	return channels, nil
}

func (s *NotificationStore) Create(ctx context.Context, p CreateChannelParams) (*models.NotificationChannel, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, validationErr("name is required")
	}
	if !validChannelType(p.Type) {
		return nil, validationErr("type must be webhook or email")
	}

	channel := models.NotificationChannel{
		Name:     p.Name,
		Type:     p.Type,
		Config:   p.Config,
		IsActive: p.IsActive,
	}

	if err := s.db.WithContext(ctx).Create(&channel).Error; err != nil {
		return nil, err
	}

	return &channel, nil
}

func (s *NotificationStore) Update(ctx context.Context, id uint, p UpdateChannelParams) (*models.NotificationChannel, error) {
	var channel models.NotificationChannel

	if err := s.db.WithContext(ctx).First(&channel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}

	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, validationErr("name is required")
		}
		updates["name"] = *p.Name
	}
	if p.Type != nil {
		if !validChannelType(*p.Type) {
			return nil, validationErr("type must be webhook or email")
		}
		updates["type"] = *p.Type
	}
	if p.Config != nil {
		updates["config"] = p.Config
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}

	if err := s.db.WithContext(ctx).Model(&channel).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&channel, id).Error; err != nil {
		return nil, err
	}

	return &channel, nil
}

func (s *NotificationStore) Delete(ctx context.Context, id uint) error {
	var channel models.NotificationChannel

	if err := s.db.WithContext(ctx).First(&channel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&channel).Error
}
