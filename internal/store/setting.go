package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

// SettingStore persists the key-value configuration consumed by the
// presentation layer.
type SettingStore struct {
	db *gorm.DB
}

func NewSettingStore(db *gorm.DB) *SettingStore {
	return &SettingStore{db: db}
}

type UpsertSettingParams struct {
	Key         string
	Value       models.SettingValue
	Description string
}

func (s *SettingStore) List(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting

	if err := s.db.WithContext(ctx).Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *SettingStore) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting

	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &setting, nil
}

// Upsert writes one key, replacing the stored value, type, and description
// when the key already exists.
func (s *SettingStore) Upsert(ctx context.Context, p UpsertSettingParams) error {
	if strings.TrimSpace(p.Key) == "" {
		return validationErr("key is required")
	}
	if !p.Value.Type.IsValid() {
		return validationErr("invalid setting type")
	}

	var existing models.Setting

	err := s.db.WithContext(ctx).Where("key = ?", p.Key).First(&existing).Error
	if err == nil {
		return s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"value":       p.Value.Encode(),
			"type":        p.Value.Type,
			"description": p.Description,
			"updated_at":  time.Now(),
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	setting := models.Setting{
		Key:         p.Key,
		Value:       p.Value.Encode(),
		Type:        p.Value.Type,
		Description: p.Description,
	}

	return s.db.WithContext(ctx).Create(&setting).Error
}

// UpsertBatch writes several keys; a validation failure aborts the whole
// batch before any write.
func (s *SettingStore) UpsertBatch(ctx context.Context, batch []UpsertSettingParams) error {
	for _, p := range batch {
		if strings.TrimSpace(p.Key) == "" {
			return validationErr("key is required")
		}
		if !p.Value.Type.IsValid() {
			return validationErr("invalid setting type")
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batchStore := &SettingStore{db: tx}
		for _, p := range batch {
			if err := batchStore.Upsert(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}
