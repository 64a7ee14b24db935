package repositories

import (
	"context"
	"errors"

	"costtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// settingRepository implements SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new system setting repository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get gets a setting by key
func (r *settingRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set creates or updates a setting by key
func (r *settingRepository) Set(ctx context.Context, key, value, description string) error {
	var setting models.SystemSetting
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(&models.SystemSetting{
			Key:         key,
			Value:       value,
			Description: description,
		}).Error
	}
	if err != nil {
		return err
	}

	setting.Value = value
	if description != "" {
		setting.Description = description
	}
	return r.db.WithContext(ctx).Save(&setting).Error
}

// List lists all settings
func (r *settingRepository) List(ctx context.Context) ([]*models.SystemSetting, error) {
	var settings []*models.SystemSetting
	err := r.db.WithContext(ctx).Order("`key` ASC").Find(&settings).Error
	return settings, err
}
