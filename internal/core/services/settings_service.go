package services

import (
	"context"
	"errors"

	"costtrack/internal/adapters/persistence/models"
	"costtrack/internal/adapters/persistence/repositories"
	"costtrack/internal/core/validation"

	"gorm.io/gorm"
)

// SettingDefaultLanguage is the system setting key for the fallback language
const SettingDefaultLanguage = "default_language"

// SettingsService handles system settings and the language allow-list
type SettingsService struct {
	settingRepo repositories.SettingRepository
	userRepo    repositories.UserRepository
	allowed     []string
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingRepo repositories.SettingRepository, userRepo repositories.UserRepository, allowedLanguages []string) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		userRepo:    userRepo,
		allowed:     allowedLanguages,
	}
}

// ValidateLanguage checks a requested language code against the
// configured allow-list and returns the normalized code
func (s *SettingsService) ValidateLanguage(code string) (string, error) {
	return validation.ValidateLanguage(code, s.allowed)
}

// AllowedLanguages returns the configured allow-list
func (s *SettingsService) AllowedLanguages() []string {
	return s.allowed
}

// DefaultLanguage returns the stored default language, falling back to
// the first allowed code when the setting is missing
func (s *SettingsService) DefaultLanguage(ctx context.Context) string {
	setting, err := s.settingRepo.Get(ctx, SettingDefaultLanguage)
	if err == nil {
		if lang, verr := s.ValidateLanguage(setting.Value); verr == nil {
			return lang
		}
	}
	if len(s.allowed) > 0 {
		return s.allowed[0]
	}
	return "en"
}

// SetDefaultLanguage validates and stores the default language setting
func (s *SettingsService) SetDefaultLanguage(ctx context.Context, code string) error {
	lang, err := s.ValidateLanguage(code)
	if err != nil {
		return err
	}
	return s.settingRepo.Set(ctx, SettingDefaultLanguage, lang, "Fallback UI language")
}

// ListUsers returns a page of registered users
func (s *SettingsService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, offset, limit)
}

// ListSettings returns every system setting
func (s *SettingsService) ListSettings(ctx context.Context) ([]*models.SystemSetting, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return settings, nil
}
