package config

import (
	"log"

	"costtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedDefaultLanguage(); err != nil {
		log.Printf("⚠️ Language seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin account. The password never
// lands in the database; credential checks go through the oracle, so
// this row only carries profile data.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("username = ?", s.cfg.Auth.AdminUsername).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	admin := &models.User{
		Username:   s.cfg.Auth.AdminUsername,
		Email:      s.cfg.Auth.AdminEmail,
		FirstName:  "Admin",
		LastName:   "User",
		Department: "IT",
		Position:   "System Administrator",
		Role:       "ADMIN",
		IsActive:   true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}

// seedDefaultLanguage stores the fallback language setting once
func (s *Seeder) seedDefaultLanguage() error {
	var count int64
	s.db.Model(&models.SystemSetting{}).Where("`key` = ?", "default_language").Count(&count)
	if count > 0 {
		return nil
	}

	setting := &models.SystemSetting{
		Key:         "default_language",
		Value:       s.cfg.Locale.Default,
		Description: "Fallback UI language",
	}

	if err := s.db.Create(setting).Error; err != nil {
		return err
	}

	log.Printf("✅ Default language set: %s", setting.Value)
	return nil
}
