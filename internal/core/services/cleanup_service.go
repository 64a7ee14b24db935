package services

import (
	"context"
	"log"

	"costtrack/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CleanupService prunes expired and revoked refresh tokens on a nightly
// schedule. Stale login-throttle counters are NOT pruned here: they
// live in sessions and expire lazily on the next attempt.
type CleanupService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(refreshTokenRepo repositories.RefreshTokenRepository) *CleanupService {
	return &CleanupService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start schedules the nightly cleanup job (03:00)
func (s *CleanupService) Start() {
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeTokens); err != nil {
		log.Printf("❌ Failed to schedule token cleanup: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 CleanupService started (nightly token purge at 03:00)")
}

// Stop stops the scheduler
func (s *CleanupService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CleanupService stopped")
}

func (s *CleanupService) purgeTokens() {
	deleted, err := s.refreshTokenRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("❌ Token cleanup error: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Token cleanup removed %d stale refresh tokens", deleted)
	}
}
