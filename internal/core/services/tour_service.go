package services

import (
	"context"
	"errors"
	"log"

	"costtrack/internal/adapters/persistence/models"
	"costtrack/internal/adapters/persistence/repositories"
	"costtrack/internal/core/domain"
	"costtrack/internal/core/validation"

	"gorm.io/gorm"
)

// TourService handles tour program business logic
type TourService struct {
	tourRepo repositories.TourRepository
}

// NewTourService creates a new tour program service
func NewTourService(tourRepo repositories.TourRepository) *TourService {
	return &TourService{tourRepo: tourRepo}
}

// Create validates the submitted fields and persists the program
func (s *TourService) Create(ctx context.Context, userID uint, fields map[string]string) (*models.TourProgram, *validation.FormResult, error) {
	draft, result := validation.ValidateTour(fields)
	if !result.OK() {
		return nil, result, nil
	}

	tour := &models.TourProgram{
		Name:        draft.Name,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Destination: draft.Destination,
		TotalCost:   draft.TotalCost,
		UserID:      userID,
	}

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, result, err
	}

	log.Printf("✅ Tour program created: %s (user %d)", tour.Name, userID)
	return tour, result, nil
}

// ListByUser returns a page of the user's tour programs
func (s *TourService) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.TourProgram, int64, error) {
	return s.tourRepo.ListByUser(ctx, userID, offset, limit)
}

// GetByID returns one tour program, enforcing ownership
func (s *TourService) GetByID(ctx context.Context, userID, id uint) (*models.TourProgram, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTourNotFound
		}
		return nil, err
	}
	if tour.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	return tour, nil
}

// Delete removes one tour program, enforcing ownership
func (s *TourService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.tourRepo.Delete(ctx, id)
}
