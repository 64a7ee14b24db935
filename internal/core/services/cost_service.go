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

// CostService handles cost entry business logic. Raw form fields go
// through the validation pipeline; only a draft that passed every
// check reaches the repository.
type CostService struct {
	costRepo repositories.CostRepository
}

// NewCostService creates a new cost service
func NewCostService(costRepo repositories.CostRepository) *CostService {
	return &CostService{costRepo: costRepo}
}

// Create validates the submitted fields and persists the entry. A
// non-nil FormResult with errors means the submission was rejected;
// that is data for the caller, not a service failure.
func (s *CostService) Create(ctx context.Context, userID uint, fields map[string]string) (*models.Cost, *validation.FormResult, error) {
	draft, result := validation.ValidateCost(fields)
	if !result.OK() {
		return nil, result, nil
	}

	cost := &models.Cost{
		Name:        draft.Name,
		Description: draft.Description,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Date:        draft.Date,
		UserID:      userID,
	}

	if err := s.costRepo.Create(ctx, cost); err != nil {
		return nil, result, err
	}

	log.Printf("✅ Cost entry created: %s (user %d)", cost.Name, userID)
	return cost, result, nil
}

// ListByUser returns a page of the user's cost entries
func (s *CostService) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Cost, int64, error) {
	return s.costRepo.ListByUser(ctx, userID, offset, limit)
}

// GetByID returns one cost entry, enforcing ownership
func (s *CostService) GetByID(ctx context.Context, userID, id uint) (*models.Cost, error) {
	cost, err := s.costRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCostNotFound
		}
		return nil, err
	}
	if cost.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	return cost, nil
}

// Delete removes one cost entry, enforcing ownership
func (s *CostService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.costRepo.Delete(ctx, id)
}
