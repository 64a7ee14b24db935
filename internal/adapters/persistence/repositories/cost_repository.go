package repositories

import (
	"context"

	"costtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// costRepository implements CostRepository interface
type costRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new cost repository
func NewCostRepository(db *gorm.DB) CostRepository {
	return &costRepository{db: db}
}

// Create creates a new cost entry
func (r *costRepository) Create(ctx context.Context, cost *models.Cost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

// GetByID gets a cost entry by ID
func (r *costRepository) GetByID(ctx context.Context, id uint) (*models.Cost, error) {
	var cost models.Cost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cost).Error
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// ListByUser lists a user's cost entries, newest date first, with pagination
func (r *costRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Cost, int64, error) {
	var costs []*models.Cost
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Cost{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("date DESC").Offset(offset).Limit(limit).Find(&costs).Error; err != nil {
		return nil, 0, err
	}

	return costs, total, nil
}

// Delete soft deletes a cost entry
func (r *costRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cost{}, id).Error
}

// SumAmount returns the total of all cost amounts
func (r *costRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Cost{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// Recent returns the most recently created cost entries
func (r *costRepository) Recent(ctx context.Context, limit int) ([]*models.Cost, error) {
	var costs []*models.Cost
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&costs).Error
	return costs, err
}
