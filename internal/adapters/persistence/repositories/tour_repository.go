package repositories

import (
	"context"

	"costtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// tourRepository implements TourRepository interface
type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a new tour program repository
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

// Create creates a new tour program
func (r *tourRepository) Create(ctx context.Context, tour *models.TourProgram) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

// GetByID gets a tour program by ID
func (r *tourRepository) GetByID(ctx context.Context, id uint) (*models.TourProgram, error) {
	var tour models.TourProgram
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tour).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

// ListByUser lists a user's tour programs, latest start date first, with pagination
func (r *tourRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.TourProgram, int64, error) {
	var tours []*models.TourProgram
	var total int64

	query := r.db.WithContext(ctx).Model(&models.TourProgram{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("start_date DESC").Offset(offset).Limit(limit).Find(&tours).Error; err != nil {
		return nil, 0, err
	}

	return tours, total, nil
}

// Delete soft deletes a tour program
func (r *tourRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TourProgram{}, id).Error
}

// Count returns the number of tour programs
func (r *tourRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TourProgram{}).Count(&count).Error
	return count, err
}

// Recent returns the most recently created tour programs
func (r *tourRepository) Recent(ctx context.Context, limit int) ([]*models.TourProgram, error) {
	var tours []*models.TourProgram
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&tours).Error
	return tours, err
}
