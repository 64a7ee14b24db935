package repositories

import (
	"context"

	"costtrack/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// CostRepository defines cost repository interface
type CostRepository interface {
	Create(ctx context.Context, cost *models.Cost) error
	GetByID(ctx context.Context, id uint) (*models.Cost, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Cost, int64, error)
	Delete(ctx context.Context, id uint) error
	SumAmount(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int) ([]*models.Cost, error)
}

// TourRepository defines tour program repository interface
type TourRepository interface {
	Create(ctx context.Context, tour *models.TourProgram) error
	GetByID(ctx context.Context, id uint) (*models.TourProgram, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.TourProgram, int64, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*models.TourProgram, error)
}

// SettingRepository defines system setting repository interface
type SettingRepository interface {
	Get(ctx context.Context, key string) (*models.SystemSetting, error)
	Set(ctx context.Context, key, value, description string) error
	List(ctx context.Context) ([]*models.SystemSetting, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}
