package services

import (
	"context"

	"costtrack/internal/adapters/persistence/models"
	"costtrack/internal/adapters/persistence/repositories"
)

// DashboardService aggregates the landing page statistics
type DashboardService struct {
	costRepo repositories.CostRepository
	tourRepo repositories.TourRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(costRepo repositories.CostRepository, tourRepo repositories.TourRepository) *DashboardService {
	return &DashboardService{
		costRepo: costRepo,
		tourRepo: tourRepo,
	}
}

// Summary holds the dashboard numbers plus the five most recent
// records of each type
type Summary struct {
	TotalCosts  float64               `json:"total_costs"`
	TotalTours  int64                 `json:"total_tours"`
	RecentCosts []*models.Cost        `json:"recent_costs"`
	RecentTours []*models.TourProgram `json:"recent_tours"`
}

const recentLimit = 5

// GetSummary builds the dashboard summary
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	totalCosts, err := s.costRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}

	totalTours, err := s.tourRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recentCosts, err := s.costRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	recentTours, err := s.tourRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalCosts:  totalCosts,
		TotalTours:  totalTours,
		RecentCosts: recentCosts,
		RecentTours: recentTours,
	}, nil
}
