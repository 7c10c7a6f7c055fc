package service

import (
	"context"

	"portal/internal/models"
	"portal/internal/repository"
)

type DashboardService struct {
	repo     *repository.DashboardRepository
	activity *ActivityService
}

func NewDashboardService(repo *repository.DashboardRepository, activity *ActivityService) *DashboardService {
	return &DashboardService{repo: repo, activity: activity}
}

func (s *DashboardService) Stats(ctx context.Context) (*repository.DashboardStats, error) {
	return s.repo.Counts(ctx)
}

func (s *DashboardService) RecentActivities(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	return s.activity.Recent(ctx, limit)
}
