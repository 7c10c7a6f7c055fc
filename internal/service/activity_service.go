package service

import (
	"context"

	"portal/internal/models"
	"portal/internal/repository"
	"portal/pkg/logger"

	"go.uber.org/zap"
)

const (
	defaultActivityLimit = 5
	maxActivityLimit     = 50
)

type ActivityService struct {
	repo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Record appends an entry to the admin activity feed. A failed write is
// logged and swallowed; the mutation it describes has already committed.
func (s *ActivityService) Record(ctx context.Context, operator, action, target string) {
	err := s.repo.Create(ctx, &models.ActivityLog{
		Operator:  operator,
		Action:    action,
		Target:    target,
		CreatedAt: now(),
	})
	if err != nil {
		logger.FromContext(ctx).Warn("record activity failed",
			zap.String("operator", operator),
			zap.String("action", action),
			zap.String("target", target),
			zap.Error(err))
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	list, err := s.repo.Recent(ctx, limit)
	if list == nil {
		list = []models.ActivityLog{}
	}
	return list, err
}
