package repository

import (
	"context"

	"portal/internal/models"

	"gorm.io/gorm"
)

const whatActivity = "activity"

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, a *models.ActivityLog) error {
	return translate(r.db.WithContext(ctx).Create(a).Error, whatActivity)
}

// Recent returns the newest entries first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	var list []models.ActivityLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&list).Error
	return list, translate(err, whatActivity)
}
