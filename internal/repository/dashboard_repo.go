package repository

import (
	"context"

	"portal/internal/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalProducts  int64 `json:"totalProducts"`
	TotalNews      int64 `json:"totalNews"`
	TotalCompanies int64 `json:"totalCompanies"`
	TotalMessages  int64 `json:"totalMessages"`
	UnreadMessages int64 `json:"unreadMessages"`
}

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts gathers the headline numbers for the admin dashboard.
func (r *DashboardRepository) Counts(ctx context.Context) (*DashboardStats, error) {
	var s DashboardStats
	counts := []struct {
		dst   *int64
		model interface{}
		where []interface{}
	}{
		{&s.TotalUsers, &models.AdminUser{}, nil},
		{&s.TotalProducts, &models.Product{}, nil},
		{&s.TotalNews, &models.News{}, nil},
		{&s.TotalCompanies, &models.CompanyInfo{}, nil},
		{&s.TotalMessages, &models.Message{}, nil},
		{&s.UnreadMessages, &models.Message{}, []interface{}{"is_read = ?", false}},
	}
	for _, c := range counts {
		q := r.db.WithContext(ctx).Model(c.model)
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, translate(err, "dashboard")
		}
	}
	return &s, nil
}
