package repository

import (
	"context"
	"time"

	"portal/internal/domain"
	"portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const whatConfig = "config"

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) List(ctx context.Context) ([]models.SystemConfig, error) {
	var list []models.SystemConfig
	err := r.db.WithContext(ctx).Order("config_key ASC").Find(&list).Error
	return list, translate(err, whatConfig)
}

func (r *ConfigRepository) GetByID(ctx context.Context, id uint) (*models.SystemConfig, error) {
	return getByID[models.SystemConfig](ctx, r.db, id, whatConfig)
}

func (r *ConfigRepository) GetByKey(ctx context.Context, key string) (*models.SystemConfig, error) {
	var c models.SystemConfig
	if err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&c).Error; err != nil {
		return nil, translate(err, whatConfig)
	}
	return &c, nil
}

// ExistsByKey reports whether key is taken by a row other than excludeID.
// Pass zero to check every row.
func (r *ConfigRepository) ExistsByKey(ctx context.Context, key string, excludeID uint) (bool, error) {
	n, err := countWhere[models.SystemConfig](ctx, r.db, "config_key = ? AND id <> ?", key, excludeID)
	return n > 0, translate(err, whatConfig)
}

func (r *ConfigRepository) Create(ctx context.Context, c *models.SystemConfig) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, whatConfig)
}

func (r *ConfigRepository) Update(ctx context.Context, c *models.SystemConfig) error {
	return updateRow(ctx, r.db, c, c.ID, whatConfig, "created_at")
}

func (r *ConfigRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.SystemConfig](ctx, r.db, id, whatConfig)
}

func (r *ConfigRepository) DeleteByKey(ctx context.Context, key string) error {
	res := r.db.WithContext(ctx).Where("config_key = ?", key).Delete(&models.SystemConfig{})
	if res.Error != nil {
		return translate(res.Error, whatConfig)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound(whatConfig + " not found")
	}
	return nil
}

// Upsert writes value under key, creating the row when absent. A nil
// description keeps whatever the row already has.
func (r *ConfigRepository) Upsert(ctx context.Context, key, value string, description *string, at time.Time) (*models.SystemConfig, error) {
	row := models.SystemConfig{ConfigKey: key, ConfigValue: value, CreatedAt: at, UpdatedAt: at}
	cols := []string{"config_value", "updated_at"}
	if description != nil {
		row.Description = *description
		cols = append(cols, "description")
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&row).Error
	if err != nil {
		return nil, translate(err, whatConfig)
	}
	return r.GetByKey(ctx, key)
}
