package repository

import (
	"context"
	"errors"

	"portal/internal/models"

	"gorm.io/gorm"
)

const whatCompany = "company"

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List(ctx context.Context) ([]models.CompanyInfo, error) {
	var list []models.CompanyInfo
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, translate(err, whatCompany)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*models.CompanyInfo, error) {
	return getByID[models.CompanyInfo](ctx, r.db, id, whatCompany)
}

// Primary returns the row flagged is_primary, or the oldest row when no row
// carries the flag.
func (r *CompanyRepository) Primary(ctx context.Context) (*models.CompanyInfo, error) {
	var c models.CompanyInfo
	err := r.db.WithContext(ctx).Where("is_primary = ?", true).Order("id ASC").First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err, whatCompany)
	}
	if err := r.db.WithContext(ctx).Order("id ASC").First(&c).Error; err != nil {
		return nil, translate(err, whatCompany)
	}
	return &c, nil
}

// Create inserts c. When c is primary the flag is cleared on every other row
// in the same transaction.
func (r *CompanyRepository) Create(ctx context.Context, c *models.CompanyInfo) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if c.IsPrimary {
			return clearPrimary(tx, c.ID)
		}
		return nil
	})
	return translate(err, whatCompany)
}

func (r *CompanyRepository) Update(ctx context.Context, c *models.CompanyInfo) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(ctx, tx, c, c.ID, whatCompany, "created_at"); err != nil {
			return err
		}
		if c.IsPrimary {
			return clearPrimary(tx, c.ID)
		}
		return nil
	})
	return translate(err, whatCompany)
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.CompanyInfo](ctx, r.db, id, whatCompany)
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	n, err := countWhere[models.CompanyInfo](ctx, r.db, nil)
	return n, translate(err, whatCompany)
}

func clearPrimary(tx *gorm.DB, keepID uint) error {
	return tx.Model(&models.CompanyInfo{}).
		Where("id <> ? AND is_primary = ?", keepID, true).
		UpdateColumn("is_primary", false).Error
}
