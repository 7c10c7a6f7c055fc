package repository

import (
	"context"

	"portal/internal/models"

	"gorm.io/gorm"
)

const whatProduct = "product"

var productSort = commonSort.with(sortColumns{
	"name":      "name",
	"category":  "category",
	"price":     "price",
	"sortOrder": "sort_order",
	"isActive":  "is_active",
})

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, whatProduct)
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return getByID[models.Product](ctx, r.db, id, whatProduct)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	return updateRow(ctx, r.db, p, p.ID, whatProduct, "created_at")
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Product](ctx, r.db, id, whatProduct)
}

// List returns every product, active or not, for the admin surface.
func (r *ProductRepository) List(ctx context.Context, req PageRequest) (*Page[models.Product], error) {
	page, err := findPage[models.Product](ctx, r.db, req, productSort, desc("id"), nil)
	return page, translate(err, whatProduct)
}

// ListActive returns visible products in display order.
func (r *ProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").Order("id ASC").
		Find(&list).Error
	return list, translate(err, whatProduct)
}

func (r *ProductRepository) ListActiveByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("sort_order ASC").Order("id ASC").
		Find(&list).Error
	return list, translate(err, whatProduct)
}

// DistinctActiveCategories lists the categories that have at least one
// visible product.
func (r *ProductRepository) DistinctActiveCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ? AND category <> ?", true, "").
		Distinct().Order("category ASC").
		Pluck("category", &cats).Error
	return cats, translate(err, whatProduct)
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := countWhere[models.Product](ctx, r.db, nil)
	return n, translate(err, whatProduct)
}
