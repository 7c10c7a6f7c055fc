package repository

import (
	"context"

	"portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const whatNews = "news"

var newsSort = commonSort.with(sortColumns{
	"title":       "title",
	"category":    "category",
	"author":      "author",
	"isPublished": "is_published",
	"publishedAt": "published_at",
	"viewCount":   "view_count",
})

var publishedOrder = []clause.OrderByColumn{
	{Column: clause.Column{Name: "published_at"}, Desc: true},
	{Column: clause.Column{Name: "id"}, Desc: true},
}

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	return translate(r.db.WithContext(ctx).Create(n).Error, whatNews)
}

func (r *NewsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	return getByID[models.News](ctx, r.db, id, whatNews)
}

// Update writes every editable column. view_count is never written here so a
// concurrent IncrementViewCount cannot be overwritten by an admin edit.
func (r *NewsRepository) Update(ctx context.Context, n *models.News) error {
	return updateRow(ctx, r.db, n, n.ID, whatNews, "view_count", "created_at")
}

func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.News](ctx, r.db, id, whatNews)
}

// List returns drafts and published articles for the admin surface.
func (r *NewsRepository) List(ctx context.Context, req PageRequest) (*Page[models.News], error) {
	page, err := findPage[models.News](ctx, r.db, req, newsSort, desc("id"), nil)
	return page, translate(err, whatNews)
}

// ListPublished pages published articles, newest first. An empty category
// means all categories.
func (r *NewsRepository) ListPublished(ctx context.Context, category string, req PageRequest) (*Page[models.News], error) {
	page, err := findPage[models.News](ctx, r.db, req, newsSort, publishedOrder, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_published = ?", true)
		if category != "" {
			q = q.Where("category = ?", category)
		}
		return q
	})
	return page, translate(err, whatNews)
}

func (r *NewsRepository) Latest(ctx context.Context, limit int) ([]models.News, error) {
	var list []models.News
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").Order("id DESC").
		Limit(limit).
		Find(&list).Error
	return list, translate(err, whatNews)
}

func (r *NewsRepository) DistinctPublishedCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.db.WithContext(ctx).Model(&models.News{}).
		Where("is_published = ? AND category <> ?", true, "").
		Distinct().Order("category ASC").
		Pluck("category", &cats).Error
	return cats, translate(err, whatNews)
}

// IncrementViewCount bumps the counter in a single UPDATE so concurrent
// readers never lose an increment. updated_at is left alone.
func (r *NewsRepository) IncrementViewCount(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.News{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return translate(res.Error, whatNews)
	}
	if res.RowsAffected == 0 {
		return existsAfterNoop[models.News](ctx, r.db, id, whatNews)
	}
	return nil
}

func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	n, err := countWhere[models.News](ctx, r.db, nil)
	return n, translate(err, whatNews)
}
