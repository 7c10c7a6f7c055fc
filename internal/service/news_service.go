package service

import (
	"context"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"
)

type NewsService struct {
	repo *repository.NewsRepository
}

func NewNewsService(repo *repository.NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

func (s *NewsService) Page(ctx context.Context, req repository.PageRequest) (*repository.Page[models.News], error) {
	return s.repo.List(ctx, req)
}

// Published pages published articles; category may be empty.
func (s *NewsService) Published(ctx context.Context, category string, req repository.PageRequest) (*repository.Page[models.News], error) {
	return s.repo.ListPublished(ctx, category, req)
}

func (s *NewsService) Latest(ctx context.Context) ([]models.News, error) {
	list, err := s.repo.Latest(ctx, domain.LatestNewsLimit)
	if list == nil {
		list = []models.News{}
	}
	return list, err
}

func (s *NewsService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.repo.DistinctPublishedCategories(ctx)
	if cats == nil {
		cats = []string{}
	}
	return cats, err
}

func (s *NewsService) Get(ctx context.Context, id uint) (*models.News, error) {
	return s.repo.GetByID(ctx, id)
}

// Read serves a published article to a visitor and counts the view. Drafts
// are reported as missing.
func (s *NewsService) Read(ctx context.Context, id uint) (*models.News, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !n.IsPublished {
		return nil, domain.NewNotFound("news not found")
	}
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	n.ViewCount++
	return n, nil
}

func (s *NewsService) Create(ctx context.Context, in *models.News) (*models.News, error) {
	if err := validateNews(in); err != nil {
		return nil, err
	}
	t := now()
	n := *in
	n.ID = 0
	n.ViewCount = 0
	if n.IsPublished && n.PublishedAt == nil {
		n.PublishedAt = &t
	}
	n.CreatedAt, n.UpdatedAt = t, t
	if err := s.repo.Create(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Update replaces the editable fields. The view counter, creation time and
// first publication time always come from the stored row.
func (s *NewsService) Update(ctx context.Context, id uint, in *models.News) (*models.News, error) {
	if err := validateNews(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t := now()
	n := *in
	n.ID = existing.ID
	n.ViewCount = existing.ViewCount
	n.CreatedAt = existing.CreatedAt
	n.PublishedAt = existing.PublishedAt
	if n.IsPublished && n.PublishedAt == nil {
		n.PublishedAt = &t
	}
	n.UpdatedAt = t
	if err := s.repo.Update(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NewsService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateNews(n *models.News) error {
	if blank(n.Title) {
		return domain.NewValidation("news title is required")
	}
	if blank(n.Content) {
		return domain.NewValidation("news content is required")
	}
	return nil
}
