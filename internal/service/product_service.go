package service

import (
	"context"
	"strings"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListActive returns the products visible on the public site, in display order.
func (s *ProductService) ListActive(ctx context.Context) ([]models.Product, error) {
	list, err := s.repo.ListActive(ctx)
	if list == nil {
		list = []models.Product{}
	}
	return list, err
}

func (s *ProductService) ListActiveByCategory(ctx context.Context, category string) ([]models.Product, error) {
	list, err := s.repo.ListActiveByCategory(ctx, category)
	if list == nil {
		list = []models.Product{}
	}
	return list, err
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.repo.DistinctActiveCategories(ctx)
	if cats == nil {
		cats = []string{}
	}
	return cats, err
}

func (s *ProductService) Page(ctx context.Context, req repository.PageRequest) (*repository.Page[models.Product], error) {
	return s.repo.List(ctx, req)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetActive hides inactive products from the public surface.
func (s *ProductService) GetActive(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, domain.NewNotFound("product not found")
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in *models.Product) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	t := now()
	p := *in
	p.ID = 0
	p.Features = normalizeFeatures(&p)
	p.CreatedAt, p.UpdatedAt = t, t
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in *models.Product) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := *in
	p.ID = existing.ID
	p.Features = normalizeFeatures(&p)
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = now()
	if err := s.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateProduct(p *models.Product) error {
	if blank(p.Name) {
		return domain.NewValidation("product name is required")
	}
	if p.Price < 0 {
		return domain.NewValidation("price must not be negative")
	}
	return nil
}

// normalizeFeatures drops blank entries and the spaces around each feature.
func normalizeFeatures(p *models.Product) string {
	return strings.Join(p.FeatureList(), ",")
}
