package service

import (
	"context"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"
)

type CompanyService struct {
	repo *repository.CompanyRepository
}

func NewCompanyService(repo *repository.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) List(ctx context.Context) ([]models.CompanyInfo, error) {
	list, err := s.repo.List(ctx)
	if list == nil {
		list = []models.CompanyInfo{}
	}
	return list, err
}

func (s *CompanyService) Get(ctx context.Context, id uint) (*models.CompanyInfo, error) {
	return s.repo.GetByID(ctx, id)
}

// Main returns the company shown on the home page.
func (s *CompanyService) Main(ctx context.Context) (*models.CompanyInfo, error) {
	return s.repo.Primary(ctx)
}

func (s *CompanyService) Create(ctx context.Context, in *models.CompanyInfo) (*models.CompanyInfo, error) {
	if err := validateCompany(in); err != nil {
		return nil, err
	}
	t := now()
	c := *in
	c.ID = 0
	c.CreatedAt, c.UpdatedAt = t, t
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CompanyService) Update(ctx context.Context, id uint, in *models.CompanyInfo) (*models.CompanyInfo, error) {
	if err := validateCompany(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c := *in
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = now()
	if err := s.repo.Update(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CompanyService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateCompany(c *models.CompanyInfo) error {
	if blank(c.Name) {
		return domain.NewValidation("company name is required")
	}
	if blank(c.Description) {
		return domain.NewValidation("company description is required")
	}
	return nil
}
