package service

import (
	"context"
	"strings"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"
)

// AdminUserInput carries the writable fields of an admin account. On update a
// blank Password keeps the current hash, an empty Role keeps the current
// role and a nil Enabled keeps the current flag.
type AdminUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
	Enabled  *bool
}

type AdminUserService struct {
	repo *repository.AdminUserRepository
}

func NewAdminUserService(repo *repository.AdminUserRepository) *AdminUserService {
	return &AdminUserService{repo: repo}
}

func (s *AdminUserService) Page(ctx context.Context, req repository.PageRequest) (*repository.Page[models.AdminUser], error) {
	return s.repo.List(ctx, req)
}

func (s *AdminUserService) Get(ctx context.Context, id uint) (*models.AdminUser, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AdminUserService) Create(ctx context.Context, in AdminUserInput) (*models.AdminUser, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" {
		return nil, domain.NewValidation("username and email are required")
	}
	if blank(in.Password) {
		return nil, domain.NewValidation("password is required")
	}
	if in.Role == "" {
		in.Role = domain.RoleAdmin
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.NewValidation("unknown role: " + in.Role)
	}
	if err := s.checkUnique(ctx, in.Username, in.Email, 0); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	t := now()
	u := models.AdminUser{
		Username:  in.Username,
		Email:     in.Email,
		Password:  hash,
		FullName:  in.FullName,
		Role:      in.Role,
		Enabled:   enabled,
		CreatedAt: t,
		UpdatedAt: t,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AdminUserService) Update(ctx context.Context, id uint, in AdminUserInput) (*models.AdminUser, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" {
		return nil, domain.NewValidation("username and email are required")
	}
	if in.Role != "" && !domain.ValidRole(in.Role) {
		return nil, domain.NewValidation("unknown role: " + in.Role)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in.Username, in.Email, id); err != nil {
		return nil, err
	}
	if !blank(in.Password) {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	u.Username = in.Username
	u.Email = in.Email
	u.FullName = in.FullName
	if in.Role != "" {
		u.Role = in.Role
	}
	if in.Enabled != nil {
		u.Enabled = *in.Enabled
	}
	u.UpdatedAt = now()
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AdminUserService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *AdminUserService) checkUnique(ctx context.Context, username, email string, excludeID uint) error {
	taken, err := s.repo.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewConflict("username already exists: " + username)
	}
	taken, err = s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewConflict("email already exists: " + email)
	}
	return nil
}
