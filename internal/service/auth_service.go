package service

import (
	"context"
	"errors"

	"portal/config"
	"portal/internal/auth"
	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCreds    = domain.NewAuthentication("invalid username or password")
	ErrAccountDisabled = domain.NewAuthentication("account is disabled")
	ErrInvalidToken    = domain.NewAuthentication("invalid or expired token")
)

// LoginResult is the body returned by a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type AuthService struct {
	cfg      *config.JWTConfig
	userRepo *repository.AdminUserRepository
}

func NewAuthService(cfg *config.JWTConfig, userRepo *repository.AdminUserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if blank(username) || password == "" {
		return nil, domain.NewValidation("username and password are required")
	}
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCreds
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCreds
	}
	if !u.Enabled {
		return nil, ErrAccountDisabled
	}
	token, _, err := auth.GenerateToken(s.cfg, u.Username, now())
	if err != nil {
		return nil, domain.NewStorage("failed to sign token", err)
	}
	return &LoginResult{
		Token:    token,
		Type:     "Bearer",
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}, nil
}

// Authenticate resolves a bearer token to the current state of its user.
// Role and enabled flag come from storage, so demotions take effect on the
// next request.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.AdminUser, error) {
	username, err := auth.ParseToken(s.cfg, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !u.Enabled {
		return nil, ErrAccountDisabled
	}
	return u, nil
}

// ChangePassword overwrites the stored hash. The caller has already been
// authorized as a super admin, so the old password is not asked for.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, newPassword string) error {
	if blank(newPassword) {
		return domain.NewValidation("new password is required")
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash, now())
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidation("password is too long")
		}
		return "", domain.NewStorage("failed to hash password", err)
	}
	return string(hash), nil
}
