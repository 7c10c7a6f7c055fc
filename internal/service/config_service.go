package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"
	"portal/pkg/logger"

	"go.uber.org/zap"
)

type ConfigService struct {
	repo *repository.ConfigRepository
}

func NewConfigService(repo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

func (s *ConfigService) List(ctx context.Context) ([]models.SystemConfig, error) {
	list, err := s.repo.List(ctx)
	if list == nil {
		list = []models.SystemConfig{}
	}
	return list, err
}

func (s *ConfigService) Get(ctx context.Context, id uint) (*models.SystemConfig, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConfigService) GetByKey(ctx context.Context, key string) (*models.SystemConfig, error) {
	return s.repo.GetByKey(ctx, key)
}

// Value returns the stored value for key, or def when the key is absent or
// the lookup fails. Lookup failures are logged.
func (s *ConfigService) Value(ctx context.Context, key, def string) string {
	c, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.FromContext(ctx).Error("config lookup failed", zap.String("key", key), zap.Error(err))
		}
		return def
	}
	return c.ConfigValue
}

func (s *ConfigService) Create(ctx context.Context, in *models.SystemConfig) (*models.SystemConfig, error) {
	key, err := configKey(in.ConfigKey)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.ExistsByKey(ctx, key, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewConflict("config key already exists: " + key)
	}
	t := now()
	c := models.SystemConfig{
		ConfigKey:   key,
		ConfigValue: in.ConfigValue,
		Description: in.Description,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ConfigService) Update(ctx context.Context, id uint, in *models.SystemConfig) (*models.SystemConfig, error) {
	key, err := configKey(in.ConfigKey)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if key != existing.ConfigKey {
		taken, err := s.repo.ExistsByKey(ctx, key, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflict("config key already exists: " + key)
		}
	}
	existing.ConfigKey = key
	existing.ConfigValue = in.ConfigValue
	existing.Description = in.Description
	existing.UpdatedAt = now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SaveOrUpdate upserts key. A nil description leaves the stored one alone.
func (s *ConfigService) SaveOrUpdate(ctx context.Context, key, value string, description *string) (*models.SystemConfig, error) {
	key, err := configKey(key)
	if err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, key, value, description, now())
}

func (s *ConfigService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *ConfigService) DeleteByKey(ctx context.Context, key string) error {
	return s.repo.DeleteByKey(ctx, key)
}

func configKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", domain.NewValidation("config key is required")
	}
	if utf8.RuneCountInString(key) > domain.MaxConfigKeyLength {
		return "", domain.NewValidation(fmt.Sprintf("config key must be at most %d characters", domain.MaxConfigKeyLength))
	}
	return key, nil
}
