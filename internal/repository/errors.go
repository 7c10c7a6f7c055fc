package repository

import (
	"context"
	"errors"

	"portal/internal/domain"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the domain taxonomy. what names the entity
// in client-facing messages.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFound(what + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewConflict(what + " already exists")
	default:
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
		return domain.NewStorage("failed to access "+what, err)
	}
}

func getByID[T any](ctx context.Context, db *gorm.DB, id uint, what string) (*T, error) {
	var v T
	if err := db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, translate(err, what)
	}
	return &v, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint, what string) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error, what)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound(what + " not found")
	}
	return nil
}

func countWhere[T any](ctx context.Context, db *gorm.DB, query interface{}, args ...interface{}) (int64, error) {
	var n int64
	q := db.WithContext(ctx).Model(new(T))
	if query != nil {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// updateRow writes every column of v except id and omit. It never inserts:
// a row deleted since it was read yields NotFound.
func updateRow[T any](ctx context.Context, db *gorm.DB, v *T, id uint, what string, omit ...string) error {
	res := db.WithContext(ctx).Model(v).
		Where("id = ?", id).
		Select("*").Omit(append([]string{"id"}, omit...)...).
		Updates(v)
	if res.Error != nil {
		return translate(res.Error, what)
	}
	if res.RowsAffected == 0 {
		return existsAfterNoop[T](ctx, db, id, what)
	}
	return nil
}

// existsAfterNoop is used when an UPDATE touched zero rows: MySQL reports
// zero for rows whose values did not change, so absence has to be confirmed.
func existsAfterNoop[T any](ctx context.Context, db *gorm.DB, id uint, what string) error {
	n, err := countWhere[T](ctx, db, "id = ?", id)
	if err != nil {
		return translate(err, what)
	}
	if n == 0 {
		return domain.NewNotFound(what + " not found")
	}
	return nil
}
