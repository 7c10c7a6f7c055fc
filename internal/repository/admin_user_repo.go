package repository

import (
	"context"
	"time"

	"portal/internal/models"

	"gorm.io/gorm"
)

const whatUser = "user"

var adminUserSort = commonSort.with(sortColumns{
	"username": "username",
	"email":    "email",
	"fullName": "full_name",
	"role":     "role",
	"enabled":  "enabled",
})

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) Create(ctx context.Context, u *models.AdminUser) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, whatUser)
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	return getByID[models.AdminUser](ctx, r.db, id, whatUser)
}

func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err, whatUser)
	}
	return &u, nil
}

func (r *AdminUserRepository) List(ctx context.Context, req PageRequest) (*Page[models.AdminUser], error) {
	page, err := findPage[models.AdminUser](ctx, r.db, req, adminUserSort, desc("created_at"), nil)
	return page, translate(err, whatUser)
}

// ExistsByUsername reports whether username belongs to a row other than
// excludeID. Pass zero to check every row.
func (r *AdminUserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	n, err := countWhere[models.AdminUser](ctx, r.db, "username = ? AND id <> ?", username, excludeID)
	return n > 0, translate(err, whatUser)
}

func (r *AdminUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	n, err := countWhere[models.AdminUser](ctx, r.db, "email = ? AND id <> ?", email, excludeID)
	return n > 0, translate(err, whatUser)
}

func (r *AdminUserRepository) Update(ctx context.Context, u *models.AdminUser) error {
	return updateRow(ctx, r.db, u, u.ID, whatUser, "created_at")
}

func (r *AdminUserRepository) UpdatePassword(ctx context.Context, id uint, hash string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.AdminUser{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password": hash, "updated_at": at})
	if res.Error != nil {
		return translate(res.Error, whatUser)
	}
	if res.RowsAffected == 0 {
		return existsAfterNoop[models.AdminUser](ctx, r.db, id, whatUser)
	}
	return nil
}

func (r *AdminUserRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.AdminUser](ctx, r.db, id, whatUser)
}

func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	n, err := countWhere[models.AdminUser](ctx, r.db, nil)
	return n, translate(err, whatUser)
}
