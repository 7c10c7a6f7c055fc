package models

import (
	"time"

	"portal/internal/domain"
)

// AdminUser is a back-office account. Password holds the bcrypt hash only.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100" json:"fullName"`
	Role      string    `gorm:"size:20;not null;index" json:"role"` // SUPER_ADMIN | ADMIN
	Enabled   bool      `gorm:"not null" json:"enabled"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (AdminUser) TableName() string { return "admin_users" }

func (u *AdminUser) IsSuperAdmin() bool { return u.Role == domain.RoleSuperAdmin }
