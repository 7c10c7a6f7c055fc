package database_test

import (
	"testing"

	"portal/config"
	"portal/internal/database"
	"portal/internal/database/databasetest"
	"portal/internal/domain"
	"portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var seedCfg = &config.SeedConfig{
	Enabled:       true,
	AdminUsername: "root",
	AdminPassword: "s3cret-pass",
	AdminEmail:    "root@example.com",
	AdminFullName: "Root",
}

func TestSeedPopulatesEmptyTables(t *testing.T) {
	db := databasetest.New(t)
	require.NoError(t, database.Seed(db, seedCfg, zap.NewNop()))

	var n int64
	db.Model(&models.CompanyInfo{}).Count(&n)
	assert.EqualValues(t, 1, n)
	db.Model(&models.Product{}).Count(&n)
	assert.EqualValues(t, 6, n)
	db.Model(&models.News{}).Count(&n)
	assert.EqualValues(t, 6, n)

	var company models.CompanyInfo
	require.NoError(t, db.First(&company).Error)
	assert.True(t, company.IsPrimary)

	var news []models.News
	require.NoError(t, db.Find(&news).Error)
	for _, a := range news {
		assert.True(t, a.IsPublished)
		assert.NotNil(t, a.PublishedAt)
	}

	var admin models.AdminUser
	require.NoError(t, db.Where("username = ?", "root").First(&admin).Error)
	assert.Equal(t, domain.RoleSuperAdmin, admin.Role)
	assert.True(t, admin.Enabled)
	assert.NotEqual(t, "s3cret-pass", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret-pass")))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := databasetest.New(t)
	require.NoError(t, database.Seed(db, seedCfg, zap.NewNop()))
	require.NoError(t, database.Seed(db, seedCfg, zap.NewNop()))

	var n int64
	db.Model(&models.Product{}).Count(&n)
	assert.EqualValues(t, 6, n)
	db.Model(&models.AdminUser{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	db := databasetest.New(t)
	require.NoError(t, db.Create(&models.Product{Name: "Existing", IsActive: true}).Error)

	require.NoError(t, database.Seed(db, seedCfg, zap.NewNop()))

	var n int64
	db.Model(&models.Product{}).Count(&n)
	assert.EqualValues(t, 1, n)
	db.Model(&models.News{}).Count(&n)
	assert.EqualValues(t, 6, n)
}

func TestNewDBRejectsUnknownDriver(t *testing.T) {
	_, err := database.NewDB(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
