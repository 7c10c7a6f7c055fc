package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"portal/internal/domain"
	"portal/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestIncrementViewCountIsSingleUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `news` SET `view_count`=view_count + ? WHERE id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repository.NewNewsRepository(db).IncrementViewCount(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViewCountMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `news` SET `view_count`=view_count + ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `news` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := repository.NewNewsRepository(db).IncrementViewCount(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadUnchangedRowStillSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `messages` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `messages` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	err := repository.NewMessageRepository(db).MarkRead(context.Background(), 3, time.Now())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigUpsertUsesOnDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `system_configs`") + ".*" +
		regexp.QuoteMeta("ON DUPLICATE KEY UPDATE `config_value`=VALUES(`config_value`),`updated_at`=VALUES(`updated_at`)")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `system_configs` WHERE config_key = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "config_key", "config_value"}).AddRow(1, "k", "v"))

	got, err := repository.NewConfigRepository(db).Upsert(context.Background(), "k", "v", nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "v", got.ConfigValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageFailureIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products`")).
		WillReturnError(assert.AnError)

	_, err := repository.NewProductRepository(db).ListActive(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, assert.AnError)
}
