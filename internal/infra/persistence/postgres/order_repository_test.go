package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newGormWithMock opens gorm over a sqlmock connection so tests can assert
// on the SQL the repositories emit without a live database.
func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestOrderRepository_CancelActiveByUserAndProduct_StampsExpiry(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewOrderRepository(db)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	// The bulk cancel must write both the cancelled status and the revocation
	// time, so a revoked open-ended order records when access ended.
	mock.ExpectExec(`UPDATE "orders" SET .*"expires_at"=\$\d+.*"status"=\$\d+.* WHERE \(?user_id = \$\d+ AND product_id = \$\d+ AND status = \$\d+\)? AND \(expires_at IS NULL OR expires_at > \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	cancelled, err := repo.CancelActiveByUserAndProduct(ctx, userID, productID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cancelled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CancelActiveByUserAndProduct_NoMatchingRows(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewOrderRepository(db)

	ctx := context.Background()

	mock.ExpectExec(`UPDATE "orders" SET .*"expires_at"=\$\d+.*"status"=\$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	cancelled, err := repo.CancelActiveByUserAndProduct(ctx, uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), cancelled)
	require.NoError(t, mock.ExpectationsWereMet())
}
