package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
)

func newMockMineRepo(t *testing.T) (*GormMineRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewGormMineRepository(gormDB), mock, mockDB
}

func TestGormMineRepository_FindByID(t *testing.T) {
	t.Run("maps missing rows to ErrNotFound", func(t *testing.T) {
		repo, mock, mockDB := newMockMineRepo(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "mines" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		mine, err := repo.FindByID(context.Background(), id)
		assert.Nil(t, mine)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the row", func(t *testing.T) {
		repo, mock, mockDB := newMockMineRepo(t)
		defer mockDB.Close()

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "address", "contact", "version"}).
			AddRow(id, "North Quarry", "Makrana", "", 3)
		mock.ExpectQuery(`SELECT \* FROM "mines" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		mine, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "North Quarry", mine.Name)
		assert.Equal(t, 3, mine.Version)
	})
}

func TestGormMineRepository_Update(t *testing.T) {
	t.Run("checks the previous version", func(t *testing.T) {
		repo, mock, mockDB := newMockMineRepo(t)
		defer mockDB.Close()

		mine, err := partner.NewMine("North Quarry", "", "")
		require.NoError(t, err)
		require.NoError(t, mine.Update("South Quarry", "", ""))

		mock.ExpectExec(`UPDATE "mines" SET .* WHERE version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), mine))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		repo, mock, mockDB := newMockMineRepo(t)
		defer mockDB.Close()

		mine, err := partner.NewMine("North Quarry", "", "")
		require.NoError(t, err)
		require.NoError(t, mine.Update("South Quarry", "", ""))

		mock.ExpectExec(`UPDATE "mines" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "mines" WHERE id = \$1`).
			WithArgs(mine.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err = repo.Update(context.Background(), mine)
		assert.True(t, errors.Is(err, shared.ErrConcurrencyConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormMineRepository_FindAll_OrdersByWhitelist(t *testing.T) {
	repo, mock, mockDB := newMockMineRepo(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "mines" ORDER BY name ASC LIMIT \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	filter := shared.DefaultFilter()
	filter.OrderBy = "name; DROP TABLE mines"
	filter.OrderDir = "asc"
	_, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
