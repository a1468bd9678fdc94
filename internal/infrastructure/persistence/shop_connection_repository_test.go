package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ordersync/backend/internal/domain/shared"
	"github.com/ordersync/backend/internal/domain/sync"
)

// newMockShopConnectionRepository creates a GormShopConnectionRepository with a mocked SQL connection
func newMockShopConnectionRepository(t *testing.T) (*GormShopConnectionRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormShopConnectionRepository(gormDB), mock, mockDB
}

func TestGormShopConnectionRepository_FindByShop(t *testing.T) {
	t.Run("finds configured shop", func(t *testing.T) {
		repo, mock, mockDB := newMockShopConnectionRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "shop", "endpoint_url", "auth_code", "page_size"}).
			AddRow(id, "acme", "https://legacy.example.com/service.asmx?wsdl", "secret", 50)

		mock.ExpectQuery(`SELECT \* FROM "shop_connections" WHERE shop = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("acme", 1).
			WillReturnRows(rows)

		conn, err := repo.FindByShop(context.Background(), "acme")

		require.NoError(t, err)
		assert.Equal(t, id, conn.ID)
		assert.Equal(t, "acme", conn.Shop)
		assert.Equal(t, "secret", conn.AuthCode)
		assert.Equal(t, 50, conn.PageSize)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing shop maps to ErrConfigMissing", func(t *testing.T) {
		repo, mock, mockDB := newMockShopConnectionRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "shop_connections" WHERE shop = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("nowhere", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		conn, err := repo.FindByShop(context.Background(), "nowhere")

		assert.Nil(t, conn)
		assert.ErrorIs(t, err, sync.ErrConfigMissing)
		assert.Contains(t, err.Error(), "nowhere")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormShopConnectionRepository_Save(t *testing.T) {
	t.Run("updates an existing connection", func(t *testing.T) {
		repo, mock, mockDB := newMockShopConnectionRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "shop_connections" SET .*`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		conn := &sync.ShopConnection{
			ID:          uuid.New(),
			Shop:        "acme",
			EndpointURL: "https://legacy.example.com/service.asmx",
			AuthCode:    "secret",
		}

		require.NoError(t, repo.Save(context.Background(), conn))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an invalid connection without touching the database", func(t *testing.T) {
		repo, mock, mockDB := newMockShopConnectionRepository(t)
		defer mockDB.Close()

		conn := &sync.ShopConnection{
			ID:   uuid.New(),
			Shop: "acme",
			// EndpointURL and AuthCode missing
		}

		assert.Error(t, repo.Save(context.Background(), conn))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormShopConnectionRepository_Delete(t *testing.T) {
	t.Run("deletes existing connection", func(t *testing.T) {
		repo, mock, mockDB := newMockShopConnectionRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "shop_connections" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockShopConnectionRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "shop_connections" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
