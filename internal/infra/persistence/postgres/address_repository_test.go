package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var addressColumns = []string{"id", "building", "street", "town", "postcode", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (repository.AddressRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return NewAddressRepository(db), mock
}

func TestAddressRepository_FindAllAddresses(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "addresses" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(1, "1", "Market Place", "Newbury", "RG14 5BY", now, now).
			AddRow(2, "2", "Trafford Way", "Manchester", "M17 1BR", now, now))

	addresses, err := repo.FindAllAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, &entity.Address{
		ID:        1,
		Building:  "1",
		Street:    "Market Place",
		Town:      "Newbury",
		Postcode:  "RG14 5BY",
		CreatedAt: now,
		UpdatedAt: now,
	}, addresses[0])
	assert.Equal(t, "M17 1BR", addresses[1].Postcode)
}

func TestAddressRepository_FindAllAddresses_Error(t *testing.T) {
	repo, mock := newMockRepository(t)
	dbErr := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT \* FROM "addresses"`).WillReturnError(dbErr)

	_, err := repo.FindAllAddresses(context.Background())
	require.ErrorIs(t, err, dbErr)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAddressRepository_FindAddressByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(3, "30", "St Mary Axe", "London", "EC3A 8BF", now, now))

	address, err := repo.FindAddressByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, address.ID)
	assert.Equal(t, "St Mary Axe", address.Street)
}

func TestAddressRepository_FindAddressByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	address, err := repo.FindAddressByID(context.Background(), 99)
	require.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.Nil(t, address)
}

func TestAddressRepository_FindAddressesByPostcode(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE LOWER\(postcode\) = LOWER\(\$1\) ORDER BY id`).
		WithArgs("rg14 5by").
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(1, "1", "Market Place", "Newbury", "RG14 5BY", now, now))

	addresses, err := repo.FindAddressesByPostcode(context.Background(), "rg14 5by")
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "RG14 5BY", addresses[0].Postcode)
}

func TestAddressRepository_FindAddressesByPostcode_NoMatch(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`LOWER\(postcode\)`).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	addresses, err := repo.FindAddressesByPostcode(context.Background(), "ZZ1 1ZZ")
	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}

func TestAddressRepository_ExistsAddressByID(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "addresses" WHERE id = \$1`).
				WithArgs(5).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := repo.ExistsAddressByID(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestAddressRepository_CreateAddress(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	address := &entity.Address{
		Building: "1",
		Street:   "Market Place",
		Town:     "Newbury",
		Postcode: "RG14 5BY",
	}

	require.NoError(t, repo.CreateAddress(context.Background(), address))
	assert.Equal(t, 42, address.ID)
	assert.False(t, address.CreatedAt.IsZero())
}

func TestAddressRepository_CreateAddress_NotNullViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO "addresses"`).
		WillReturnError(errors.New(`ERROR: null value in column "town" violates not-null constraint (SQLSTATE 23502)`))

	err := repo.CreateAddress(context.Background(), &entity.Address{Postcode: "RG14 5BY"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressRepository_UpdateAddress(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "addresses" SET .* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	address := &entity.Address{
		ID:       3,
		Building: "30",
		Street:   "St Mary Axe",
		Town:     "London",
		Postcode: "EC3A 8BF",
	}

	require.NoError(t, repo.UpdateAddress(context.Background(), address))
}

func TestAddressRepository_UpdateAddress_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "addresses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAddress(context.Background(), &entity.Address{ID: 99, Postcode: "EC3A 8BF"})
	require.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_DeleteAddress(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM "addresses" WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteAddress(context.Background(), 5))
}

func TestAddressRepository_DeleteAddress_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM "addresses"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAddress(context.Background(), 99)
	require.ErrorIs(t, err, repository.ErrAddressNotFound)
}
