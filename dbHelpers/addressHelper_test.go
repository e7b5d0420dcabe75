package dbHelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/addressly/address-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
)

var addressColumns = []string{
	"id", "address_type_code", "is_primary", "name", "primary_contact_name",
	"line1", "line2", "line3", "city", "state_or_province", "country", "zipcode",
}

func fixtureAddress() models.Address {
	return models.Address{
		ID:                 "0b0f8a53-9a62-4a51-a8a4-6a5e4d2e8b11",
		AddressTypeCode:    "BILLING",
		IsPrimary:          true,
		Name:               "Head office",
		PrimaryContactName: "Jane Doe",
		Line1:              "1 Main St",
		Line2:              null.StringFrom("Suite 4"),
		City:               "Springfield",
		StateOrProvince:    "IL",
		Country:            "US",
		Zipcode:            "62701",
	}
}

func TestAddressRepoInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)
	address := fixtureAddress()

	tx := newMockTx(t, db, mock)
	mock.ExpectExec("INSERT INTO addresses").
		WithArgs(address.ID, address.AddressTypeCode, address.IsPrimary, address.Name, address.PrimaryContactName,
			address.Line1, address.Line2, address.Line3, address.City, address.StateOrProvince, address.Country, address.Zipcode).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Insert(context.Background(), tx, address))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepoGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)
	address := fixtureAddress()

	mock.ExpectQuery("SELECT (.+) FROM addresses").
		WithArgs(address.ID).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(address.ID, address.AddressTypeCode, address.IsPrimary, address.Name, address.PrimaryContactName,
				address.Line1, "Suite 4", nil, address.City, address.StateOrProvince, address.Country, address.Zipcode))

	got, err := repo.GetByID(context.Background(), address.ID)
	require.NoError(t, err)
	assert.Equal(t, address, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM addresses").
		WithArgs("51cbf0b8-9a62-4a51-a8a4-6a5e4d2e8b11").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "51cbf0b8-9a62-4a51-a8a4-6a5e4d2e8b11")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddressRepoUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)
	address := fixtureAddress()

	tx := newMockTx(t, db, mock)
	mock.ExpectExec("UPDATE addresses").
		WithArgs(address.AddressTypeCode, address.IsPrimary, address.Name, address.PrimaryContactName,
			address.Line1, address.Line2, address.Line3, address.City, address.StateOrProvince, address.Country, address.Zipcode, address.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), tx, address.ID, address))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepoUpdateMissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)
	address := fixtureAddress()

	tx := newMockTx(t, db, mock)
	mock.ExpectExec("UPDATE addresses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), tx, address.ID, address)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddressRepoDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)

	tx := newMockTx(t, db, mock)
	mock.ExpectExec("DELETE FROM addresses").
		WithArgs("0b0f8a53-9a62-4a51-a8a4-6a5e4d2e8b11").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), tx, "0b0f8a53-9a62-4a51-a8a4-6a5e4d2e8b11"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepoDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)

	tx := newMockTx(t, db, mock)
	mock.ExpectExec("DELETE FROM addresses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), tx, "0b0f8a53-9a62-4a51-a8a4-6a5e4d2e8b11")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddressRepoCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepo(db)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
