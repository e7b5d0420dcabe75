package dbHelpers

import (
	"context"
	"database/sql"

	"github.com/addressly/address-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// AddressRepo owns every statement that touches the addresses table.
type AddressRepo struct {
	db *sqlx.DB
}

func NewAddressRepo(db *sqlx.DB) *AddressRepo {
	return &AddressRepo{db: db}
}

//Insert persists a new address row with the id already set on the model
func (r *AddressRepo) Insert(ctx context.Context, tx *sqlx.Tx, address models.Address) error {
	query := `INSERT INTO addresses (id, address_type_code, is_primary, name, primary_contact_name, line1, line2, line3, city, state_or_province, country, zipcode)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.ExecContext(ctx, query, address.ID, address.AddressTypeCode, address.IsPrimary, address.Name, address.PrimaryContactName,
		address.Line1, address.Line2, address.Line3, address.City, address.StateOrProvince, address.Country, address.Zipcode)
	return err
}

//GetByID returns the full address row for the given id
func (r *AddressRepo) GetByID(ctx context.Context, id string) (models.Address, error) {
	query := `SELECT id, address_type_code, is_primary, name, primary_contact_name, line1, line2, line3, city, state_or_province, country, zipcode
				FROM addresses
				WHERE id = $1`

	var address models.Address
	err := r.db.GetContext(ctx, &address, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Address{}, errors.Wrapf(models.ErrNotFound, "address %s", id)
	}
	return address, err
}

//Update replaces all descriptive fields of the row matching id; a missing row
//is reported through the rows-affected count, never as a silent no-op
func (r *AddressRepo) Update(ctx context.Context, tx *sqlx.Tx, id string, address models.Address) error {
	query := `UPDATE addresses
				SET address_type_code = $1, is_primary = $2, name = $3, primary_contact_name = $4, line1 = $5, line2 = $6, line3 = $7, city = $8, state_or_province = $9, country = $10, zipcode = $11
				WHERE id = $12`

	res, err := tx.ExecContext(ctx, query, address.AddressTypeCode, address.IsPrimary, address.Name, address.PrimaryContactName,
		address.Line1, address.Line2, address.Line3, address.City, address.StateOrProvince, address.Country, address.Zipcode, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.Wrapf(models.ErrNotFound, "address %s", id)
	}
	return nil
}

//Delete removes the row matching id
func (r *AddressRepo) Delete(ctx context.Context, tx *sqlx.Tx, id string) error {
	query := `DELETE FROM addresses WHERE id = $1`

	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.Wrapf(models.ErrNotFound, "address %s", id)
	}
	return nil
}

//Count returns the total number of address rows
func (r *AddressRepo) Count(ctx context.Context) (int, error) {
	query := `SELECT count(*) FROM addresses`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
