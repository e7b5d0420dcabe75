package dbHelpers

import (
	"context"

	"github.com/addressly/address-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// UserAddressRepo owns the user_address join table linking users to addresses.
type UserAddressRepo struct {
	db *sqlx.DB
}

func NewUserAddressRepo(db *sqlx.DB) *UserAddressRepo {
	return &UserAddressRepo{db: db}
}

//Insert persists a new relationship row; the relationship type is checked
//before the statement runs so bad values never reach the store
func (r *UserAddressRepo) Insert(ctx context.Context, tx *sqlx.Tx, userID, addressID string, relationshipType models.RelationshipType) error {
	if !relationshipType.Valid() {
		return errors.Wrapf(models.ErrValidation, "relationship_type %q", relationshipType)
	}
	query := `INSERT INTO user_address (user_id, address_id, relationship_type) VALUES ($1, $2, $3)`

	_, err := tx.ExecContext(ctx, query, userID, addressID, relationshipType)
	return err
}

//UpdateByAddressAndUser changes the relationship type of the row matching both ids
func (r *UserAddressRepo) UpdateByAddressAndUser(ctx context.Context, tx *sqlx.Tx, addressID, userID string, relationshipType models.RelationshipType) error {
	if !relationshipType.Valid() {
		return errors.Wrapf(models.ErrValidation, "relationship_type %q", relationshipType)
	}
	query := `UPDATE user_address SET relationship_type = $1 WHERE address_id = $2 AND user_id = $3`

	res, err := tx.ExecContext(ctx, query, relationshipType, addressID, userID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.Wrapf(models.ErrNotFound, "relation for address %s and user %s", addressID, userID)
	}
	return nil
}

//DeleteByAddress removes every relationship row referencing the given address
func (r *UserAddressRepo) DeleteByAddress(ctx context.Context, tx *sqlx.Tx, addressID string) error {
	query := `DELETE FROM user_address WHERE address_id = $1`

	_, err := tx.ExecContext(ctx, query, addressID)
	return err
}

//CountByType returns the number of relationship rows per relationship type
func (r *UserAddressRepo) CountByType(ctx context.Context) ([]models.RelationTypeCount, error) {
	query := `SELECT relationship_type, count(*) AS count FROM user_address GROUP BY relationship_type`

	counts := make([]models.RelationTypeCount, 0)
	err := r.db.SelectContext(ctx, &counts, query)
	return counts, err
}
