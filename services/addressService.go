package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/addressly/address-server/database"
	"github.com/addressly/address-server/dbHelpers"
	"github.com/addressly/address-server/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Upper bound for a single service operation against the store.
const storeTimeout = 5 * time.Second

// postgres error classes worth distinguishing for callers
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

// AddressService composes the address and relationship repositories into the
// caller-facing operations. Every multi-statement write runs inside a single
// transaction so a mid-sequence failure leaves no partial rows behind.
type AddressService struct {
	db        *sqlx.DB
	addresses *dbHelpers.AddressRepo
	relations *dbHelpers.UserAddressRepo
}

func NewAddressService(db *sqlx.DB, addresses *dbHelpers.AddressRepo, relations *dbHelpers.UserAddressRepo) *AddressService {
	return &AddressService{db: db, addresses: addresses, relations: relations}
}

// CreateAddress inserts the address row and its relationship row in one
// transaction and returns the generated address id. The caller's user id is
// used when supplied; a fresh one is generated otherwise.
func (s *AddressService) CreateAddress(ctx context.Context, user models.UserRelation, address models.Address) (string, error) {
	if !user.RelationshipType.Valid() {
		return "", errors.Wrapf(models.ErrValidation, "relationship_type %q", user.RelationshipType)
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	address.ID = uuid.NewString()
	userID := user.ID
	if userID == "" {
		userID = uuid.NewString()
	}

	err := database.Tx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.addresses.Insert(ctx, tx, address); err != nil {
			return err
		}
		return s.relations.Insert(ctx, tx, userID, address.ID, user.RelationshipType)
	})
	if err != nil {
		return "", translateStoreError(err)
	}
	return address.ID, nil
}

// GetAddressByID returns the full address row for the given id.
func (s *AddressService) GetAddressByID(ctx context.Context, id string) (models.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	address, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return models.Address{}, translateStoreError(err)
	}
	return address, nil
}

// UpdateAddress replaces the address row and retargets the relationship row
// keyed by (id, user.ID) in one transaction. A missing address or relation
// rolls the whole operation back.
func (s *AddressService) UpdateAddress(ctx context.Context, id string, address models.Address, user models.UserRelation) error {
	if !user.RelationshipType.Valid() {
		return errors.Wrapf(models.ErrValidation, "relationship_type %q", user.RelationshipType)
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := database.Tx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.addresses.Update(ctx, tx, id, address); err != nil {
			return err
		}
		return s.relations.UpdateByAddressAndUser(ctx, tx, id, user.ID, user.RelationshipType)
	})
	return translateStoreError(err)
}

// DeleteAddress removes the address and every relationship row referencing it
// in one transaction, so the join table never holds a dangling address id.
// Deleting a missing address reports NotFound.
func (s *AddressService) DeleteAddress(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := database.Tx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.relations.DeleteByAddress(ctx, tx, id); err != nil {
			return err
		}
		return s.addresses.Delete(ctx, tx, id)
	})
	return translateStoreError(err)
}

// translateStoreError converts raw store failures into the error kinds callers
// are allowed to see. Errors that already carry a kind pass through untouched.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrConflict):
		return err
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", models.ErrTimeout, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqCheckViolation:
			return fmt.Errorf("%w: %v", models.ErrValidation, err)
		case pqForeignKeyViolation, pqUniqueViolation:
			return fmt.Errorf("%w: %v", models.ErrConflict, err)
		}
	}
	return fmt.Errorf("%w: %v", models.ErrStore, err)
}
