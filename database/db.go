package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SSLMode string

const (
	SSLModeEnable  SSLMode = "enable"
	SSLModeDisable SSLMode = "disable"
)

const schema = `
	CREATE TABLE IF NOT EXISTS addresses (
		id UUID PRIMARY KEY,
		address_type_code VARCHAR(255),
		is_primary BOOLEAN,
		name VARCHAR(255),
		primary_contact_name VARCHAR(255),
		line1 VARCHAR(255) NOT NULL,
		line2 VARCHAR(255),
		line3 VARCHAR(255),
		city VARCHAR(255),
		state_or_province VARCHAR(255),
		country VARCHAR(255),
		zipcode VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS user_address (
		user_id UUID NOT NULL,
		address_id UUID NOT NULL REFERENCES addresses (id),
		relationship_type VARCHAR(20) NOT NULL CHECK (relationship_type IN ('OWNER', 'TENANT', 'OTHER'))
	);`

// ParseSSLMode maps a configured ssl mode onto a connection SSLMode,
// defaulting to disable for anything unrecognised
func ParseSSLMode(mode string) SSLMode {
	if mode == string(SSLModeEnable) {
		return SSLModeEnable
	}
	return SSLModeDisable
}

// Connect opens a pooled connection to the given database and verifies it with a ping
func Connect(host, port, databaseName, user, password string, sslMode SSLMode) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", host, port, user, password, databaseName, sslMode)
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the addresses and user_address tables if they do not exist yet
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return errors.Wrap(err, "failed to create tables")
}

// Tx provides the transaction wrapper: fn runs inside a transaction that is
// rolled back when fn errors and committed otherwise. A failed commit is
// returned to the caller, never swallowed.
func Tx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to start a transaction")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logrus.Errorf("failed to rollback tx: %s", rbErr)
			}
			return
		}
		err = errors.Wrap(tx.Commit(), "failed to commit tx")
	}()
	err = fn(tx)
	return err
}
