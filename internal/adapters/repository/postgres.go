// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

// PostgresRepository implements the user, token and order ports on top of
// database/sql with the lib/pq driver.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		business_name VARCHAR(255) NOT NULL,
		personal_id VARCHAR(32) NOT NULL,
		business_id VARCHAR(32) NOT NULL,
		id_type VARCHAR(8) NOT NULL,
		country VARCHAR(32) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		password VARCHAR(255) NOT NULL DEFAULT '',
		confirmed BOOLEAN NOT NULL DEFAULT FALSE,
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		admin BOOLEAN NOT NULL DEFAULT FALSE,
		discount INTEGER NOT NULL DEFAULT 0 CHECK (discount BETWEEN 0 AND 100),
		address TEXT NOT NULL,
		region VARCHAR(128) NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL DEFAULT '',
		province VARCHAR(128) NOT NULL DEFAULT '',
		reference TEXT NOT NULL DEFAULT '',
		postal_code VARCHAR(16) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT users_email_key UNIQUE (email),
		CONSTRAINT users_personal_id_key UNIQUE (personal_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tokens (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		value TEXT NOT NULL UNIQUE,
		type VARCHAR(32) NOT NULL CHECK (type IN ('admin_confirmation', 'password_reset')),
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS tokens_expires_at_idx ON tokens (expires_at)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		reference VARCHAR(32) NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		items JSONB NOT NULL DEFAULT '[]',
		payment VARCHAR(255) NOT NULL,
		tracking_number VARCHAR(255) NOT NULL DEFAULT '',
		shipper VARCHAR(255) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL CHECK (status IN ('Pending', 'Sent', 'Delivered', 'Cancelled')),
		country VARCHAR(32) NOT NULL,
		subtotal NUMERIC(14,2) NOT NULL,
		discount INTEGER NOT NULL DEFAULT 0,
		total NUMERIC(14,2) NOT NULL,
		business_name VARCHAR(255) NOT NULL,
		business_id VARCHAR(32) NOT NULL,
		estimated_delivery TIMESTAMPTZ,
		delivered_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_user_created_idx ON orders (user_id, created_at DESC)`,
}

// InitSchema creates the tables when they do not exist yet.
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	for _, q := range schema {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// mapWriteErr turns unique violations into domain conflicts and numeric
// overflows into invalid input.
func mapWriteErr(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Code == "22003" {
		return domain.InvalidField("items", "amount is out of range")
	}
	if pqErr.Code != "23505" {
		return err
	}
	switch pqErr.Constraint {
	case "users_email_key":
		return domain.ErrEmailTaken
	case "users_personal_id_key":
		return domain.ErrPersonalIDTaken
	default:
		return domain.Conflict("record already exists")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
