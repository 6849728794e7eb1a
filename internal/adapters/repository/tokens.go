package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

const tokenColumns = `id, user_id, value, type, created_at, expires_at`

func scanToken(row rowScanner) (*domain.Token, error) {
	t := &domain.Token{}
	if err := row.Scan(&t.ID, &t.UserID, &t.Value, &t.Type, &t.CreatedAt, &t.ExpiresAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresRepository) CreateToken(ctx context.Context, t *domain.Token) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tokens ("+tokenColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		t.ID, t.UserID, t.Value, t.Type, t.CreatedAt, t.ExpiresAt)
	return mapWriteErr(err)
}

func (r *PostgresRepository) FindToken(ctx context.Context, value string, typ domain.TokenType) (*domain.Token, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+tokenColumns+" FROM tokens WHERE value = $1 AND type = $2", value, typ)
	t, err := scanToken(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *PostgresRepository) DeleteUserTokens(ctx context.Context, userID uuid.UUID, typ domain.TokenType) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tokens WHERE user_id = $1 AND type = $2", userID, typ)
	return err
}

func (r *PostgresRepository) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tokens WHERE expires_at <= $1", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
