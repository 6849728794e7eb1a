package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

const userColumns = `id, name, business_name, personal_id, business_id, id_type, country, email, phone,
	password, confirmed, password_set, admin, discount, address, region, city, province, reference,
	postal_code, created_at, updated_at`

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.BusinessName, &u.PersonalID, &u.BusinessID, &u.IDType, &u.Country, &u.Email, &u.Phone,
		&u.Password, &u.Confirmed, &u.PasswordSet, &u.Admin, &u.Discount, &u.Address, &u.Region, &u.City, &u.Province, &u.Reference,
		&u.PostalCode, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.BusinessName, u.PersonalID, u.BusinessID, u.IDType, u.Country, u.Email, u.Phone,
		u.Password, u.Confirmed, u.PasswordSet, u.Admin, u.Discount, u.Address, u.Region, u.City, u.Province, u.Reference,
		u.PostalCode, u.CreatedAt, u.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *PostgresRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findUser(ctx, "id = $1", id)
}

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = $1", strings.ToLower(strings.TrimSpace(email)))
}

func (r *PostgresRepository) FindUserByPersonalID(ctx context.Context, personalID string) (*domain.User, error) {
	return r.findUser(ctx, "personal_id = $1", personalID)
}

func (r *PostgresRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findUser(ctx, "phone = $1", phone)
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users SET name = $2, business_name = $3, email = $4, phone = $5, password = $6,
			confirmed = $7, password_set = $8, admin = $9, discount = $10, address = $11,
			region = $12, city = $13, province = $14, reference = $15, postal_code = $16, updated_at = $17
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.BusinessName, u.Email, u.Phone, u.Password,
		u.Confirmed, u.PasswordSet, u.Admin, u.Discount, u.Address,
		u.Region, u.City, u.Province, u.Reference, u.PostalCode, u.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireRow(res, domain.ErrUserNotFound)
}

func (r *PostgresRepository) ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Confirmed != nil {
		args = append(args, *filter.Confirmed)
		conds = append(conds, fmt.Sprintf("confirmed = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, containsPattern(s))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(personal_id ILIKE $%d OR business_id ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := domain.NewPage(filter.Page.Page, filter.Page.PerPage)
	args = append(args, page.PerPage, page.Offset())
	query := fmt.Sprintf("SELECT %s FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
