package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

const orderColumns = `o.id, o.reference, o.user_id, o.items, o.payment, o.tracking_number, o.shipper, o.status,
	o.country, o.subtotal, o.discount, o.total, o.business_name, o.business_id, o.estimated_delivery,
	o.delivered_at, o.created_at, o.updated_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.Reference, &o.UserID, &o.Items, &o.Payment, &o.TrackingNumber, &o.Shipper, &o.Status,
		&o.Country, &o.Subtotal, &o.Discount, &o.Total, &o.BusinessName, &o.BusinessID, &o.EstimatedDelivery,
		&o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, reference, user_id, items, payment, tracking_number, shipper, status,
			country, subtotal, discount, total, business_name, business_id, estimated_delivery,
			delivered_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.Reference, o.UserID, o.Items, o.Payment, o.TrackingNumber, o.Shipper, o.Status,
		o.Country, o.Subtotal, o.Discount, o.Total, o.BusinessName, o.BusinessID, o.EstimatedDelivery,
		o.DeliveredAt, o.CreatedAt, o.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *PostgresRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders o WHERE o.id = $1", id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error) {
	var (
		conds []string
		args  []any
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("o.user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, containsPattern(s))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(o.reference ILIKE $%d OR o.business_id ILIKE $%d OR o.business_name ILIKE $%d OR o.tracking_number ILIKE $%d OR u.email ILIKE $%d)",
			n, n, n, n, n))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	from := " FROM orders o JOIN users u ON u.id = o.user_id"

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := domain.NewPage(filter.Page.Page, filter.Page.PerPage)
	args = append(args, page.PerPage, page.Offset())
	query := fmt.Sprintf("SELECT %s%s%s ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d",
		orderColumns, from, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PostgresRepository) UpdateOrder(ctx context.Context, o *domain.Order) error {
	query := `
		UPDATE orders SET items = $2, payment = $3, tracking_number = $4, shipper = $5,
			subtotal = $6, total = $7, estimated_delivery = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		o.ID, o.Items, o.Payment, o.TrackingNumber, o.Shipper,
		o.Subtotal, o.Total, o.EstimatedDelivery, o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrOrderNotFound)
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, deliveredAt *time.Time, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $3, delivered_at = COALESCE($4, delivered_at), updated_at = $5 WHERE id = $1 AND status = $2",
		id, from, to, deliveredAt, at)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}
	var current domain.OrderStatus
	err = r.db.QueryRowContext(ctx, "SELECT status FROM orders WHERE id = $1", id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	return domain.Conflict(fmt.Sprintf("order status is %s, expected %s", current, from))
}

// CancelOrder cancels a pending order owned by userID.
func (r *PostgresRepository) CancelOrder(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = 'Cancelled', updated_at = $3 WHERE id = $1 AND user_id = $2 AND status = 'Pending'",
		id, userID, at)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}
	var owner uuid.UUID
	err = r.db.QueryRowContext(ctx, "SELECT user_id FROM orders WHERE id = $1", id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrNotOrderOwner
	}
	return domain.ErrOrderNotCancellable
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrOrderNotFound)
}

func requireRow(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
