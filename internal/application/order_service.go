// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/metrics"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"go.uber.org/zap"
)

type OrderService struct {
	orders   ports.OrderRepositoryPort
	users    ports.UserRepositoryPort
	cache    ports.CachePort
	notifier ports.NotifierPort
	events   ports.EventPublisherPort
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(
	orders ports.OrderRepositoryPort,
	users ports.UserRepositoryPort,
	cache ports.CachePort,
	notifier ports.NotifierPort,
	events ports.EventPublisherPort,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		cache:    cache,
		notifier: notifier,
		events:   events,
		logger:   logger,
		now:      nowUTC,
	}
}

// CreateOrder places an order for the caller, or for in.OwnerID when the
// caller is an administrator. Business data and discount come from the owner.
func (s *OrderService) CreateOrder(ctx context.Context, actor *Principal, in domain.NewOrder) (*domain.Order, error) {
	owner := actor.User
	if in.OwnerID != uuid.Nil && in.OwnerID != actor.User.ID {
		if !actor.Admin {
			return nil, domain.ErrAdminOnly
		}
		u, err := s.users.FindUserByID(ctx, in.OwnerID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, domain.ErrUserNotFound
		}
		owner = u
	}
	payment := strings.TrimSpace(in.Payment)
	if payment == "" {
		return nil, domain.InvalidField("payment", "payment method is required")
	}
	items, subtotal, err := domain.PriceItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	id := uuid.New()
	order := &domain.Order{
		ID:                id,
		Reference:         domain.NewReference(id, now),
		UserID:            owner.ID,
		Items:             items,
		Payment:           payment,
		TrackingNumber:    strings.TrimSpace(in.TrackingNumber),
		Shipper:           strings.TrimSpace(in.Shipper),
		Status:            domain.StatusPending,
		Country:           owner.Country,
		Subtotal:          subtotal,
		Discount:          owner.Discount,
		Total:             domain.ApplyDiscount(subtotal, owner.Discount),
		BusinessName:      owner.BusinessName,
		BusinessID:        owner.BusinessID,
		EstimatedDelivery: in.EstimatedDelivery,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	metrics.OrdersCreated.Inc()
	s.invalidate(ctx, owner.ID)

	s.notifier.OrderPlaced(ctx, owner, order)
	publish(ctx, s.events, s.logger, domain.EventOrderCreated, newOrderEvent(order, ""))
	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("reference", order.Reference),
		zap.String("user_id", owner.ID.String()),
	)
	return order, nil
}

// ListOrders pages through orders newest first. Non administrators only see
// their own orders. Results are cached per scope and query.
func (s *OrderService) ListOrders(ctx context.Context, actor *Principal, filter domain.OrderFilter) (*domain.OrderPage, error) {
	if !actor.Admin {
		id := actor.User.ID
		filter.UserID = &id
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.InvalidField("status", fmt.Sprintf("unknown order status %q", filter.Status))
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Page = domain.NewPage(filter.Page.Page, filter.Page.PerPage)

	key := listCacheKey(filter)
	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var page domain.OrderPage
		if err := json.Unmarshal(data, &page); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return &page, nil
		}
		s.logger.Warn("discard undecodable order list", zap.String("key", key))
		metrics.CacheLookups.WithLabelValues("error").Inc()
	case errors.Is(err, ports.ErrCacheMiss):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	default:
		s.logger.Warn("read order list cache", zap.String("key", key), zap.Error(err))
		metrics.CacheLookups.WithLabelValues("error").Inc()
	}

	orders, total, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := &domain.OrderPage{
		Orders:     orders,
		Total:      total,
		TotalPages: filter.Page.TotalPages(total),
		Page:       filter.Page.Page,
		PerPage:    filter.Page.PerPage,
	}
	if err := s.cache.Set(ctx, key, page); err != nil {
		s.logger.Warn("cache order list", zap.String("key", key), zap.Error(err))
	}
	return page, nil
}

func (s *OrderService) GetOrder(ctx context.Context, actor *Principal, id uuid.UUID) (*domain.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(order.UserID) {
		return nil, domain.ErrNotOrderOwner
	}
	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, actor *Principal, id uuid.UUID, upd domain.OrderUpdate) (*domain.Order, error) {
	if !actor.Admin {
		return nil, domain.ErrAdminOnly
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.StatusDelivered || order.Status == domain.StatusCancelled {
		return nil, domain.Conflict(fmt.Sprintf("a %s order can no longer be edited", strings.ToLower(string(order.Status))))
	}
	if upd.Payment != nil {
		p := strings.TrimSpace(*upd.Payment)
		if p == "" {
			return nil, domain.InvalidField("payment", "payment method is required")
		}
		order.Payment = p
	}
	if upd.TrackingNumber != nil {
		order.TrackingNumber = strings.TrimSpace(*upd.TrackingNumber)
	}
	if upd.Shipper != nil {
		order.Shipper = strings.TrimSpace(*upd.Shipper)
	}
	if upd.EstimatedDelivery != nil {
		order.EstimatedDelivery = upd.EstimatedDelivery
	}
	if upd.Items != nil {
		order.Items = upd.Items
		if err := order.Reprice(); err != nil {
			return nil, err
		}
	}
	order.UpdatedAt = s.now()
	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.invalidate(ctx, order.UserID)
	return order, nil
}

// UpdateStatus moves an order along the status table and emails the owner.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *Principal, id uuid.UUID, next domain.OrderStatus) (*domain.Order, error) {
	if !actor.Admin {
		return nil, domain.ErrAdminOnly
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := order.Status
	if err := prev.CheckTransition(next); err != nil {
		return nil, err
	}
	now := s.now()
	var deliveredAt *time.Time
	if next == domain.StatusDelivered {
		deliveredAt = &now
	}
	if err := s.orders.UpdateOrderStatus(ctx, order.ID, prev, next, deliveredAt, now); err != nil {
		return nil, err
	}
	order.Status = next
	if deliveredAt != nil {
		order.DeliveredAt = deliveredAt
	}
	order.UpdatedAt = now
	s.statusChanged(ctx, order, prev)
	return order, nil
}

// CancelOrder lets an owner withdraw an order that has not been sent yet.
func (s *OrderService) CancelOrder(ctx context.Context, actor *Principal, id uuid.UUID) (*domain.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.User.ID {
		return nil, domain.ErrNotOrderOwner
	}
	if order.Status != domain.StatusPending {
		return nil, domain.ErrOrderNotCancellable
	}
	now := s.now()
	if err := s.orders.CancelOrder(ctx, order.ID, actor.User.ID, now); err != nil {
		return nil, err
	}
	order.Status = domain.StatusCancelled
	order.UpdatedAt = now
	s.statusChanged(ctx, order, domain.StatusPending)
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, actor *Principal, id uuid.UUID) error {
	if !actor.Admin {
		return domain.ErrAdminOnly
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.DeleteOrder(ctx, order.ID); err != nil {
		return err
	}
	s.invalidate(ctx, order.UserID)
	s.logger.Info("order deleted", zap.String("order_id", order.ID.String()), zap.String("by", actor.User.ID.String()))
	return nil
}

func (s *OrderService) findOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) statusChanged(ctx context.Context, order *domain.Order, prev domain.OrderStatus) {
	metrics.OrderStatusTransitions.WithLabelValues(string(prev), string(order.Status)).Inc()
	s.invalidate(ctx, order.UserID)
	publish(ctx, s.events, s.logger, domain.EventOrderStatusChanged, newOrderEvent(order, prev))

	owner, err := s.users.FindUserByID(ctx, order.UserID)
	if err != nil || owner == nil {
		s.logger.Error("status email skipped, owner not loaded",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
		return
	}
	s.notifier.OrderStatusChanged(ctx, owner, order)
}

func listCacheKey(f domain.OrderFilter) string {
	return fmt.Sprintf("%s%s:%d:%d:%s", scopePrefix(f.UserID), f.Status, f.Page.Page, f.Page.PerPage, strings.ToLower(f.Search))
}

func scopePrefix(userID *uuid.UUID) string {
	if userID == nil {
		return "orders:all:"
	}
	return "orders:" + userID.String() + ":"
}

// invalidate drops cached lists that may contain orders of userID.
func (s *OrderService) invalidate(ctx context.Context, userID uuid.UUID) {
	for _, prefix := range []string{scopePrefix(&userID), scopePrefix(nil)} {
		if err := s.cache.DeleteByPrefix(ctx, prefix); err != nil {
			s.logger.Warn("invalidate order cache", zap.String("prefix", prefix), zap.Error(err))
		}
	}
}
