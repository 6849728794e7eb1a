// internal/application/order_service_test.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockCache struct {
	get    func(ctx context.Context, key string) ([]byte, error)
	set    func(ctx context.Context, key string, value interface{}) error
	delete func(ctx context.Context, prefix string) error
	ping   func(ctx context.Context) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.get(ctx, key)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}) error {
	return m.set(ctx, key, value)
}

func (m *mockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return m.delete(ctx, prefix)
}

func (m *mockCache) Ping(ctx context.Context) error {
	return m.ping(ctx)
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMockCache() *mockCache {
	return &mockCache{
		get:    func(ctx context.Context, key string) ([]byte, error) { return nil, ports.ErrCacheMiss },
		set:    func(ctx context.Context, key string, value interface{}) error { return nil },
		delete: func(ctx context.Context, prefix string) error { return nil },
		ping:   func(ctx context.Context) error { return nil },
	}
}

type orderFixture struct {
	orders   *ports.MockOrderRepositoryPort
	users    *ports.MockUserRepositoryPort
	notifier *ports.MockNotifierPort
	events   *ports.MockEventPublisherPort
	cache    *mockCache
	svc      *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &orderFixture{
		orders:   ports.NewMockOrderRepositoryPort(ctrl),
		users:    ports.NewMockUserRepositoryPort(ctrl),
		notifier: ports.NewMockNotifierPort(ctrl),
		events:   ports.NewMockEventPublisherPort(ctrl),
		cache:    newMockCache(),
	}
	f.svc = NewOrderService(f.orders, f.users, f.cache, f.notifier, f.events, zap.NewNop())
	return f
}

func client() *Principal {
	return &Principal{User: &domain.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		BusinessName: "Ferretería Sur",
		BusinessID:   "76.543.210-K",
		Country:      domain.CountryChile,
		Discount:     10,
		Confirmed:    true,
	}}
}

func admin() *Principal {
	return &Principal{User: &domain.User{ID: uuid.New(), Admin: true, Confirmed: true}, Admin: true}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleItems() []domain.OrderItem {
	return []domain.OrderItem{
		{SKU: "A-1", Name: "Perno", Price: dec("2.50"), Quantity: 4},
		{SKU: "B-2", Name: "Tuerca", Price: dec("0.75"), Quantity: 10},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		actor     *Principal
		input     func(actor *Principal) domain.NewOrder
		mockSetup func(f *orderFixture, actor *Principal)
		wantErr   error
		wantKind  domain.Kind
		wantTotal string
	}{
		{
			name:  "Successful order creation",
			actor: client(),
			input: func(*Principal) domain.NewOrder {
				return domain.NewOrder{Items: sampleItems(), Payment: "transfer"}
			},
			mockSetup: func(f *orderFixture, actor *Principal) {
				f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) error {
					if o.UserID != actor.User.ID || o.BusinessID != actor.User.BusinessID || o.Status != domain.StatusPending {
						t.Errorf("CreateOrder() order = %+v", o)
					}
					if !strings.HasPrefix(o.Reference, "SPT-") {
						t.Errorf("CreateOrder() reference = %s", o.Reference)
					}
					return nil
				})
				f.notifier.EXPECT().OrderPlaced(gomock.Any(), actor.User, gomock.Any())
				f.events.EXPECT().Publish(gomock.Any(), domain.EventOrderCreated, gomock.Any()).Return(nil)
			},
			wantTotal: "15.75",
		},
		{
			name:  "Admin creates for a client",
			actor: admin(),
			input: func(*Principal) domain.NewOrder {
				return domain.NewOrder{OwnerID: uuid.MustParse("6f1c1f9e-0000-4000-8000-000000000001"), Items: sampleItems(), Payment: "credit"}
			},
			mockSetup: func(f *orderFixture, actor *Principal) {
				owner := &domain.User{ID: uuid.MustParse("6f1c1f9e-0000-4000-8000-000000000001"), Email: "c@example.com"}
				f.users.EXPECT().FindUserByID(gomock.Any(), owner.ID).Return(owner, nil)
				f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
				f.notifier.EXPECT().OrderPlaced(gomock.Any(), owner, gomock.Any())
				f.events.EXPECT().Publish(gomock.Any(), domain.EventOrderCreated, gomock.Any()).Return(nil)
			},
			wantTotal: "17.50",
		},
		{
			name:  "Client cannot order for someone else",
			actor: client(),
			input: func(*Principal) domain.NewOrder {
				return domain.NewOrder{OwnerID: uuid.New(), Items: sampleItems(), Payment: "transfer"}
			},
			mockSetup: func(f *orderFixture, actor *Principal) {},
			wantErr:   domain.ErrAdminOnly,
		},
		{
			name:  "Missing payment",
			actor: client(),
			input: func(*Principal) domain.NewOrder {
				return domain.NewOrder{Items: sampleItems()}
			},
			mockSetup: func(f *orderFixture, actor *Principal) {},
			wantKind:  domain.KindInvalid,
		},
		{
			name:  "No items",
			actor: client(),
			input: func(*Principal) domain.NewOrder {
				return domain.NewOrder{Payment: "transfer"}
			},
			mockSetup: func(f *orderFixture, actor *Principal) {},
			wantKind:  domain.KindInvalid,
		},
		{
			name:  "Repository error",
			actor: client(),
			input: func(*Principal) domain.NewOrder {
				return domain.NewOrder{Items: sampleItems(), Payment: "transfer"}
			},
			mockSetup: func(f *orderFixture, actor *Principal) {
				f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantKind: domain.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			invalidated := 0
			f.cache.delete = func(ctx context.Context, prefix string) error {
				invalidated++
				return nil
			}
			tt.mockSetup(f, tt.actor)
			order, err := f.svc.CreateOrder(context.Background(), tt.actor, tt.input(tt.actor))
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateOrder() error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.wantTotal == "":
				if err == nil || domain.KindOf(err) != tt.wantKind {
					t.Errorf("CreateOrder() error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateOrder() unexpected error: %v", err)
			}
			if order.Total.StringFixed(2) != tt.wantTotal {
				t.Errorf("CreateOrder() total = %s, want %s", order.Total.StringFixed(2), tt.wantTotal)
			}
			if invalidated != 2 {
				t.Errorf("CreateOrder() invalidated %d prefixes, want 2", invalidated)
			}
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("Client is scoped to own orders and result is cached", func(t *testing.T) {
		f := newOrderFixture(t)
		actor := client()
		var cachedKey string
		f.cache.set = func(ctx context.Context, key string, value interface{}) error {
			cachedKey = key
			return nil
		}
		f.orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error) {
			if filter.UserID == nil || *filter.UserID != actor.User.ID {
				t.Errorf("ListOrders() not scoped to caller")
			}
			return []*domain.Order{{ID: uuid.New()}}, 21, nil
		})

		page, err := f.svc.ListOrders(context.Background(), actor, domain.OrderFilter{Page: domain.Page{Page: 1, PerPage: 10}})
		if err != nil {
			t.Fatalf("ListOrders() unexpected error: %v", err)
		}
		if page.TotalPages != 3 || page.Total != 21 {
			t.Errorf("ListOrders() page = %+v", page)
		}
		if !strings.HasPrefix(cachedKey, "orders:"+actor.User.ID.String()+":") {
			t.Errorf("ListOrders() cache key = %s", cachedKey)
		}
	})

	t.Run("Cache hit skips the repository", func(t *testing.T) {
		f := newOrderFixture(t)
		cached, _ := json.Marshal(domain.OrderPage{Total: 1, TotalPages: 1, Page: 1, PerPage: 10})
		f.cache.get = func(ctx context.Context, key string) ([]byte, error) {
			if !strings.HasPrefix(key, "orders:all:") {
				t.Errorf("admin list key = %s", key)
			}
			return cached, nil
		}
		page, err := f.svc.ListOrders(context.Background(), admin(), domain.OrderFilter{})
		if err != nil || page.Total != 1 {
			t.Errorf("ListOrders() = %+v, %v", page, err)
		}
	})

	t.Run("Cache failure falls back to the repository and is logged", func(t *testing.T) {
		f := newOrderFixture(t)
		core, logs := observer.New(zap.WarnLevel)
		f.svc = NewOrderService(f.orders, f.users, f.cache, f.notifier, f.events, zap.New(core))
		f.cache.get = func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("connection refused")
		}
		f.orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return([]*domain.Order{{ID: uuid.New()}}, int64(1), nil)

		page, err := f.svc.ListOrders(context.Background(), admin(), domain.OrderFilter{})
		if err != nil || page.Total != 1 {
			t.Fatalf("ListOrders() = %+v, %v", page, err)
		}
		if logs.FilterMessage("read order list cache").Len() != 1 {
			t.Errorf("ListOrders() cache failure not logged: %v", logs.All())
		}
	})

	t.Run("Cache miss is not logged", func(t *testing.T) {
		f := newOrderFixture(t)
		core, logs := observer.New(zap.WarnLevel)
		f.svc = NewOrderService(f.orders, f.users, f.cache, f.notifier, f.events, zap.New(core))
		f.orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

		if _, err := f.svc.ListOrders(context.Background(), admin(), domain.OrderFilter{}); err != nil {
			t.Fatalf("ListOrders() unexpected error: %v", err)
		}
		if logs.Len() != 0 {
			t.Errorf("ListOrders() logged on a plain miss: %v", logs.All())
		}
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.svc.ListOrders(context.Background(), admin(), domain.OrderFilter{Status: "Lost"})
		if domain.KindOf(err) != domain.KindInvalid {
			t.Errorf("ListOrders() error = %v, want invalid", err)
		}
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := client()
	order := &domain.Order{ID: uuid.New(), UserID: owner.User.ID}

	tests := []struct {
		name    string
		actor   *Principal
		found   *domain.Order
		wantErr error
	}{
		{name: "Owner", actor: owner, found: order},
		{name: "Admin", actor: admin(), found: order},
		{name: "Another client", actor: client(), found: order, wantErr: domain.ErrNotOrderOwner},
		{name: "Missing", actor: owner, wantErr: domain.ErrOrderNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			f.orders.EXPECT().FindOrderByID(gomock.Any(), order.ID).Return(tt.found, nil)
			_, err := f.svc.GetOrder(context.Background(), tt.actor, order.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetOrder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.OrderStatus
		to        domain.OrderStatus
		wantKind  domain.Kind
		wantEmail bool
	}{
		{name: "Pending to Sent", from: domain.StatusPending, to: domain.StatusSent, wantEmail: true},
		{name: "Sent to Delivered", from: domain.StatusSent, to: domain.StatusDelivered, wantEmail: true},
		{name: "Sent to Cancelled", from: domain.StatusSent, to: domain.StatusCancelled, wantEmail: true},
		{name: "Delivered is terminal", from: domain.StatusDelivered, to: domain.StatusSent, wantKind: domain.KindConflict},
		{name: "Pending to Delivered skips a step", from: domain.StatusPending, to: domain.StatusDelivered, wantKind: domain.KindConflict},
		{name: "Same status", from: domain.StatusSent, to: domain.StatusSent, wantKind: domain.KindConflict},
		{name: "Unknown status", from: domain.StatusPending, to: "Lost", wantKind: domain.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			owner := &domain.User{ID: uuid.New(), Email: "ana@example.com"}
			order := &domain.Order{ID: uuid.New(), UserID: owner.ID, Status: tt.from}
			f.orders.EXPECT().FindOrderByID(gomock.Any(), order.ID).Return(order, nil)
			if tt.wantEmail {
				f.orders.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, tt.from, tt.to, gomock.Any(), gomock.Any()).Return(nil)
				f.users.EXPECT().FindUserByID(gomock.Any(), owner.ID).Return(owner, nil)
				f.notifier.EXPECT().OrderStatusChanged(gomock.Any(), owner, gomock.Any())
				f.events.EXPECT().Publish(gomock.Any(), domain.EventOrderStatusChanged, gomock.Any()).Return(nil)
			}

			got, err := f.svc.UpdateStatus(context.Background(), admin(), order.ID, tt.to)
			if !tt.wantEmail {
				if domain.KindOf(err) != tt.wantKind {
					t.Errorf("UpdateStatus() error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus() unexpected error: %v", err)
			}
			if got.Status != tt.to {
				t.Errorf("UpdateStatus() status = %s, want %s", got.Status, tt.to)
			}
			if (tt.to == domain.StatusDelivered) != (got.DeliveredAt != nil) {
				t.Errorf("UpdateStatus() deliveredAt = %v", got.DeliveredAt)
			}
		})
	}

	t.Run("Client cannot change status", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.svc.UpdateStatus(context.Background(), client(), uuid.New(), domain.StatusSent); !errors.Is(err, domain.ErrAdminOnly) {
			t.Errorf("UpdateStatus() error = %v", err)
		}
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	owner := client()

	tests := []struct {
		name      string
		actor     *Principal
		status    domain.OrderStatus
		mockSetup func(f *orderFixture, order *domain.Order)
		wantErr   error
	}{
		{
			name:   "Owner cancels pending order",
			actor:  owner,
			status: domain.StatusPending,
			mockSetup: func(f *orderFixture, order *domain.Order) {
				f.orders.EXPECT().CancelOrder(gomock.Any(), order.ID, owner.User.ID, fixedNow).Return(nil)
				f.users.EXPECT().FindUserByID(gomock.Any(), owner.User.ID).Return(owner.User, nil)
				f.notifier.EXPECT().OrderStatusChanged(gomock.Any(), owner.User, gomock.Any())
				f.events.EXPECT().Publish(gomock.Any(), domain.EventOrderStatusChanged, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Sent order cannot be cancelled by the client",
			actor:     owner,
			status:    domain.StatusSent,
			mockSetup: func(f *orderFixture, order *domain.Order) {},
			wantErr:   domain.ErrOrderNotCancellable,
		},
		{
			name:      "Not the owner",
			actor:     client(),
			status:    domain.StatusPending,
			mockSetup: func(f *orderFixture, order *domain.Order) {},
			wantErr:   domain.ErrNotOrderOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			f.svc.now = func() time.Time { return fixedNow }
			order := &domain.Order{ID: uuid.New(), UserID: owner.User.ID, Status: tt.status}
			f.orders.EXPECT().FindOrderByID(gomock.Any(), order.ID).Return(order, nil)
			tt.mockSetup(f, order)

			got, err := f.svc.CancelOrder(context.Background(), tt.actor, order.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CancelOrder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got.Status != domain.StatusCancelled {
				t.Errorf("CancelOrder() = %v, %v", got, err)
			}
			if !got.UpdatedAt.Equal(fixedNow) {
				t.Errorf("CancelOrder() updatedAt = %v, want %v", got.UpdatedAt, fixedNow)
			}
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	f := newOrderFixture(t)
	order := &domain.Order{ID: uuid.New(), UserID: uuid.New(), Status: domain.StatusPending, Discount: 20, Payment: "transfer"}
	f.orders.EXPECT().FindOrderByID(gomock.Any(), order.ID).Return(order, nil)
	f.orders.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil)

	tracking := "TRK-99"
	got, err := f.svc.UpdateOrder(context.Background(), admin(), order.ID, domain.OrderUpdate{
		TrackingNumber: &tracking,
		Items:          []domain.OrderItem{{SKU: "A-1", Name: "Perno", Price: dec("10"), Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("UpdateOrder() unexpected error: %v", err)
	}
	if got.TrackingNumber != "TRK-99" || got.Subtotal.StringFixed(2) != "30.00" || got.Total.StringFixed(2) != "24.00" {
		t.Errorf("UpdateOrder() = %+v", got)
	}

	delivered := &domain.Order{ID: uuid.New(), Status: domain.StatusDelivered}
	f.orders.EXPECT().FindOrderByID(gomock.Any(), delivered.ID).Return(delivered, nil)
	if _, err := f.svc.UpdateOrder(context.Background(), admin(), delivered.ID, domain.OrderUpdate{}); domain.KindOf(err) != domain.KindConflict {
		t.Errorf("UpdateOrder() delivered error = %v", err)
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	f := newOrderFixture(t)
	id := uuid.New()
	f.orders.EXPECT().FindOrderByID(gomock.Any(), id).Return(&domain.Order{ID: id, UserID: uuid.New()}, nil)
	f.orders.EXPECT().DeleteOrder(gomock.Any(), id).Return(nil)
	if err := f.svc.DeleteOrder(context.Background(), admin(), id); err != nil {
		t.Errorf("DeleteOrder() unexpected error: %v", err)
	}
	if err := f.svc.DeleteOrder(context.Background(), client(), id); !errors.Is(err, domain.ErrAdminOnly) {
		t.Errorf("DeleteOrder() client error = %v", err)
	}
}
