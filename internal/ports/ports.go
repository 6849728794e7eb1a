// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

// Finders return (nil, nil) when nothing matches.
type UserRepositoryPort interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByPersonalID(ctx context.Context, personalID string) (*domain.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error)
}

type TokenRepositoryPort interface {
	CreateToken(ctx context.Context, token *domain.Token) error
	FindToken(ctx context.Context, value string, typ domain.TokenType) (*domain.Token, error)
	DeleteUserTokens(ctx context.Context, userID uuid.UUID, typ domain.TokenType) error
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type OrderRepositoryPort interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	// UpdateOrderStatus only succeeds while the stored status still equals from.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, deliveredAt *time.Time, at time.Time) error
	CancelOrder(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// ErrCacheMiss is returned by CachePort.Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type TokenDenylistPort interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// NotifierPort sends transactional emails. Implementations must not block the
// caller on delivery and must swallow (log) delivery failures.
type NotifierPort interface {
	AccountCreated(ctx context.Context, user *domain.User, confirmToken string)
	UserConfirmed(ctx context.Context, user *domain.User, passwordToken string)
	PasswordResetRequested(ctx context.Context, user *domain.User, passwordToken string)
	OrderPlaced(ctx context.Context, user *domain.User, order *domain.Order)
	OrderStatusChanged(ctx context.Context, user *domain.User, order *domain.Order)
}

type EventPublisherPort interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}
