package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Principal is the authenticated caller of a request.
type Principal struct {
	User      *domain.User
	Admin     bool
	TokenID   string
	ExpiresAt time.Time
}

func (p *Principal) CanAccess(userID uuid.UUID) bool {
	return p.Admin || p.User.ID == userID
}

func hashPassword(password string, cost int) (string, error) {
	if len(password) < minPasswordLength {
		return "", domain.InvalidField("password", "password must be at least 8 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", domain.Internal("failed to hash password", err)
	}
	return string(hashed), nil
}

type userEvent struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName"`
}

type orderEvent struct {
	OrderID        uuid.UUID          `json:"orderId"`
	Reference      string             `json:"reference"`
	UserID         uuid.UUID          `json:"userId"`
	Status         domain.OrderStatus `json:"status"`
	PreviousStatus domain.OrderStatus `json:"previousStatus,omitempty"`
	Total          string             `json:"total"`
}

func newOrderEvent(o *domain.Order, prev domain.OrderStatus) orderEvent {
	return orderEvent{
		OrderID:        o.ID,
		Reference:      o.Reference,
		UserID:         o.UserID,
		Status:         o.Status,
		PreviousStatus: prev,
		Total:          o.Total.StringFixed(2),
	}
}

// publish never fails the caller; events are best effort.
func publish(ctx context.Context, pub ports.EventPublisherPort, logger *zap.Logger, subject string, payload interface{}) {
	if err := pub.Publish(ctx, subject, payload); err != nil {
		logger.Error("publish event", zap.String("subject", subject), zap.Error(err))
	}
}
