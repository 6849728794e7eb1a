package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"go.uber.org/zap"
)

// UserService holds the administrator operations on client accounts.
type UserService struct {
	users  ports.UserRepositoryPort
	logger *zap.Logger
}

func NewUserService(users ports.UserRepositoryPort, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserPage, error) {
	filter.Page = domain.NewPage(filter.Page.Page, filter.Page.PerPage)
	filter.Search = strings.TrimSpace(filter.Search)
	users, total, err := s.users.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.UserPage{
		Users:      users,
		Total:      total,
		TotalPages: filter.Page.TotalPages(total),
		Page:       filter.Page.Page,
		PerPage:    filter.Page.PerPage,
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// ToggleStatus blocks a confirmed account or unblocks a blocked one.
func (s *UserService) ToggleStatus(ctx context.Context, actor *Principal, id uuid.UUID) (*domain.User, error) {
	if actor.User.ID == id {
		return nil, domain.Forbidden("you cannot change the status of your own account")
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Confirmed = !user.Confirmed
	user.UpdatedAt = nowUTC()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user status changed",
		zap.String("user_id", user.ID.String()),
		zap.Bool("confirmed", user.Confirmed),
		zap.String("by", actor.User.ID.String()),
	)
	return user, nil
}

func (s *UserService) SetDiscount(ctx context.Context, id uuid.UUID, pct int) (*domain.User, error) {
	if pct < 0 || pct > 100 {
		return nil, domain.InvalidField("discount", "discount must be between 0 and 100")
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Discount = pct
	user.UpdatedAt = nowUTC()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
