package application

import (
	"context"
	"strings"
	"time"

	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"golang.org/x/crypto/bcrypt"
)

func nowUTC() time.Time { return time.Now().UTC() }

type ProfileService struct {
	users    ports.UserRepositoryPort
	hashCost int
}

func NewProfileService(users ports.UserRepositoryPort) *ProfileService {
	return &ProfileService{users: users, hashCost: bcrypt.DefaultCost}
}

func (s *ProfileService) UpdateProfile(ctx context.Context, user *domain.User, in domain.ProfileUpdate) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)

	if in.Email != user.Email {
		other, err := s.users.FindUserByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.ErrEmailTaken
		}
	}
	if in.Phone != user.Phone {
		other, err := s.users.FindUserByPhone(ctx, in.Phone)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.ErrPhoneTaken
		}
	}

	updated := *user
	updated.Name = in.Name
	updated.BusinessName = in.BusinessName
	updated.Email = in.Email
	updated.Phone = in.Phone
	updated.Address = in.Address
	updated.UpdatedAt = nowUTC()
	if err := s.users.UpdateUser(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProfileService) UpdatePassword(ctx context.Context, user *domain.User, current, next string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return domain.ErrWrongPassword
	}
	hashed, err := hashPassword(next, s.hashCost)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.PasswordSet = true
	user.UpdatedAt = nowUTC()
	return s.users.UpdateUser(ctx, user)
}
