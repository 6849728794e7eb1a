// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/metrics"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"github.com/mahabubulhasibshawon/spt-portal/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	ConfirmationTokenTTL time.Duration
	PasswordTokenTTL     time.Duration
}

type AuthService struct {
	users    ports.UserRepositoryPort
	tokens   ports.TokenRepositoryPort
	denylist ports.TokenDenylistPort
	notifier ports.NotifierPort
	events   ports.EventPublisherPort
	issuer   *auth.Issuer
	cfg      AuthConfig
	logger   *zap.Logger
	hashCost int
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepositoryPort,
	tokens ports.TokenRepositoryPort,
	denylist ports.TokenDenylistPort,
	notifier ports.NotifierPort,
	events ports.EventPublisherPort,
	issuer *auth.Issuer,
	cfg AuthConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		denylist: denylist,
		notifier: notifier,
		events:   events,
		issuer:   issuer,
		cfg:      cfg,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
		now:      nowUTC,
	}
}

type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeAccount(in domain.NewAccount) domain.NewAccount {
	in.Name = strings.TrimSpace(in.Name)
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.PersonalID = strings.ToUpper(strings.TrimSpace(in.PersonalID))
	in.BusinessID = strings.ToUpper(strings.TrimSpace(in.BusinessID))
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Region = strings.TrimSpace(in.Region)
	in.City = strings.TrimSpace(in.City)
	in.Province = strings.TrimSpace(in.Province)
	in.Reference = strings.TrimSpace(in.Reference)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	return in
}

// CreateAccount registers an unconfirmed business client and notifies the
// client and the administrators.
func (s *AuthService) CreateAccount(ctx context.Context, in domain.NewAccount) (*domain.User, error) {
	in = normalizeAccount(in)
	idType, err := domain.IDTypeFor(in.Country)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePersonalID(in.PersonalID, in.Country); err != nil {
		return nil, err
	}
	if err := domain.ValidateBusinessID(in.BusinessID, in.Country); err != nil {
		return nil, err
	}
	if in.Country == domain.CountryChile && in.Region != "" && !domain.ValidRegion(in.Region) {
		return nil, domain.InvalidField("region", "unknown region")
	}

	existing, err := s.users.FindUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}
	existing, err = s.users.FindUserByPersonalID(ctx, in.PersonalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPersonalIDTaken
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         in.Name,
		BusinessName: in.BusinessName,
		PersonalID:   in.PersonalID,
		BusinessID:   in.BusinessID,
		IDType:       idType,
		Country:      in.Country,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Region:       in.Region,
		City:         in.City,
		Province:     in.Province,
		Reference:    in.Reference,
		PostalCode:   in.PostalCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token := &domain.Token{
		ID:        uuid.New(),
		UserID:    user.ID,
		Value:     uuid.NewString(),
		Type:      domain.TokenAdminConfirmation,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.ConfirmationTokenTTL),
	}
	if err := s.tokens.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	s.notifier.AccountCreated(ctx, user, token.Value)
	publish(ctx, s.events, s.logger, domain.EventUserRegistered, userEvent{user.ID, user.Email, user.BusinessName})
	s.logger.Info("account created", zap.String("user_id", user.ID.String()))
	return user, nil
}

// ConfirmUser approves the account behind an admin confirmation token.
func (s *AuthService) ConfirmUser(ctx context.Context, tokenValue string) (*domain.User, error) {
	token, err := s.findLiveToken(ctx, tokenValue, domain.TokenAdminConfirmation)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.confirm(ctx, user)
}

func (s *AuthService) ConfirmUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.confirm(ctx, user)
}

func (s *AuthService) confirm(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Confirmed {
		return nil, domain.ErrAlreadyConfirmed
	}
	// the set-password token must exist before the account reads as confirmed
	passwordToken, err := s.issuePasswordToken(ctx, user)
	if err != nil {
		return nil, err
	}
	user.Confirmed = true
	user.UpdatedAt = s.now()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		user.Confirmed = false
		return nil, err
	}
	if err := s.tokens.DeleteUserTokens(ctx, user.ID, domain.TokenAdminConfirmation); err != nil {
		return nil, err
	}
	s.notifier.UserConfirmed(ctx, user, passwordToken)
	publish(ctx, s.events, s.logger, domain.EventUserConfirmed, userEvent{user.ID, user.Email, user.BusinessName})
	return user, nil
}

// issuePasswordToken replaces any outstanding password token of user.
func (s *AuthService) issuePasswordToken(ctx context.Context, user *domain.User) (string, error) {
	value, err := s.issuer.GeneratePurposeToken(user.ID, string(domain.TokenPasswordReset), s.cfg.PasswordTokenTTL)
	if err != nil {
		return "", domain.Internal("failed to sign password token", err)
	}
	if err := s.tokens.DeleteUserTokens(ctx, user.ID, domain.TokenPasswordReset); err != nil {
		return "", err
	}
	now := s.now()
	token := &domain.Token{
		ID:        uuid.New(),
		UserID:    user.ID,
		Value:     value,
		Type:      domain.TokenPasswordReset,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.PasswordTokenTTL),
	}
	if err := s.tokens.CreateToken(ctx, token); err != nil {
		return "", err
	}
	return value, nil
}

func (s *AuthService) findLiveToken(ctx context.Context, value string, typ domain.TokenType) (*domain.Token, error) {
	if value == "" {
		return nil, domain.ErrTokenNotFound
	}
	token, err := s.tokens.FindToken(ctx, value, typ)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Expired(s.now()) {
		return nil, domain.ErrTokenNotFound
	}
	if typ == domain.TokenPasswordReset {
		claims, err := s.issuer.ValidatePurposeToken(value, string(typ))
		if err != nil || claims.UserID != token.UserID.String() {
			return nil, domain.ErrTokenNotFound
		}
	}
	return token, nil
}

// CheckToken reports whether a confirmation or password token can still be used.
func (s *AuthService) CheckToken(ctx context.Context, value string, typ domain.TokenType) error {
	if !typ.Valid() {
		return domain.InvalidField("type", "type must be password_reset or admin_confirmation")
	}
	_, err := s.findLiveToken(ctx, value, typ)
	return err
}

// SetPassword consumes a password token. It serves both the first password
// and later resets.
func (s *AuthService) SetPassword(ctx context.Context, tokenValue, password string) error {
	token, err := s.findLiveToken(ctx, tokenValue, domain.TokenPasswordReset)
	if err != nil {
		return err
	}
	user, err := s.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hashed, err := hashPassword(password, s.hashCost)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.PasswordSet = true
	user.UpdatedAt = s.now()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}
	return s.tokens.DeleteUserTokens(ctx, user.ID, domain.TokenPasswordReset)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !user.Confirmed {
		return domain.ErrNotConfirmed
	}
	token, err := s.issuePasswordToken(ctx, user)
	if err != nil {
		return err
	}
	s.notifier.PasswordResetRequested(ctx, user, token)
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.PasswordSet || user.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Confirmed {
		return nil, domain.ErrNotConfirmed
	}
	token, claims, err := s.issuer.GenerateToken(user.ID, user.Admin)
	if err != nil {
		return nil, domain.Internal("failed to sign session token", err)
	}
	return &Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}

// Authenticate resolves a bearer token into the calling user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := s.issuer.ParseSession(token)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, domain.Internal("failed to check session", err)
	}
	if revoked {
		return nil, domain.ErrInvalidSession
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotAuthorized("user no longer exists")
	}
	if !user.Confirmed {
		return nil, domain.ErrNotConfirmed
	}
	// an admin signed token stops granting admin rights once the flag is removed
	if claims.Admin && !user.Admin {
		return nil, domain.ErrInvalidSession
	}
	p := &Principal{User: user, Admin: claims.Admin, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

// Logout revokes the caller's token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, p *Principal) error {
	ttl := p.ExpiresAt.Sub(s.now())
	if err := s.denylist.Revoke(ctx, p.TokenID, ttl); err != nil {
		return domain.Internal("failed to revoke session", err)
	}
	return nil
}

// EnsureAdmin creates or promotes the bootstrap administrator.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, errors.New("admin seed email is empty")
	}
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if user.Admin && user.Confirmed {
			return user, nil
		}
		user.Admin = true
		user.Confirmed = true
		user.UpdatedAt = s.now()
		if err := s.users.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	hashed, err := hashPassword(password, s.hashCost)
	if err != nil {
		return nil, err
	}
	now := s.now()
	id := uuid.New()
	user = &domain.User{
		ID:           id,
		Name:         name,
		BusinessName: name,
		PersonalID:   "ADMIN-" + strings.ToUpper(id.String()[:8]),
		BusinessID:   "ADMIN",
		IDType:       domain.IDTypeRUT,
		Country:      domain.CountryChile,
		Email:        email,
		Password:     hashed,
		Confirmed:    true,
		PasswordSet:  true,
		Admin:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PurgeExpiredTokens drops confirmation and password tokens past their expiry.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.tokens.PurgeExpiredTokens(ctx, s.now())
	if err != nil {
		return 0, err
	}
	metrics.TokensPurged.Add(float64(n))
	return n, nil
}
