package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/application"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

var errNotStubbed = domain.Internal("not stubbed", nil)

type fakeAuth struct {
	createAccountFunc   func(ctx context.Context, in domain.NewAccount) (*domain.User, error)
	confirmUserFunc     func(ctx context.Context, token string) (*domain.User, error)
	confirmUserByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	checkTokenFunc      func(ctx context.Context, token string, typ domain.TokenType) error
	setPasswordFunc     func(ctx context.Context, token, password string) error
	forgotPasswordFunc  func(ctx context.Context, email string) error
	loginFunc           func(ctx context.Context, email, password string) (*application.Session, error)
	logoutFunc          func(ctx context.Context, p *application.Principal) error

	// sessions maps bearer tokens to callers for Authenticate.
	sessions map[string]*application.Principal
}

func (f *fakeAuth) CreateAccount(ctx context.Context, in domain.NewAccount) (*domain.User, error) {
	if f.createAccountFunc != nil {
		return f.createAccountFunc(ctx, in)
	}
	return nil, errNotStubbed
}

func (f *fakeAuth) ConfirmUser(ctx context.Context, token string) (*domain.User, error) {
	if f.confirmUserFunc != nil {
		return f.confirmUserFunc(ctx, token)
	}
	return nil, errNotStubbed
}

func (f *fakeAuth) ConfirmUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.confirmUserByIDFunc != nil {
		return f.confirmUserByIDFunc(ctx, id)
	}
	return nil, errNotStubbed
}

func (f *fakeAuth) CheckToken(ctx context.Context, token string, typ domain.TokenType) error {
	if f.checkTokenFunc != nil {
		return f.checkTokenFunc(ctx, token, typ)
	}
	return errNotStubbed
}

func (f *fakeAuth) SetPassword(ctx context.Context, token, password string) error {
	if f.setPasswordFunc != nil {
		return f.setPasswordFunc(ctx, token, password)
	}
	return errNotStubbed
}

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) error {
	if f.forgotPasswordFunc != nil {
		return f.forgotPasswordFunc(ctx, email)
	}
	return errNotStubbed
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*application.Session, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, email, password)
	}
	return nil, errNotStubbed
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*application.Principal, error) {
	if p, ok := f.sessions[token]; ok {
		return p, nil
	}
	return nil, domain.ErrInvalidSession
}

func (f *fakeAuth) Logout(ctx context.Context, p *application.Principal) error {
	if f.logoutFunc != nil {
		return f.logoutFunc(ctx, p)
	}
	return nil
}

type fakeUsers struct {
	listUsersFunc    func(ctx context.Context, filter domain.UserFilter) (*domain.UserPage, error)
	getUserFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	toggleStatusFunc func(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.User, error)
	setDiscountFunc  func(ctx context.Context, id uuid.UUID, pct int) (*domain.User, error)
}

func (f *fakeUsers) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserPage, error) {
	if f.listUsersFunc != nil {
		return f.listUsersFunc(ctx, filter)
	}
	return nil, errNotStubbed
}

func (f *fakeUsers) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.getUserFunc != nil {
		return f.getUserFunc(ctx, id)
	}
	return nil, errNotStubbed
}

func (f *fakeUsers) ToggleStatus(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.User, error) {
	if f.toggleStatusFunc != nil {
		return f.toggleStatusFunc(ctx, actor, id)
	}
	return nil, errNotStubbed
}

func (f *fakeUsers) SetDiscount(ctx context.Context, id uuid.UUID, pct int) (*domain.User, error) {
	if f.setDiscountFunc != nil {
		return f.setDiscountFunc(ctx, id, pct)
	}
	return nil, errNotStubbed
}

type fakeProfile struct {
	updateProfileFunc  func(ctx context.Context, user *domain.User, in domain.ProfileUpdate) (*domain.User, error)
	updatePasswordFunc func(ctx context.Context, user *domain.User, current, next string) error
}

func (f *fakeProfile) UpdateProfile(ctx context.Context, user *domain.User, in domain.ProfileUpdate) (*domain.User, error) {
	if f.updateProfileFunc != nil {
		return f.updateProfileFunc(ctx, user, in)
	}
	return nil, errNotStubbed
}

func (f *fakeProfile) UpdatePassword(ctx context.Context, user *domain.User, current, next string) error {
	if f.updatePasswordFunc != nil {
		return f.updatePasswordFunc(ctx, user, current, next)
	}
	return errNotStubbed
}

type fakeOrders struct {
	createOrderFunc  func(ctx context.Context, actor *application.Principal, in domain.NewOrder) (*domain.Order, error)
	listOrdersFunc   func(ctx context.Context, actor *application.Principal, filter domain.OrderFilter) (*domain.OrderPage, error)
	getOrderFunc     func(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.Order, error)
	updateOrderFunc  func(ctx context.Context, actor *application.Principal, id uuid.UUID, upd domain.OrderUpdate) (*domain.Order, error)
	updateStatusFunc func(ctx context.Context, actor *application.Principal, id uuid.UUID, next domain.OrderStatus) (*domain.Order, error)
	cancelOrderFunc  func(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.Order, error)
	deleteOrderFunc  func(ctx context.Context, actor *application.Principal, id uuid.UUID) error
}

func (f *fakeOrders) CreateOrder(ctx context.Context, actor *application.Principal, in domain.NewOrder) (*domain.Order, error) {
	if f.createOrderFunc != nil {
		return f.createOrderFunc(ctx, actor, in)
	}
	return nil, errNotStubbed
}

func (f *fakeOrders) ListOrders(ctx context.Context, actor *application.Principal, filter domain.OrderFilter) (*domain.OrderPage, error) {
	if f.listOrdersFunc != nil {
		return f.listOrdersFunc(ctx, actor, filter)
	}
	return nil, errNotStubbed
}

func (f *fakeOrders) GetOrder(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.Order, error) {
	if f.getOrderFunc != nil {
		return f.getOrderFunc(ctx, actor, id)
	}
	return nil, errNotStubbed
}

func (f *fakeOrders) UpdateOrder(ctx context.Context, actor *application.Principal, id uuid.UUID, upd domain.OrderUpdate) (*domain.Order, error) {
	if f.updateOrderFunc != nil {
		return f.updateOrderFunc(ctx, actor, id, upd)
	}
	return nil, errNotStubbed
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, actor *application.Principal, id uuid.UUID, next domain.OrderStatus) (*domain.Order, error) {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, actor, id, next)
	}
	return nil, errNotStubbed
}

func (f *fakeOrders) CancelOrder(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.Order, error) {
	if f.cancelOrderFunc != nil {
		return f.cancelOrderFunc(ctx, actor, id)
	}
	return nil, errNotStubbed
}

func (f *fakeOrders) DeleteOrder(ctx context.Context, actor *application.Principal, id uuid.UUID) error {
	if f.deleteOrderFunc != nil {
		return f.deleteOrderFunc(ctx, actor, id)
	}
	return errNotStubbed
}
