// internal/adapters/rest/router.go
package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/application"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type AuthService interface {
	CreateAccount(ctx context.Context, in domain.NewAccount) (*domain.User, error)
	ConfirmUser(ctx context.Context, token string) (*domain.User, error)
	ConfirmUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CheckToken(ctx context.Context, token string, typ domain.TokenType) error
	SetPassword(ctx context.Context, token, password string) error
	ForgotPassword(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*application.Session, error)
	Authenticate(ctx context.Context, token string) (*application.Principal, error)
	Logout(ctx context.Context, p *application.Principal) error
}

type UserService interface {
	ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserPage, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ToggleStatus(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.User, error)
	SetDiscount(ctx context.Context, id uuid.UUID, pct int) (*domain.User, error)
}

type ProfileService interface {
	UpdateProfile(ctx context.Context, user *domain.User, in domain.ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, user *domain.User, current, next string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, actor *application.Principal, in domain.NewOrder) (*domain.Order, error)
	ListOrders(ctx context.Context, actor *application.Principal, filter domain.OrderFilter) (*domain.OrderPage, error)
	GetOrder(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, actor *application.Principal, id uuid.UUID, upd domain.OrderUpdate) (*domain.Order, error)
	UpdateStatus(ctx context.Context, actor *application.Principal, id uuid.UUID, next domain.OrderStatus) (*domain.Order, error)
	CancelOrder(ctx context.Context, actor *application.Principal, id uuid.UUID) (*domain.Order, error)
	DeleteOrder(ctx context.Context, actor *application.Principal, id uuid.UUID) error
}

type Config struct {
	FrontendURL    string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Handler struct {
	auth      AuthService
	users     UserService
	profile   ProfileService
	orders    OrderService
	validator *Validator
	logger    *zap.Logger
}

func NewHandler(auth AuthService, users UserService, profile ProfileService, orders OrderService, logger *zap.Logger) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		profile:   profile,
		orders:    orders,
		validator: NewValidator(),
		logger:    logger,
	}
}

// Routes builds the HTTP surface of the portal.
func (h *Handler) Routes(cfg Config) http.Handler {
	limiter := newIPLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(limiter.middleware(h.logger))
				r.Post("/create-account", h.createAccount)
				r.Post("/login", h.login)
				r.Post("/forgot-password", h.forgotPassword)
			})
			r.Get("/validate-token/{token}", h.validateToken)
			r.Post("/set-password/{token}", h.setPassword)
			r.Post("/reset-password/{token}", h.setPassword)

			r.Group(func(r chi.Router) {
				r.Use(h.authenticate)
				r.Get("/user", h.currentUser)
				r.Post("/logout", h.logout)
				r.With(h.requireAdmin).Post("/confirm-user/{token}", h.confirmUser)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Put("/profile", h.updateProfile)
			r.Put("/profile/password", h.updatePassword)

			r.Route("/admin/users", func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Get("/", h.listUsers)
				r.Get("/{id}", h.getUser)
				r.Post("/{id}/confirm", h.confirmUserByID)
				r.Patch("/{id}/status", h.toggleUserStatus)
				r.Patch("/{id}/discount", h.setDiscount)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.createOrder)
				r.Get("/", h.listOrders)
				r.Get("/{id}", h.getOrder)
				r.Post("/{id}/cancel", h.cancelOrder)
				r.Group(func(r chi.Router) {
					r.Use(h.requireAdmin)
					r.Put("/{id}", h.updateOrder)
					r.Patch("/{id}/status", h.updateOrderStatus)
					r.Delete("/{id}", h.deleteOrder)
				})
			})
		})
	})
	return r
}
