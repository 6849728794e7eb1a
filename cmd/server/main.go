// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	g "github.com/mahabubulhasibshawon/spt-portal/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/spt-portal/internal/adapters/events"
	"github.com/mahabubulhasibshawon/spt-portal/internal/adapters/mail"
	"github.com/mahabubulhasibshawon/spt-portal/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/spt-portal/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/spt-portal/internal/adapters/rest"
	"github.com/mahabubulhasibshawon/spt-portal/internal/application"
	"github.com/mahabubulhasibshawon/spt-portal/internal/config"
	"github.com/mahabubulhasibshawon/spt-portal/internal/logger"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"github.com/mahabubulhasibshawon/spt-portal/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.Env)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	repo := repository.NewPostgresRepository(db)
	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := repo.Ping(startCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := repo.InitSchema(startCtx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	cache := redis.NewCache(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
	defer cache.Close()
	if err := cache.Ping(startCtx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	sender, err := mail.NewSender(cfg.MailProvider, cfg.ResendAPIKey, cfg.SendGridAPIKey, cfg.NoReplyEmail, log)
	if err != nil {
		return fmt.Errorf("mail sender: %w", err)
	}
	notifier := mail.NewNotifier(sender, cfg.AdminEmail, cfg.FrontendURL, log)

	var publisher ports.EventPublisherPort = events.Noop{}
	if cfg.NATSURL != "" {
		p, err := events.Connect(cfg.NATSURL, log)
		if err != nil {
			log.Warn("nats unavailable, domain events disabled", zap.Error(err))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTAdminSecret, cfg.JWTTTL)
	authService := application.NewAuthService(repo, repo, cache, notifier, publisher, issuer, application.AuthConfig{
		ConfirmationTokenTTL: cfg.ConfirmationTokenTTL,
		PasswordTokenTTL:     cfg.PasswordTokenTTL,
	}, log)
	userService := application.NewUserService(repo, log)
	profileService := application.NewProfileService(repo)
	orderService := application.NewOrderService(repo, repo, cache, notifier, publisher, log)

	if cfg.AdminSeedEmail != "" {
		if _, err := authService.EnsureAdmin(startCtx, cfg.AdminSeedEmail, cfg.AdminSeedPassword, cfg.AdminSeedName); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	handler := rest.NewHandler(authService, userService, profileService, orderService, log)
	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handler.Routes(rest.Config{
			FrontendURL:    cfg.FrontendURL,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	healthServer := g.NewHealthServer(log, cfg.HealthInterval,
		g.Check{Name: "postgres", Pinger: repo},
		g.Check{Name: "redis", Pinger: cache},
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		log.Info("grpc health server listening", zap.String("addr", cfg.GRPCAddr))
		return healthServer.Serve(lis)
	})
	eg.Go(func() error {
		healthServer.Watch(egCtx)
		return nil
	})
	eg.Go(func() error {
		purgeTokens(egCtx, authService, cfg.TokenPurgeInterval, log)
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown", zap.Error(err))
		}
		healthServer.GracefulStop()
		if err := notifier.Wait(shutdownCtx); err != nil {
			log.Warn("pending emails abandoned", zap.Error(err))
		}
		return nil
	})

	return eg.Wait()
}

func purgeTokens(ctx context.Context, svc *application.AuthService, every time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.PurgeExpiredTokens(ctx); err != nil {
				log.Warn("purge expired tokens", zap.Error(err))
			}
		}
	}
}
