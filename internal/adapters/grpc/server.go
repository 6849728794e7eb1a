// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Pinger is any dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check binds a health service name to the dependency behind it.
type Check struct {
	Name   string
	Pinger Pinger
}

// HealthServer serves grpc.health.v1 with one service name per dependency
// plus the overall "" status.
type HealthServer struct {
	server   *grpc.Server
	health   *health.Server
	checks   []Check
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	last map[string]healthpb.HealthCheckResponse_ServingStatus
}

func NewHealthServer(logger *zap.Logger, interval time.Duration, checks ...Check) *HealthServer {
	hs := health.NewServer()
	srv := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	healthpb.RegisterHealthServer(srv, hs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for _, c := range checks {
		hs.SetServingStatus(c.Name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &HealthServer{
		server:   srv,
		health:   hs,
		checks:   checks,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		last:     make(map[string]healthpb.HealthCheckResponse_ServingStatus),
	}
}

func (s *HealthServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

// CheckOnce pings every dependency and publishes the results. The overall
// status is SERVING only when all dependencies are.
func (s *HealthServer) CheckOnce(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for _, c := range s.checks {
		pctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := c.Pinger.Ping(pctx)
		cancel()

		st := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.set(c.Name, st, err)
	}
	s.set("", overall, nil)
}

func (s *HealthServer) set(name string, st healthpb.HealthCheckResponse_ServingStatus, err error) {
	s.mu.Lock()
	prev, seen := s.last[name]
	s.last[name] = st
	s.mu.Unlock()

	if seen && prev != st {
		if err != nil {
			s.logger.Warn("dependency unhealthy", zap.String("service", name), zap.Error(err))
		} else {
			s.logger.Info("health status changed", zap.String("service", name), zap.Stringer("status", st))
		}
	}
	s.health.SetServingStatus(name, st)
}

// Watch runs CheckOnce immediately and then every interval until ctx ends.
func (s *HealthServer) Watch(ctx context.Context) {
	s.CheckOnce(ctx)
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckOnce(ctx)
		}
	}
}

// GracefulStop flips every service to NOT_SERVING before draining RPCs.
func (s *HealthServer) GracefulStop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}

// LoggingInterceptor logs failed unary calls and health probes at debug level.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Stringer("code", code),
			zap.Duration("elapsed", time.Since(start)),
		}
		if err != nil {
			logger.Warn("grpc call failed", append(fields, zap.Error(err))...)
			return resp, err
		}
		logger.Debug("grpc call", fields...)
		return resp, nil
	}
}
