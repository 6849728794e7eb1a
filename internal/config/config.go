// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	LogLevel string

	HTTPAddr string
	GRPCAddr string

	DatabaseURL string

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	JWTSecret            string
	JWTAdminSecret       string
	JWTTTL               time.Duration
	PasswordTokenTTL     time.Duration
	ConfirmationTokenTTL time.Duration

	MailProvider   string
	ResendAPIKey   string
	SendGridAPIKey string
	NoReplyEmail   string
	AdminEmail     string
	FrontendURL    string

	NATSURL string

	RateLimitRPS   float64
	RateLimitBurst int

	TokenPurgeInterval time.Duration
	HealthInterval     time.Duration

	AdminSeedEmail    string
	AdminSeedPassword string
	AdminSeedName     string
}

var defaults = map[string]interface{}{
	"APP_ENV":                "development",
	"LOG_LEVEL":              "info",
	"HTTP_ADDR":              ":8080",
	"GRPC_ADDR":              ":50051",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "postgres",
	"DB_NAME":                "spt_portal",
	"DB_SSLMODE":             "disable",
	"REDIS_ADDR":             "localhost:6379",
	"REDIS_DB":               0,
	"CACHE_TTL":              "5m",
	"JWT_TTL":                "12h",
	"PASSWORD_TOKEN_TTL":     "168h",
	"CONFIRMATION_TOKEN_TTL": "168h",
	"MAIL_PROVIDER":          "log",
	"NOREPLY_EMAIL":          "noreply@localhost",
	"FRONTEND_URL":           "http://localhost:3000",
	"RATE_LIMIT_RPS":         1.0,
	"RATE_LIMIT_BURST":       5,
	"TOKEN_PURGE_INTERVAL":   "1h",
	"HEALTH_INTERVAL":        "10s",
	"ADMIN_SEED_NAME":        "Administrator",
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:      v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),

		HTTPAddr: v.GetString("HTTP_ADDR"),
		GRPCAddr: v.GetString("GRPC_ADDR"),

		DatabaseURL: v.GetString("DATABASE_URL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisUsername: v.GetString("REDIS_USERNAME"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		CacheTTL:      v.GetDuration("CACHE_TTL"),

		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTAdminSecret:       v.GetString("JWT_ADMIN_SECRET"),
		JWTTTL:               v.GetDuration("JWT_TTL"),
		PasswordTokenTTL:     v.GetDuration("PASSWORD_TOKEN_TTL"),
		ConfirmationTokenTTL: v.GetDuration("CONFIRMATION_TOKEN_TTL"),

		MailProvider:   strings.ToLower(v.GetString("MAIL_PROVIDER")),
		ResendAPIKey:   v.GetString("RESEND_API_KEY"),
		SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
		NoReplyEmail:   v.GetString("NOREPLY_EMAIL"),
		AdminEmail:     v.GetString("ADMIN_EMAIL"),
		FrontendURL:    strings.TrimRight(v.GetString("FRONTEND_URL"), "/"),

		NATSURL: v.GetString("NATS_URL"),

		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),

		TokenPurgeInterval: v.GetDuration("TOKEN_PURGE_INTERVAL"),
		HealthInterval:     v.GetDuration("HEALTH_INTERVAL"),

		AdminSeedEmail:    v.GetString("ADMIN_SEED_EMAIL"),
		AdminSeedPassword: v.GetString("ADMIN_SEED_PASSWORD"),
		AdminSeedName:     v.GetString("ADMIN_SEED_NAME"),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			v.GetString("DB_HOST"), v.GetString("DB_PORT"), v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"), v.GetString("DB_NAME"), v.GetString("DB_SSLMODE"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.JWTAdminSecret == "" {
		return errors.New("config: JWT_SECRET and JWT_ADMIN_SECRET are required")
	}
	if c.JWTSecret == c.JWTAdminSecret {
		return errors.New("config: JWT_SECRET and JWT_ADMIN_SECRET must differ")
	}
	switch c.MailProvider {
	case "log":
	case "resend":
		if c.ResendAPIKey == "" {
			return errors.New("config: RESEND_API_KEY is required for the resend provider")
		}
	case "sendgrid":
		if c.SendGridAPIKey == "" {
			return errors.New("config: SENDGRID_API_KEY is required for the sendgrid provider")
		}
	default:
		return fmt.Errorf("config: unknown MAIL_PROVIDER %q", c.MailProvider)
	}
	if c.JWTTTL <= 0 || c.PasswordTokenTTL <= 0 || c.ConfirmationTokenTTL <= 0 {
		return errors.New("config: token lifetimes must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.TokenPurgeInterval <= 0 || c.HealthInterval <= 0 {
		return errors.New("config: TOKEN_PURGE_INTERVAL and HEALTH_INTERVAL must be positive")
	}
	return nil
}
