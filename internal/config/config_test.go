package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "user")
	t.Setenv("JWT_ADMIN_SECRET", "admin")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 168*time.Hour, cfg.PasswordTokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "log", cfg.MailProvider)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=spt_portal sslmode=disable", cfg.DatabaseURL)
}

func TestFromViper_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "user")
	t.Setenv("JWT_ADMIN_SECRET", "admin")
	t.Setenv("DATABASE_URL", "postgres://x@db/portal")
	t.Setenv("FRONTEND_URL", "https://portal.example.com/")
	t.Setenv("JWT_TTL", "30m")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, "postgres://x@db/portal", cfg.DatabaseURL)
	assert.Equal(t, "https://portal.example.com", cfg.FrontendURL)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secrets", map[string]string{}},
		{"same secrets", map[string]string{"JWT_SECRET": "s", "JWT_ADMIN_SECRET": "s"}},
		{"unknown provider", map[string]string{"JWT_SECRET": "a", "JWT_ADMIN_SECRET": "b", "MAIL_PROVIDER": "pigeon"}},
		{"resend without key", map[string]string{"JWT_SECRET": "a", "JWT_ADMIN_SECRET": "b", "MAIL_PROVIDER": "resend"}},
		{"zero purge interval", map[string]string{"JWT_SECRET": "a", "JWT_ADMIN_SECRET": "b", "TOKEN_PURGE_INTERVAL": "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			t.Setenv("JWT_ADMIN_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromViper(newViper())
			assert.Error(t, err)
		})
	}
}
