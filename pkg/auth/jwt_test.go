package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_SessionSecrets(t *testing.T) {
	issuer := NewIssuer("user-secret", "admin-secret", time.Hour)
	id := uuid.New()

	tests := []struct {
		name  string
		admin bool
	}{
		{"standard user", false},
		{"admin", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, issued, err := issuer.GenerateToken(id, tt.admin)
			require.NoError(t, err)
			require.NotEmpty(t, issued.ID)

			claims, err := issuer.ParseSession(tok)
			require.NoError(t, err)
			assert.Equal(t, id.String(), claims.UserID)
			assert.Equal(t, tt.admin, claims.Admin)
			assert.Equal(t, issued.ID, claims.ID)
		})
	}
}

func TestIssuer_ParseSession_Rejects(t *testing.T) {
	issuer := NewIssuer("user-secret", "admin-secret", time.Hour)
	foreign := NewIssuer("other", "other-admin", time.Hour)
	id := uuid.New()

	forged, _, err := foreign.GenerateToken(id, true)
	require.NoError(t, err)
	_, err = issuer.ParseSession(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ParseSession("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	purpose, err := issuer.GeneratePurposeToken(id, "password_reset", time.Hour)
	require.NoError(t, err)
	_, err = issuer.ParseSession(purpose)
	assert.ErrorIs(t, err, ErrWrongPurpose)
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("user-secret", "admin-secret", time.Minute)
	base := time.Now()
	issuer.now = func() time.Time { return base }
	tok, _, err := issuer.GenerateToken(uuid.New(), false)
	require.NoError(t, err)

	issuer.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = issuer.ParseSession(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_PurposeToken(t *testing.T) {
	issuer := NewIssuer("user-secret", "admin-secret", time.Hour)
	id := uuid.New()
	tok, err := issuer.GeneratePurposeToken(id, "password_reset", time.Hour)
	require.NoError(t, err)

	claims, err := issuer.ValidatePurposeToken(tok, "password_reset")
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)

	_, err = issuer.ValidatePurposeToken(tok, "something_else")
	assert.ErrorIs(t, err, ErrWrongPurpose)
}
