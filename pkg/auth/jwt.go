// pkg/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongPurpose = errors.New("token purpose mismatch")
)

type Claims struct {
	UserID  string `json:"user_id"`
	Purpose string `json:"purpose,omitempty"`
	// Admin is set by ParseSession from the key that verified the token,
	// never from the payload.
	Admin bool `json:"-"`
	jwt.RegisteredClaims
}

// Issuer signs session tokens with one of two secrets: one for standard users
// and one for admins. Purpose tokens (password set/reset links) are signed
// with the user secret and carry a purpose claim.
type Issuer struct {
	userSecret  []byte
	adminSecret []byte
	ttl         time.Duration
	now         func() time.Time
}

func NewIssuer(userSecret, adminSecret string, ttl time.Duration) *Issuer {
	return &Issuer{
		userSecret:  []byte(userSecret),
		adminSecret: []byte(adminSecret),
		ttl:         ttl,
		now:         time.Now,
	}
}

func (i *Issuer) GenerateToken(userID uuid.UUID, admin bool) (string, *Claims, error) {
	now := i.now()
	claims := &Claims{
		UserID: userID.String(),
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	secret := i.userSecret
	if admin {
		secret = i.adminSecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseSession accepts tokens signed by either secret and reports which one
// verified it through Claims.Admin.
func (i *Issuer) ParseSession(tokenStr string) (*Claims, error) {
	claims, err := i.parse(tokenStr, i.userSecret)
	if err == nil {
		if claims.Purpose != "" {
			return nil, ErrWrongPurpose
		}
		return claims, nil
	}
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return nil, ErrInvalidToken
	}
	claims, err = i.parse(tokenStr, i.adminSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims.Admin = true
	return claims, nil
}

func (i *Issuer) GeneratePurposeToken(userID uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := &Claims{
		UserID:  userID.String(),
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.userSecret)
}

func (i *Issuer) ValidatePurposeToken(tokenStr, purpose string) (*Claims, error) {
	claims, err := i.parse(tokenStr, i.userSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

func (i *Issuer) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
