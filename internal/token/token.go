// Package token issues and validates the signed session tokens that
// authenticate API requests.
package token

import (
	"errors"
	"time"

	"github.com/blogforge/apiserver/types"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails validation:
// bad signature, expired, not yet valid, or malformed. Callers must not
// distinguish between these causes.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the assertions embedded in a session token. The subject is
// the user's email; roles are carried as an open set of names.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// Service signs and verifies session tokens with a process-wide secret
// loaded once at startup. It is safe for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService constructs a token service. The secret must be non-empty
// and the validity window finite.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue builds and signs a token for the user, carrying its email as
// subject and its role names as claims.
func (s *Service) Issue(user types.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Roles: user.Roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies the token's signature and time bounds and returns
// its claims. Any failure collapses to ErrInvalidToken.
func (s *Service) Validate(tokenString string) (Claims, error) {
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuedAt())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
