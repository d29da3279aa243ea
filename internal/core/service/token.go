package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the signed payload of a session token.
type sessionClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens carrying the
// principal's id and email. The signature covers the full payload, so any
// tampering invalidates the token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(principalID, email string) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		ID:    principalID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded identity.
// Failures are classified into the domain token errors; callers surface only
// a generic "invalid token" to clients.
func (s *TokenService) Verify(token string) (string, string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", "", domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", "", domain.ErrTokenBadSignature
		default:
			return "", "", domain.ErrTokenInvalid
		}
	}
	if !parsed.Valid || claims.ID == "" {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.ID, claims.Email, nil
}
