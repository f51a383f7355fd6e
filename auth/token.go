package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256-signed JWTs.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewTokenService creates a TokenService from configuration.
func NewTokenService(cfg Config) *TokenService {
	cfg.ApplyDefaults()
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL(),
		now:    time.Now,
	}
}

// Issue creates a signed token for the given subject with optional extra claims.
func (s *TokenService) Issue(subject string, extra map[string]any) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": s.issuer,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (s *TokenService) Verify(tokenString string) (map[string]any, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("auth: invalid token claims")
	}
	return claims, nil
}
