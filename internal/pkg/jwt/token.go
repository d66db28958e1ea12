package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/superblog/auth/internal/pkg/models"
)

// SessionClaims are the claims carried by a self-verifying session token
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed session token for the given subject.
// ttl controls the expiry; the token is self-verifying so no server-side
// session row exists.
func GenerateToken(subject, email, role string, ttl time.Duration, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken validates a session token and returns its claims. Expiry is
// checked against the server clock by the jwt library during parsing.
func ValidateToken(tokenString string, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
