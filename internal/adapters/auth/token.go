package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"traininghub/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

type jwtTokens struct {
	secret []byte
}

// NewJWTTokens returns a TokenIssuer/TokenVerifier pair that signs admin
// session tokens with HS256 using the given secret.
func NewJWTTokens(secret string) *jwtTokens {
	return &jwtTokens{secret: []byte(secret)}
}

func (t *jwtTokens) Issue(subject string, roles []string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (t *jwtTokens) Verify(tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}

var _ domain.TokenIssuer = (*jwtTokens)(nil)
var _ domain.TokenVerifier = (*jwtTokens)(nil)
