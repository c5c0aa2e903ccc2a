package auth

import (
	"golang.org/x/crypto/bcrypt"

	"traininghub/internal/domain"
)

// SecretChecker compares a submitted admin password against the configured
// bcrypt hash. The dashboard uses one shared secret; there are no per-user
// accounts.
type SecretChecker struct {
	hash []byte
}

// NewSecretChecker returns a checker for the given bcrypt hash.
func NewSecretChecker(passwordHash string) *SecretChecker {
	return &SecretChecker{hash: []byte(passwordHash)}
}

// Check returns ErrUnauthorized when the password does not match.
func (c *SecretChecker) Check(password string) error {
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// HashSecret generates a bcrypt hash for a password. Used by setup tooling
// to produce the ADMIN_PASSWORD_HASH value.
func HashSecret(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
