package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret derives a bcrypt hash from the given device secret.
// The plain secret is never stored; only the resulting hash is persisted.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}
	return string(hash), nil
}

// CompareSecret reports whether the plain secret matches the stored bcrypt
// hash. Returns a non-nil error on mismatch or malformed hash.
func CompareSecret(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
