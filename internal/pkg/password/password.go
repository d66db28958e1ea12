// Package password wraps the bcrypt primitive shared by the admin
// credential store. Hashes embed their salt and cost, so verification is
// self-describing.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash derives a salted bcrypt hash from a plaintext password
func Hash(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. It never returns an
// error on mismatch, only false; bcrypt's comparison is constant-time.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
