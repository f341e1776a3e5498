package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt digest. Algorithm, cost and a fresh random
// salt all travel inside the digest string, so verification needs nothing
// stored alongside it.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext against a stored digest using
// bcrypt's constant-time comparison. Malformed digests simply fail.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
