package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NewTemporaryPasswordHash hashes a random password nobody knows.
// Clients created at the cashier desk set their own password later.
func NewTemporaryPasswordHash() (string, error) {
	password, err := GenerateSecureRandomString(16)
	if err != nil {
		return "", err
	}
	return HashPassword(password)
}
