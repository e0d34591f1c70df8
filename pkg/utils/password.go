package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a salted bcrypt hash from a plaintext password.
// bcrypt handles salt generation itself.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
// A mismatch is false, never an error.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
