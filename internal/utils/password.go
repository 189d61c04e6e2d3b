package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// saltLengthBytes is the length of the per-user salt before hex encoding.
const saltLengthBytes = 16

// GenerateSalt returns a cryptographically random hex-encoded salt.
// The salt is stored alongside the hash in the app_user row.
func GenerateSalt() (string, error) {
	b := make([]byte, saltLengthBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword hashes a plaintext password combined with the per-user
// salt using bcrypt.
func HashPassword(password, salt string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password and salt with a
// bcrypt hash.
func CheckPasswordHash(password, salt, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+salt)) == nil
}
