// Package password wraps bcrypt hashing and verification for user credentials.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt digest compared against when no real digest is
// available, so that verification cost does not reveal whether a user exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash produces a salted one-way digest of plaintext. The salt is randomized
// per call, so hashing the same plaintext twice yields different digests.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext is the input that produced digest.
// bcrypt's comparison is constant-time over the digest.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// VerifyDummy burns the same bcrypt cost as a real verification and always
// fails. Called on the missing-user path to keep login timing uniform.
func VerifyDummy(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
