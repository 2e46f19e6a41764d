// ABOUTME: Password hashing and verification using bcrypt
// ABOUTME: Salted one-way hashing with a fixed work factor and input length cap

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Password input errors
var (
	ErrPasswordEmpty   = errors.New("password must not be empty")
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
)

// MaxPasswordLength is the longest accepted password in bytes. bcrypt only
// uses the first 72 bytes of input, so anything longer would silently verify
// against a truncated password; reject it up front instead.
const MaxPasswordLength = 72

// bcryptCost is the bcrypt work factor. The hashing cost is a security
// property: it bounds the rate of offline brute-force guessing.
const bcryptCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash of the given password.
// Hashing the same password twice produces different hashes.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordEmpty
	}
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password produced hash. A malformed or
// truncated hash returns false rather than an error. The comparison is
// constant-time with respect to where a mismatch occurs.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// dummyHash is a valid bcrypt hash of a random string, used to equalize the
// timing of login attempts against unknown usernames.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// DummyCheck burns the same bcrypt cost as a real password comparison.
// Call it when a login names an unknown user so that response timing does
// not reveal whether the username exists.
func DummyCheck(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
