// Package cryptox hashes and verifies user passwords with bcrypt.
package cryptox

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMismatch is returned when a password does not match its hash.
	ErrMismatch = errors.New("password mismatch")

	// ErrTooLong is returned for passwords bcrypt cannot hash.
	ErrTooLong = errors.New("password longer than 72 bytes")
)

// MaxPasswordLen is the longest password, in bytes, bcrypt accepts.
const MaxPasswordLen = 72

// Cost is the bcrypt work factor. Tests lower it.
var Cost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLen {
		return "", ErrTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// CheckPassword returns ErrMismatch when password does not produce hash.
// Malformed hashes are reported as other errors.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("solarplan"), Cost)
	return string(h)
})

// CompareDummy spends the same time as CheckPassword against a real hash.
// Login calls it for unknown accounts.
func CompareDummy(password string) {
	_ = CheckPassword(dummyHash(), password)
}
